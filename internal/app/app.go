package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/geo"
	"github.com/thegrihome/grihome-api/internal/notify"
	"github.com/thegrihome/grihome-api/internal/repositories"
	"github.com/thegrihome/grihome-api/internal/services"
	"github.com/thegrihome/grihome-api/internal/storage"
	"github.com/thegrihome/grihome-api/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App owns the DB pool and the service graph.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	AuthService     services.AuthService
	UserService     services.UserService
	PropertyService services.PropertyService
	ProjectService  services.ProjectService
	ForumService    services.ForumService
	CleanupService  *services.CleanupService
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		if err == nil {
			utils.Logger.Infof("%s connected to DB on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	userRepo := repositories.NewUserRepository(dbPool)
	propertyRepo := repositories.NewPropertyRepository(dbPool)
	savedRepo := repositories.NewSavedPropertyRepository(dbPool)
	interestRepo := repositories.NewInterestRepository(dbPool)
	projectRepo := repositories.NewProjectRepository(dbPool)
	forumRepo := repositories.NewForumRepository(dbPool)
	codeRepo := repositories.NewVerificationCodeRepository(dbPool)

	geocoder, err := buildGeocoder(cfg)
	if err != nil {
		return nil, err
	}
	uploader := storage.NewDiskUploader(cfg.UploadDir, cfg.UploadURLPrefix)
	sender := buildCodeSender(cfg)

	app := &App{
		Config: cfg,
		DB:     dbPool,

		AuthService:     services.NewAuthService(userRepo, cfg.RSAPrivateKey, cfg.AccessTokenExpiry),
		UserService:     services.NewUserService(userRepo, codeRepo, sender),
		PropertyService: services.NewPropertyService(propertyRepo, savedRepo, interestRepo, geocoder, uploader),
		ProjectService:  services.NewProjectService(projectRepo, uploader),
		ForumService:    services.NewForumService(forumRepo, userRepo),
		CleanupService:  services.NewCleanupService(codeRepo),
	}
	return app, nil
}

func (a *App) Close() {
	if a.CleanupService != nil {
		a.CleanupService.Stop()
	}
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}

func buildGeocoder(cfg *config.Config) (geo.Geocoder, error) {
	if cfg.GoogleMapsAPIKey == "" {
		utils.Logger.Warn("GOOGLE_MAPS_API_KEY not set; geocoding disabled")
		return geo.NopGeocoder{}, nil
	}
	return geo.NewGoogleGeocoder(cfg.GoogleMapsAPIKey)
}

func buildCodeSender(cfg *config.Config) notify.CodeSender {
	if cfg.SendGridAPIKey == "" || cfg.TwilioAccountSID == "" {
		utils.Logger.Warn("SendGrid/Twilio not configured; verification codes are logged only")
		return notify.LogSender{}
	}
	return notify.NewSender(
		"Grihome",
		cfg.SendGridAPIKey, cfg.SendGridFrom,
		cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromPhone,
	)
}
