package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/thegrihome/grihome-api/internal/app"
	"github.com/thegrihome/grihome-api/internal/config"
	"github.com/thegrihome/grihome-api/internal/controllers"
	"github.com/thegrihome/grihome-api/internal/middleware"
	"github.com/thegrihome/grihome-api/internal/routes"
	"github.com/thegrihome/grihome-api/internal/utils"
)

func main() {
	utils.InitLogger("grihome-api")

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (pool, repositories, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer application.Close()

	if err := application.CleanupService.Start(); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to start cleanup cron")
	}

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application.DB)
	authCtrl := controllers.NewAuthController(application.AuthService, cfg)
	userCtrl := controllers.NewUserController(application.UserService, application.PropertyService, cfg)
	propertyCtrl := controllers.NewPropertyController(application.PropertyService, cfg)
	projectCtrl := controllers.NewProjectController(application.ProjectService, cfg)
	forumCtrl := controllers.NewForumController(application.ForumService, cfg)

	// 4) Router. Every route goes through the method gate so the 405 body is
	// the documented one; auth-gated routes additionally pass the JWT check.
	auth := middleware.Auth(cfg.RSAPublicKey, cfg.Debug())
	open := func(method string, h http.HandlerFunc) http.Handler {
		return middleware.RequireMethod(method, middleware.MessageKey)(h)
	}
	gated := func(method string, h http.HandlerFunc) http.Handler {
		return middleware.RequireMethod(method, middleware.MessageKey)(auth(h))
	}

	router := mux.NewRouter()
	router.Handle(routes.Health, open(http.MethodGet, healthCtrl.HealthCheckHandler))
	router.Handle(routes.Metrics, promhttp.Handler())

	router.Handle(routes.AuthSignup, open(http.MethodPost, authCtrl.Signup))
	router.Handle(routes.AuthLogin, open(http.MethodPost, authCtrl.Login))

	router.Handle(routes.UserInfo, gated(http.MethodGet, userCtrl.Info))
	router.Handle(routes.UserVerifyMobile, gated(http.MethodPost, userCtrl.VerifyMobile))
	router.Handle(routes.UserVerifyEmail, gated(http.MethodPost, userCtrl.VerifyEmail))
	router.Handle(routes.UserRequestOTP, gated(http.MethodPost, userCtrl.RequestOTP))
	router.Handle(routes.UserGetPassword, gated(http.MethodPost, userCtrl.GetPassword))
	router.Handle(routes.UserProperties, gated(http.MethodGet, userCtrl.Properties))

	router.Handle(routes.PropertiesSearch, open(http.MethodGet, propertyCtrl.Search))
	router.Handle(routes.PropertiesCreate, gated(http.MethodPost, propertyCtrl.Create))
	router.Handle(routes.PropertiesToggleFavorite, gated(http.MethodPost, propertyCtrl.ToggleFavorite))
	router.Handle(routes.PropertiesFavorites, gated(http.MethodGet, propertyCtrl.Favorites))
	router.Handle(routes.PropertiesArchive, gated(http.MethodPost, propertyCtrl.Archive))
	router.Handle(routes.PropertiesMarkSold, gated(http.MethodPost, propertyCtrl.MarkSold))
	router.Handle(routes.PropertiesReactivate, gated(http.MethodPost, propertyCtrl.Reactivate))
	router.Handle(routes.PropertiesInterest, gated(http.MethodPost, propertyCtrl.Interest))
	router.Handle(routes.PropertyByID, open(http.MethodGet, propertyCtrl.Get))

	// The projects listing keeps its error-keyed 405 body.
	router.Handle(routes.Projects,
		middleware.RequireMethod(http.MethodGet, middleware.ErrorKey)(http.HandlerFunc(projectCtrl.List)))
	router.Handle(routes.ProjectsArchive, gated(http.MethodPost, projectCtrl.Archive))
	router.Handle(routes.ProjectsUpdate, gated(http.MethodPut, projectCtrl.Update))

	router.Handle(routes.ForumCategories, open(http.MethodGet, forumCtrl.Categories))
	// GET is open, POST requires a session; the controller gates the method
	// pair itself, auth applies only to the write.
	router.Handle(routes.ForumPosts, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			auth(http.HandlerFunc(forumCtrl.Posts)).ServeHTTP(w, r)
			return
		}
		forumCtrl.Posts(w, r)
	}))
	router.Handle(routes.ForumReplies, gated(http.MethodPost, forumCtrl.CreateReply))
	router.Handle(routes.ForumUserPosts, open(http.MethodGet, forumCtrl.UserPosts))
	router.Handle(routes.ForumInitCities, open(http.MethodPost, forumCtrl.InitCities))

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
