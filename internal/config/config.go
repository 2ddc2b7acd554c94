package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/thegrihome/grihome-api/internal/utils"
)

// Config holds all application configuration. It is loaded once at startup;
// nothing reads process environment state after that point, so error
// verbosity and similar switches are fixed at construction time.
type Config struct {
	AppName string
	AppPort string
	Env     string
	DBUrl   string

	AccessTokenExpiry time.Duration

	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	SendGridAPIKey   string
	SendGridFrom     string

	GoogleMapsAPIKey string

	UploadDir       string
	UploadURLPrefix string

	AllowedOrigins []string
}

const DefaultAccessTokenExpiry = 7 * 24 * time.Hour

// Debug reports whether error responses should carry the raw error string.
func (c *Config) Debug() bool {
	return c.Env != "production"
}

// LoadConfig reads the environment (with .env support for local runs) and
// fails fast on anything required.
func LoadConfig() *Config {
	_ = godotenv.Load()

	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	privateKey, publicKey := loadRSAKeys()

	cfg := &Config{
		AppName:           "grihome-api",
		AppPort:           appPort,
		Env:               env,
		DBUrl:             dbUrl,
		AccessTokenExpiry: DefaultAccessTokenExpiry,
		RSAPrivateKey:     privateKey,
		RSAPublicKey:      publicKey,

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:  os.Getenv("TWILIO_FROM_PHONE"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:     os.Getenv("SENDGRID_FROM_EMAIL"),

		GoogleMapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),

		UploadDir:       envOr("UPLOAD_DIR", "./uploads"),
		UploadURLPrefix: envOr("UPLOAD_URL_PREFIX", "/uploads"),

		AllowedOrigins: splitOrigins(envOr("ALLOWED_ORIGINS", "*")),
	}

	if env == "production" {
		if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromPhone == "" {
			utils.Logger.Fatal("Twilio credentials are required in production")
		}
		if cfg.SendGridAPIKey == "" || cfg.SendGridFrom == "" {
			utils.Logger.Fatal("SendGrid credentials are required in production")
		}
	}

	return cfg
}

func loadRSAKeys() (*rsa.PrivateKey, *rsa.PublicKey) {
	privateKeyBase64 := os.Getenv("RSA_PRIVATE_KEY_BASE64")
	if privateKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PRIVATE_KEY_BASE64 env var is missing")
	}
	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}

	publicKeyBase64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if publicKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	return privateKey, publicKey
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
