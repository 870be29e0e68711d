package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr    string
	GinMode    string
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	TokenTTL   time.Duration
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ResetBase  string
	CORSOrigin []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":4000"
	}

	mongoURI := strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDB := strings.TrimSpace(os.Getenv("MONGODB_DB"))
	if mongoDB == "" {
		mongoDB = "Voxia"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "your-secret-key"
	}

	tokenTTL := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			tokenTTL = d
		}
	}

	smtpPort := 465
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			smtpPort = p
		}
	}

	resetBase := strings.TrimSpace(os.Getenv("RESET_BASE_URL"))
	if resetBase == "" {
		resetBase = "http://localhost:3000/reset-password"
	}

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	} else {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:    appAddr,
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		MongoURI:   mongoURI,
		MongoDB:    mongoDB,
		JWTSecret:  jwtSecret,
		TokenTTL:   tokenTTL,
		SMTPHost:   strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:   smtpPort,
		SMTPUser:   strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:   strings.TrimSpace(os.Getenv("SMTP_PASS")),
		FromEmail:  strings.TrimSpace(os.Getenv("FROM_EMAIL")),
		ResetBase:  resetBase,
		CORSOrigin: origins,
	}
}
