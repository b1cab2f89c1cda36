package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AuthCookieName    string
	CORSAllowOrigins  []string

	// Bootstrap super admin, created only when no SUPER_ADMIN row exists yet.
	SuperAdminName     string `mapstructure:"SUPER_ADMIN_NAME"`
	SuperAdminEmail    string `mapstructure:"SUPER_ADMIN_EMAIL"`
	SuperAdminPassword string `mapstructure:"SUPER_ADMIN_PASSWORD"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "temple-donation-app")
	viper.SetDefault("AUTH_COOKIE_NAME", "token")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SUPER_ADMIN_NAME", "Super Admin")
	viper.SetDefault("SUPER_ADMIN_EMAIL", "")
	viper.SetDefault("SUPER_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	cfg.SuperAdminName = viper.GetString("SUPER_ADMIN_NAME")
	cfg.SuperAdminEmail = viper.GetString("SUPER_ADMIN_EMAIL")
	cfg.SuperAdminPassword = viper.GetString("SUPER_ADMIN_PASSWORD")
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		log.Println("Warning: SUPER_ADMIN_EMAIL/SUPER_ADMIN_PASSWORD not set. Super admin bootstrap is skipped.")
	}

	return cfg, nil
}
