package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	CORSOrigins []string

	R2 R2Config
}

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Load reads .env (outside production) and then the process environment.
func Load() *Config {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("Note: No .env file found, using environment variables")
		}
	}

	return &Config{
		Env:         env,
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		R2: R2Config{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
		},
	}
}

// MissingR2 lists the unset R2_* variables.
func (c *Config) MissingR2() []string {
	vars := map[string]string{
		"R2_ENDPOINT":        c.R2.Endpoint,
		"R2_ACCESS_KEY":      c.R2.AccessKey,
		"R2_SECRET_KEY":      c.R2.SecretKey,
		"R2_BUCKET_NAME":     c.R2.Bucket,
		"R2_PUBLIC_BASE_URL": c.R2.PublicBaseURL,
	}

	var missing []string
	for _, k := range []string{"R2_ENDPOINT", "R2_ACCESS_KEY", "R2_SECRET_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL"} {
		if vars[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
