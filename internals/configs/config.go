package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	MailHost      string
	MailPort      string
	MailUsername  string
	MailPassword  string
	MailFrom      string
	ContactInbox  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MailHost = GetEnv("MAIL_HOST")
	MailPort = GetEnv("MAIL_PORT", "587")
	MailUsername = GetEnv("MAIL_USERNAME")
	MailPassword = GetEnv("MAIL_PASSWORD")
	MailFrom = GetEnv("MAIL_FROM", "noreply@bhanjyang.coop.np")
	ContactInbox = GetEnv("CONTACT_INBOX", "admin@bhanjyang.coop.np")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set, admin routes will reject every token")
	}
	if MailHost == "" {
		log.Println("⚠️ MAIL_HOST is not set, contact form delivery will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
