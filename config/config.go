package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	DataDir    string
	PublicDir  string

	// VAPIDSubscriber is the contact URI sent with every push, as
	// required by the push services.
	VAPIDSubscriber string

	SMSEnabled  bool
	AWSRegion   string
	SMSSenderID string
}

func Load() Config {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	return Config{
		ListenAddr:      ":" + getenv("PORT", "8080"),
		DataDir:         getenv("DATA_DIR", "data"),
		PublicDir:       getenv("PUBLIC_DIR", "public"),
		VAPIDSubscriber: getenv("VAPID_SUBSCRIBER", "mailto:admin@example.com"),
		SMSEnabled:      os.Getenv("SMS_ENABLED") == "true",
		AWSRegion:       getenv("AWS_REGION", "us-east-1"),
		SMSSenderID:     os.Getenv("SMS_SENDER_ID"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
