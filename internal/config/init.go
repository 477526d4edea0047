package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Init loads .env into the environment and checks the required keys.
func Init(logger *zap.Logger) error {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			return fmt.Errorf("%s is not set", key)
		}
	}
	return nil
}
