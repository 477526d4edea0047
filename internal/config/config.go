package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the application logger.
func NewLogger() (*zap.Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("initialize zap logger: %w", err)
	}
	return logger, nil
}
