package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process-wide logger. Anything that is not explicitly a
// development environment gets the production JSON encoder.
func New(environment string) (*zap.Logger, error) {
	env := strings.ToLower(strings.TrimSpace(environment))
	if env == "development" || env == "dev" || env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
