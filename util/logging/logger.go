package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// NewLogger builds a zap logger. The production format writes JSON, any
// other format writes human readable console output. An unknown level
// falls back to info.
func NewLogger(level, format string, fields map[string]any) (*zap.Logger, error) {
	var config zap.Config
	if format == "" || format == FormatProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = fields
	config.Level = parseLevel(level)

	return config.Build()
}

func parseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
