package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

// LevelNames lists the accepted level names from most to least verbose.
func LevelNames() []string {
	names := lo.Keys(levels)
	slices.SortFunc(names, func(a, b string) int { return int(levels[a]) - int(levels[b]) })
	return names
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	level, ok := levels[name]
	if !ok {
		return zap.InfoLevel, fmt.Errorf("unrecognized log level %q (want one of %s)", name, strings.Join(LevelNames(), ", "))
	}
	return level, nil
}

// NewLogger builds the process logger from the log settings.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(level)
	loggerConfig.Encoding = "console"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.OutputPaths = []string{"stderr"}
	if c.File != "" {
		loggerConfig.OutputPaths = []string{c.File}
	}
	return loggerConfig.Build()
}
