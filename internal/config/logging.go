package config

import "movie-catalog/pkg/logger"

// Options converts the log section for logger.Init.
func (c LogConfig) Options() logger.Options {
	return logger.Options{
		Level:       c.Level,
		Development: c.Development,
		File:        c.File,
		MaxSizeMB:   c.MaxSizeMB,
		MaxBackups:  c.MaxBackups,
		MaxAgeDays:  c.MaxAgeDays,
	}
}
