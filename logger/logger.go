// Package logger holds the process wide diagnostic logger.
//
// It is silent unless Init is called with verbose set.
package logger

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// Init configures the logger. Verbose logs are human readable and go to stderr.
func Init(verbose bool) error {
	if !verbose {
		logger = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync flushes buffered logs.
func Sync() {
	_ = logger.Sync()
}
