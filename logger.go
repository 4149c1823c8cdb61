package main

import (
	"fmt"
	"github.com/charmbracelet/log"
	"io"
	"notes_board/shared"
	"os"
)

// Logs go to stderr: render and show write their product to stdout.
func initLogger(cfg *shared.Config, stderr io.Writer) (*log.Logger, error) {

	out := stderr
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%v': %w", cfg.LogFile, err)
		}
		out = io.MultiWriter(stderr, logFile)
	}

	logger := log.New(out)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	logger.SetLevel(parseLogLevel(cfg.LogLevel))
	logger.SetReportCaller(true)

	return logger, nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "Debug":
		return log.DebugLevel
	case "Info":
		return log.InfoLevel
	case "Warn":
		return log.WarnLevel
	case "Error":
		return log.ErrorLevel
	default:
		return log.ErrorLevel
	}
}
