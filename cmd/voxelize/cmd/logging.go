package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging configures the global zerolog logger with two sinks sharing
// one level filter: a human-readable console writer, and a rotating file
// sink under ./logs.
func setupLogging(consoleLevel string) error {
	level, err := zerolog.ParseLevel(consoleLevel)
	if err != nil {
		return fmt.Errorf("unrecognized logging level %q: %w", consoleLevel, err)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	file := &lumberjack.Logger{
		Filename:   "logs/voxelize.log",
		MaxSize:    28,
		MaxBackups: 7,
		Compress:   false,
	}

	multi := zerolog.MultiLevelWriter(console, file)
	log.Logger = zerolog.New(multi).Level(level).With().Timestamp().Logger()

	return nil
}
