package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once     sync.Once
	instance *log.Logger
)

func get() *log.Logger {
	once.Do(func() {
		instance = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Prefix:          "clock",
		})
		instance.SetLevel(log.InfoLevel)
	})
	return instance
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	get().SetLevel(l)
	return nil
}

func SetOutput(w io.Writer) {
	get().SetOutput(w)
}

func Debug(msg string, args ...interface{}) {
	get().Debugf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	get().Infof(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	get().Warnf(msg, args...)
}

func Fatal(msg string, args ...interface{}) {
	get().Fatalf(msg, args...)
}
