package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process-wide logger, initializing it on first use.
func Get() zerolog.Logger {
	once.Do(func() {
		cw := zerolog.ConsoleWriter{Out: os.Stdout}
		log = zerolog.New(cw).With().Timestamp().Logger()
	})
	return log
}
