package logging

import (
	"sync"
)

var (
	instance  *Logger
	mu        sync.RWMutex
	logConfig *Config
)

// Configure sets the logging configuration.
// This should be called before any logger usage.
func Configure(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
}

// InitLogger configures and builds the process-wide logger in one step.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	logConfig = config
	instance = logger
	return nil
}

// GetLogger returns the singleton logger instance.
// If the logger hasn't been initialized yet, it initializes it with the
// config passed to Configure. Without one it panics.
func GetLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return instance
	}

	if logConfig == nil {
		panic("logger configuration not set - call logging.Configure() first")
	}

	var err error
	instance, err = NewLogger(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return instance
}
