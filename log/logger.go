package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
)

// Init builds the shared logger writing JSON to the given outputs. It
// replaces any logger built before. Without outputs it writes to stdout.
func Init(outputs ...string) error {
	base, err := build(outputs)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logger = base.Sugar()

	return nil
}

// New returns the same logger all the time
func New() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}

	base, err := build(nil)
	if err != nil {
		panic(err)
	}

	logger = base.Sugar()
	return logger
}

func build(outputs []string) (*zap.Logger, error) {
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = outputs

	return cfg.Build()
}
