package logger

import "go.uber.org/zap"

// New builds a production zap logger at the given text level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl

	return config.Build()
}
