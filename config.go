package timeline

import "go.uber.org/zap"

// Config controls the ambient behavior of a Timeline
type Config struct {
	Logger          *zap.Logger
	Name            string
	InitialCapacity int
}

const (
	DefaultName            = "timeline"
	DefaultInitialCapacity = 16
)

func DefaultConfig() Config {
	return Config{
		Logger:          zap.NewNop(),
		Name:            DefaultName,
		InitialCapacity: DefaultInitialCapacity,
	}
}

func (c Config) logger() *zap.Logger {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if c.Name != "" {
		logger = logger.Named(c.Name)
	}
	return logger
}

func (c Config) capacity() int {
	return max(c.InitialCapacity, 0)
}
