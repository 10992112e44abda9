package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

// Init builds the global logger. HEXTERRAIN_ENV=production switches to JSON output.
func Init() {
	var cfg zap.Config
	if os.Getenv("HEXTERRAIN_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if os.Getenv("HEXTERRAIN_DEBUG") == "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		Log = zap.NewNop()
		return
	}
	Log = l
}

// Sync flushes buffered entries. Errors from syncing stderr on some platforms are ignored.
func Sync() {
	_ = Log.Sync()
}
