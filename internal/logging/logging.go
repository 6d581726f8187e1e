package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a file-backed sugared logger. The TUI owns the terminal, so
// nothing is ever written to stdout or stderr.
func New(path string) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(f),
		zap.InfoLevel,
	)

	return zap.New(core).Sugar(), nil
}

// Nop returns a logger that discards everything, so library code can log
// unconditionally.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
