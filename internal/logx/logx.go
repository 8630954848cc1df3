package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"qwikshortcuts/internal/paths"
)

// New creates a logger that writes JSON lines to a timestamped file inside
// the global logs directory. The returned closer should be closed when
// logging is no longer needed.
func New(level string) (*zap.Logger, io.Closer, error) {
	dir, err := paths.GlobalLogsDir()
	if err != nil {
		return nil, nil, err
	}
	return NewInDir(dir, level)
}

// NewInDir is New with an explicit logs directory.
func NewInDir(dir, level string) (*zap.Logger, io.Closer, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure logs directory: %w", err)
	}

	filename := time.Now().Format("20060102-150405") + ".log"
	filePath := filepath.Join(dir, filename)
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), lvl)

	logger := zap.New(core).With(zap.Int("pid", os.Getpid()))
	return logger, syncCloser{logger: logger, file: file}, nil
}

type syncCloser struct {
	logger *zap.Logger
	file   *os.File
}

func (s syncCloser) Close() error {
	_ = s.logger.Sync()
	return s.file.Close()
}
