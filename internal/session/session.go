// Package session owns per-run state: the resolved configuration and a
// structured log file created for this run and torn down at exit. It replaces
// ad hoc global logging setup with one object passed to the components that
// need it.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KeyArgo/TerraTracer/internal/config"
)

// Session is created once per run.
type Session struct {
	Config  *config.Config
	Log     *zap.Logger
	LogPath string
}

// New creates the log directory and opens a timestamped session log. The
// logger writes JSON records to the file only; user-facing output goes
// through the presenter.
func New(cfg *config.Config) (*Session, error) {
	dir := cfg.Logs.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	logPath := filepath.Join(dir, fmt.Sprintf("terratracer_%s.log", time.Now().Format("20060102_150405")))

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{logPath}
	zc.ErrorOutputPaths = []string{logPath}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("opening session log %s: %w", logPath, err)
	}

	return &Session{Config: cfg, Log: logger, LogPath: logPath}, nil
}

// Close flushes the session log.
func (s *Session) Close() {
	if s.Log != nil {
		_ = s.Log.Sync()
	}
}
