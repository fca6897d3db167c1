package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// LogFileName is the active log file inside the log directory
	LogFileName = "web-bg.log"

	// MaxLogSize triggers rotation of the previous run's log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// Options selects log destination and verbosity
// LOG_LEVEL and LOG_FORMAT override Level and Format when set
type Options struct {
	Debug  bool   // Without Debug everything is discarded, the terminal belongs to the renderer
	Level  string // logrus level name
	Format string // "text" or "json"
	Dir    string
}

// Setup builds the session logger
// The returned closer releases the log file, it is a no-op when logging is discarded
func Setup(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetLevel(parseLevel(opts.Level))
	log.SetFormatter(formatter(opts.Format))

	if !opts.Debug {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	file, err := openLogFile(opts.Dir)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(file)
	return log, file, nil
}

// Session returns an entry tagged with a fresh session id
func Session(log logrus.FieldLogger) (logrus.FieldLogger, string) {
	id := uuid.NewString()
	return log.WithField("session", id), id
}

func parseLevel(name string) logrus.Level {
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		name = env
	}
	if name == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatter(name string) logrus.Formatter {
	if env, ok := os.LookupEnv("LOG_FORMAT"); ok {
		name = env
	}
	if strings.EqualFold(name, "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	}
}

// openLogFile opens dir/web-bg.log for append, rotating it first when oversized
func openLogFile(dir string) (*os.File, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(dir, fmt.Sprintf("web-bg-%s.log", stamp))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
