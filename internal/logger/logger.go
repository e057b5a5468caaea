// Package logger writes one line per event, tagged with a level, to the
// server log file, stderr or any writer.
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"image-saver/internal/config"
	"image-saver/internal/platform/paths"
)

type LoggerService interface {
	Info(msg string)
	Error(msg string, err error)
	Warn(msg string)
	Success(msg string)
	Close() error
}

type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
	LevelSuccess Level = "OK"
)

const redacted = "[redacted]"

type service struct {
	out    *log.Logger
	closer io.Closer
	// secret is replaced in every message before it is written.
	secret string
}

// New opens the server log file. With cfg.Debug set, lines are copied to
// stderr too. The bearer token never reaches the log.
func New(cfg config.Config) (LoggerService, error) {
	f, err := openLogFile()
	if err != nil {
		return nil, err
	}

	var w io.Writer = f
	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, f)
	}
	s := newService(w, f)
	s.secret = strings.TrimSpace(cfg.BearerToken)
	return s, nil
}

func NewStderr() LoggerService {
	return newService(os.Stderr, nil)
}

// NewWriter logs to w. Close does not close w.
func NewWriter(w io.Writer) LoggerService {
	if w == nil {
		w = io.Discard
	}
	return newService(w, nil)
}

func newService(w io.Writer, closer io.Closer) *service {
	return &service{out: log.New(w, "", log.LstdFlags), closer: closer}
}

func openLogFile() (*os.File, error) {
	p, err := paths.LoggerFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
}

func (s *service) Info(msg string)    { s.log(LevelInfo, msg) }
func (s *service) Warn(msg string)    { s.log(LevelWarn, msg) }
func (s *service) Success(msg string) { s.log(LevelSuccess, msg) }

func (s *service) Error(msg string, err error) {
	s.log(LevelError, withCause(msg, err))
}

func (s *service) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *service) log(level Level, msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	if s.secret != "" {
		msg = strings.ReplaceAll(msg, s.secret, redacted)
	}
	s.out.Printf("[%s] %s", level, msg)
}

// withCause appends err to msg as "msg: err". Either part may be empty.
func withCause(msg string, err error) string {
	msg = strings.TrimSpace(msg)
	switch {
	case err == nil:
		return msg
	case msg == "":
		return err.Error()
	default:
		return msg + ": " + err.Error()
	}
}
