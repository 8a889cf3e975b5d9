package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger логгер с printf-интерфейсом поверх logrus.
// Пишет в stdout и, если задан путь, дополнительно в файл.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

// New создает логгер. filePath может быть пустым, level - debug|info|warn|error.
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		entry: &logrus.Logger{
			Out:       os.Stdout,
			Formatter: &logrus.TextFormatter{FullTimestamp: true, DisableLevelTruncation: true},
			Hooks:     make(logrus.LevelHooks),
			Level:     lvl,
			ExitFunc:  os.Exit,
		},
	}

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		l.entry.Out = io.MultiWriter(os.Stdout, f)
	}

	return l, nil
}

// NewWithWriter создает логгер, пишущий только в w (для тестов и утилит)
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	return &Logger{
		entry: &logrus.Logger{
			Out:       w,
			Formatter: &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true, DisableLevelTruncation: true},
			Hooks:     make(logrus.LevelHooks),
			Level:     lvl,
			ExitFunc:  os.Exit,
		},
	}, nil
}

func parseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.entry.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
