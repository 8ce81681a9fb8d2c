package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// Formatter 输出形如 2006-01-02 15:04:05 [info] file.go:12 Func msg k=v
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Time.Format(time.DateTime))
	b.WriteString(" [")
	b.WriteString(strings.ToLower(entry.Level.String()))
	b.WriteString("] ")

	if entry.Caller != nil {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		if i := strings.LastIndex(funcName, "."); i >= 0 {
			funcName = funcName[i+1:]
		}
		fmt.Fprintf(&b, "%s:%d %s ", fileName, entry.Caller.Line, funcName)
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogOptions 日志输出配置，Dir 为空时输出到 stderr
type LogOptions struct {
	Level    string
	Dir      string
	Name     string
	MaxAge   time.Duration
	Rotation time.Duration
}

func (o *LogOptions) fill() {
	if o.Name == "" {
		o.Name = filepath.Base(os.Args[0])
	}
	if o.MaxAge <= 0 {
		o.MaxAge = 7 * 24 * time.Hour
	}
	if o.Rotation <= 0 {
		o.Rotation = 24 * time.Hour
	}
}

// ParseLevel 无法识别时使用 info
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Logger 创建 pitaya 使用的日志，调用方通过 logger.SetLogger 安装
func Logger(opts LogOptions) (interfaces.Logger, error) {
	opts.fill()
	l := logrus.New()
	if opts.Dir != "" {
		writer, err := newWriter(opts)
		if err != nil {
			return nil, err
		}
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(ParseLevel(opts.Level))
	return logruswrapper.NewWithFieldLogger(l), nil
}

func newWriter(opts LogOptions) (*SafeRotateLogs, error) {
	// 确保日志目录存在
	if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
		return nil, err
	}
	pattern := filepath.Join(opts.Dir, fmt.Sprintf("%s-%%Y%%m%%d.log", opts.Name))
	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(opts.MaxAge),
		rotatelogs.WithRotationTime(opts.Rotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: pattern,
		maxAge:     opts.MaxAge,
		rotation:   opts.Rotation,
	}, nil
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	current := s.RotateLogs.CurrentFileName()
	if current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			writer, err := rotatelogs.New(
				s.logPattern,
				rotatelogs.WithMaxAge(s.maxAge),
				rotatelogs.WithRotationTime(s.rotation),
			)
			if err != nil {
				return 0, fmt.Errorf("failed to recreate log writer: %w", err)
			}
			s.RotateLogs = writer
		}
	}
	return s.RotateLogs.Write(p)
}
