package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger, defaults to info level json on stdout
func New(opts ...Option) *zap.Logger {
	o := &option{
		level:  zapcore.InfoLevel.String(),
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	cfg := newEncoderConfig()
	encoder := zapcore.NewJSONEncoder(cfg)
	if o.console {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}
	var fields []zap.Field
	if o.serviceName != "" {
		fields = append(fields, zap.String("service_name", o.serviceName))
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(o.writer), NewChangeLevel(o.level)).With(fields)
	// 大于error增加堆栈信息
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel))
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func newLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		l = zap.InfoLevel
	}
	return l
}

func NewChangeLevel(level string) *changeLevel {
	return &changeLevel{
		level: newLevel(level),
	}
}

// changeLevel 开启debug开关时放行所有级别
type changeLevel struct {
	level zapcore.Level
}

func (ch *changeLevel) Enabled(lvl zapcore.Level) bool {
	if debug.Load() {
		return true
	}
	return lvl >= ch.level
}
