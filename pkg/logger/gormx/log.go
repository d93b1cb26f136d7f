package gormx

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// NewLog adapts a zap logger to gorm's logger.Interface.
// SELECT statements are only traced when debug is set, writes are always traced at info level.
func NewLog(l *zap.Logger, debug bool, cfg logger.Config) logger.Interface {
	return &gormLog{
		Logger: l.WithOptions(zap.WithCaller(false)),
		Config: cfg,
		debug:  debug,
	}
}

type gormLog struct {
	*zap.Logger
	logger.Config
	debug bool
}

func (g *gormLog) LogMode(level logger.LogLevel) logger.Interface {
	n := *g
	n.LogLevel = level
	return &n
}

func (g *gormLog) Info(_ context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Info {
		g.Logger.Sugar().Infof(msg, data...)
	}
}

func (g *gormLog) Warn(_ context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Warn {
		g.Logger.Sugar().Warnf(msg, data...)
	}
}

func (g *gormLog) Error(_ context.Context, msg string, data ...interface{}) {
	if g.LogLevel >= logger.Error {
		g.Logger.Sugar().Errorf(msg, data...)
	}
}

func (g *gormLog) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.LogLevel <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && g.LogLevel >= logger.Error &&
		!(g.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		sql, rows := fc()
		g.Logger.Error("sql failed", g.fields(sql, rows, elapsed, zap.Error(err))...)
	case elapsed > g.SlowThreshold && g.SlowThreshold != 0 && g.LogLevel >= logger.Warn:
		sql, rows := fc()
		g.Logger.Warn("slow sql", g.fields(sql, rows, elapsed, zap.Duration("threshold", g.SlowThreshold))...)
	case g.LogLevel == logger.Info:
		sql, rows := fc()
		if isSelect(sql) && !g.debug {
			return
		}
		g.Logger.Info("sql", g.fields(sql, rows, elapsed)...)
	}
}

func (g *gormLog) fields(sql string, rows int64, elapsed time.Duration, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.String("source", utils.FileWithLineNum()),
	}
	if rows != -1 {
		fields = append(fields, zap.Int64("rows", rows))
	}
	return append(fields, extra...)
}

func isSelect(sql string) bool {
	return len(sql) >= 6 && (sql[:6] == "SELECT" || sql[:6] == "select")
}
