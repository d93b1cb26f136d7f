package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"restaurants/config"
	"restaurants/internal/code"
	"restaurants/internal/router"
	"restaurants/internal/service"
	"restaurants/internal/store/rdb"
	"restaurants/pkg/logger"
	"restaurants/pkg/prometheus"
	"restaurants/pkg/routine"
	"restaurants/pkg/token"
	"restaurants/pkg/tracing"
	"restaurants/pkg/validator"
)

var configFile = flag.String("f", "./config/restaurants.yaml", "the config file")

func main() {
	flag.Parse()
	// 初始化配置
	if err := config.LoadConfig(*configFile); err != nil {
		log.Fatal(err)
	}
	if err := code.Loading(); err != nil {
		log.Fatal(err)
	}
	if mode := strings.ToLower(viper.GetString("mode")); mode != "" {
		gin.SetMode(mode)
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	serviceName := viper.GetString("service.name")
	out, closeOut := logger.Output(viper.GetBool("log.console"), viper.GetString("log.path"))
	defer closeOut()
	l := logger.New(
		logger.WithServerName(serviceName),
		logger.WithLevel(viper.GetString("log.level")),
		logger.WithConsole(viper.GetBool("log.console")),
		logger.WithWriter(out),
	)
	defer l.Sync()
	ctx := logger.With(context.Background(), l)

	if _, err := maxprocs.Set(maxprocs.Logger(l.Sugar().Infof)); err != nil {
		l.Warn("fail to set GOMAXPROCS", zap.Error(err))
	}

	// 初始化数据库
	db, err := rdb.OpenWithRetry(ctx, viper.GetDuration("database.connect_timeout"))
	if err != nil {
		return err
	}
	defer db.Close()
	var sqlDB *sql.DB
	if sqlDB, err = db.DB.DB(); err != nil {
		return err
	}

	manager, err := token.NewJWTManager(viper.GetString("auth.secret"), viper.GetDuration("auth.expire"))
	if err != nil {
		return err
	}

	shutdownTracer, err := tracing.New(ctx, serviceName, tracing.WithEndpoint(viper.GetString("trace.endpoint")))
	if err != nil {
		return err
	}

	if binding.Validator, err = validator.New(); err != nil {
		return err
	}

	conns := prometheus.NewConnectionCollector(serviceName)
	srv := &http.Server{
		Addr: viper.GetString("service.addr"),
		Handler: router.New(service.NewService(rdb.NewFactory(db)), manager,
			router.WithServiceName(serviceName),
			router.WithLogger(l),
			router.WithHealthCheck(sqlDB),
			router.WithMetrics(prometheus.NewStatusMetricHandler(sqlDB, conns)),
			router.WithRateLimit(float32(viper.GetFloat64("limit.qps")), viper.GetInt("limit.burst")),
		),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	conns.Track(srv)

	g := routine.NewGroup(ctx)
	// 服务启动流程
	g.Go(func(ctx context.Context) error {
		return startAction(ctx, srv)
	})
	// 服务关闭流程
	g.Go(func(ctx context.Context) error {
		return shutdownAction(ctx, srv, shutdownTracer)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		l.Error("server run with error", zap.Error(err))
		return err
	}
	return nil
}

func startAction(ctx context.Context, srv *http.Server) error {
	logger.From(ctx).Info("listen",
		zap.String("addr", srv.Addr), zap.String("mode", gin.Mode()))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

const DefaultStopTime = 15 * time.Second

func shutdownAction(ctx context.Context, srv *http.Server, shutdownTracer func(context.Context) error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-quit:
	}
	newCtx, cancel := context.WithTimeout(context.Background(), DefaultStopTime)
	defer cancel()
	logger.From(ctx).Info("shutting down server...")
	return multierr.Combine(err, srv.Shutdown(newCtx), shutdownTracer(newCtx))
}
