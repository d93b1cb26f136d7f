package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"restaurants/pkg/logger"
	"restaurants/pkg/logger/gormx"
)

const (
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	defaultMaxIdleConns = 2
)

// Config mirrors the database.* config section
type Config struct {
	Driver   string `mapstructure:"driver"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	IP       string `mapstructure:"ip"`
	Port     string `mapstructure:"port"`
	// sqlite 时为文件路径或 memory dsn
	Name    string `mapstructure:"name"`
	Charset string `mapstructure:"charset"`
	Debug   bool   `mapstructure:"debug"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Timeout         time.Duration `mapstructure:"timeout"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
}

func (c *Config) setDefaults() {
	if c.Driver == "" {
		c.Driver = DriverMysql
	}
	if c.IP == "" {
		c.IP = "127.0.0.1"
	}
	if c.Port == "" {
		c.Port = "3306"
	}
	if c.Charset == "" {
		c.Charset = "utf8mb4"
	}
	// database/sql 默认保留 2 个空闲连接，0 会让每次查询都新建连接
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = defaultMaxIdleConns
	}
	if c.SlowThreshold == 0 {
		c.SlowThreshold = time.Second
	}
}

func (c *Config) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverMysql:
		return mysql.New(mysql.Config{
			DSN:                  Dsn(c.User, c.Password, c.IP, c.Port, c.Name, c.Charset, c.Timeout),
			DisableWithReturning: true,
		}), nil
	case DriverPostgres:
		return postgres.Open(PostgresDsn(c.User, c.Password, c.IP, c.Port, c.Name)), nil
	case DriverSqlite:
		return sqlite.Open(SqliteDsn(c.Name)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// New opens the pool, SQL logs go through the logger carried by ctx
func New(ctx context.Context, cfg Config, plugins ...gorm.Plugin) (*DB, error) {
	cfg.setDefaults()
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}
	client, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true, // 表名不加复数
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormx.NewLog(logger.From(ctx), cfg.Debug, logConfig(cfg, glogger.Warn)),
	})
	if err != nil {
		return nil, err
	}
	for _, plugin := range plugins {
		if err = client.Use(plugin); err != nil {
			return nil, err
		}
	}

	sqlDB, err := client.DB()
	if err != nil {
		return nil, err
	}
	// MaxOpenConns 为 0 表示不限制
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{DB: client, cfg: cfg}, nil
}

func logConfig(cfg Config, level glogger.LogLevel) glogger.Config {
	return glogger.Config{SlowThreshold: cfg.SlowThreshold, LogLevel: level}
}

func Dsn(user, password, ip, port, database, charset string, timeout time.Duration) string {
	uri := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=true&loc=UTC",
		user, password, ip, port, database, charset)
	if timeout != 0 {
		uri += "&timeout=" + timeout.String()
	}
	return uri
}

// SqliteDsn turns on foreign key enforcement, sqlite leaves it off for every new connection
func SqliteDsn(name string) string {
	if strings.Contains(name, "_foreign_keys=") || strings.Contains(name, "_fk=") {
		return name
	}
	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	return name + sep + "_foreign_keys=1"
}

func PostgresDsn(user, password, ip, port, database string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		ip, port, user, password, database)
}

type DB struct {
	*gorm.DB
	cfg Config
}

// With returns a session bound to ctx whose sql logs go to the logger carried by ctx
func (d *DB) With(ctx context.Context) *gorm.DB {
	level := glogger.Warn
	if d.cfg.Debug {
		level = glogger.Info
	}
	return d.Session(&gorm.Session{
		Context: ctx,
		Logger:  gormx.NewLog(logger.From(ctx), d.cfg.Debug, logConfig(d.cfg, level)),
	})
}

func (d *DB) Close() error {
	s, err := d.DB.DB()
	if err != nil {
		return err
	}
	return s.Close()
}
