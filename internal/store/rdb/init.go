package rdb

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"restaurants/internal/model"
	"restaurants/internal/store"
	"restaurants/pkg/logger"
	"restaurants/pkg/storage"
)

// Open connects to the database described by the database config section
func Open(ctx context.Context) (*storage.DB, error) {
	var cfg storage.Config
	if err := viper.UnmarshalKey("database", &cfg); err != nil {
		return nil, err
	}
	return storage.New(ctx, cfg)
}

// OpenWithRetry retries Open with exponential backoff until maxElapsed passes
func OpenWithRetry(ctx context.Context, maxElapsed time.Duration) (*storage.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsed
	var db *storage.DB
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = Open(ctx)
		return err
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.From(ctx).Warn("fail to connect database", zap.Error(err), zap.Duration("retry_in", next))
	})
	return db, err
}

// NewFactory create the gorm backed store factory
func NewFactory(db *storage.DB) store.Factory {
	return &dataStore{db: db}
}

type dataStore struct {
	db *storage.DB
}

func (d *dataStore) Cities() store.CityStore {
	return newCity(d.db)
}

func (d *dataStore) Restaurants() store.RestaurantStore {
	return newRestaurant(d.db)
}

// AutoMigrate creates or alters the city and restaurant tables to match the models.
// Production schemas are managed with goose, see migrations/.
func AutoMigrate(ctx context.Context, db *storage.DB) error {
	return db.With(ctx).AutoMigrate(&model.City{}, &model.Restaurant{})
}
