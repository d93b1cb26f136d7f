package store

import (
	"context"

	"restaurants/internal/model"
)

// RestaurantStore returns restaurants with their City joined on Get, List and ListByCity
type RestaurantStore interface {
	Gateway[model.Restaurant]
	ListByCity(ctx context.Context, cityID int) ([]*model.Restaurant, error)
}
