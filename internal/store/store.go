package store

//go:generate mockgen -destination=./mock/store_mock.go -package=mock restaurants/internal/store CityStore,RestaurantStore

import "context"

// Factory defines the restaurants storage interface.
type Factory interface {
	Cities() CityStore
	Restaurants() RestaurantStore
}

// Gateway is the CRUD contract shared by every entity keyed by an integer id.
// Absent rows are reported as a nil entity with a nil error.
type Gateway[T any] interface {
	Get(ctx context.Context, id int) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Add(ctx context.Context, obj *T) (*T, error)
	Update(ctx context.Context, obj *T) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}
