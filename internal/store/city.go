package store

import "restaurants/internal/model"

type CityStore interface {
	Gateway[model.City]
}
