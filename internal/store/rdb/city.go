package rdb

import (
	"restaurants/internal/model"
	"restaurants/internal/store"
	"restaurants/pkg/storage"
)

func newCity(db *storage.DB) store.CityStore {
	return gateway[model.City, *model.City]{db: db}
}
