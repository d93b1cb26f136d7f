package rdb

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurants/internal/model"
	"restaurants/pkg/code"
	"restaurants/pkg/storage"
)

func newRestaurant(db *storage.DB) *restaurant {
	return &restaurant{
		gateway: gateway[model.Restaurant, *model.Restaurant]{db: db, scope: joinCity},
	}
}

type restaurant struct {
	gateway[model.Restaurant, *model.Restaurant]
}

// joinCity loads Restaurant.City with the same query through a left join
func joinCity(query *gorm.DB) *gorm.DB {
	return query.Joins("City")
}

func (r *restaurant) ListByCity(ctx context.Context, cityID int) ([]*model.Restaurant, error) {
	objs := make([]*model.Restaurant, 0)
	err := r.query(ctx).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "city_id"}, Value: cityID}).
		Find(&objs).Error
	if err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return objs, nil
}
