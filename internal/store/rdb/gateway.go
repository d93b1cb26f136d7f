package rdb

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurants/pkg/code"
	"restaurants/pkg/storage"
)

type entity[T any] interface {
	*T
	PK() int
}

// gateway implements store.Gateway for any model keyed by an integer primary key.
// scope is applied to every read, restaurant uses it to join its city.
type gateway[T any, P entity[T]] struct {
	db    *storage.DB
	scope func(*gorm.DB) *gorm.DB
}

func (g gateway[T, P]) query(ctx context.Context) *gorm.DB {
	query := g.db.With(ctx).Model(P(new(T)))
	if g.scope != nil {
		query = query.Scopes(g.scope)
	}
	return query
}

func (g gateway[T, P]) Get(ctx context.Context, id int) (*T, error) {
	var obj T
	err := g.query(ctx).Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).Take(&obj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return &obj, nil
}

func (g gateway[T, P]) List(ctx context.Context) ([]*T, error) {
	objs := make([]*T, 0)
	if err := g.query(ctx).Find(&objs).Error; err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return objs, nil
}

func (g gateway[T, P]) Add(ctx context.Context, obj *T) (*T, error) {
	if err := g.db.With(ctx).Omit(clause.Associations).Create(obj).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.WithStack(code.ErrConflict.WithResult(P(obj).PK()))
		}
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return obj, nil
}

// Update writes every column of obj, a missing row is left as is
func (g gateway[T, P]) Update(ctx context.Context, obj *T) (*T, error) {
	err := g.db.With(ctx).Model(obj).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: P(obj).PK()}).
		Select("*").Omit(clause.Associations).
		Updates(obj).Error
	if err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return obj, nil
}

// Delete returns the row as it was before removal, nil when there was nothing to remove
func (g gateway[T, P]) Delete(ctx context.Context, id int) (*T, error) {
	obj, err := g.Get(ctx, id)
	if err != nil || obj == nil {
		return nil, err
	}
	err = g.db.With(ctx).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Delete(P(new(T))).Error
	if err != nil {
		return nil, errors.WithStack(code.ErrInternalServerError.WithResult(err.Error()))
	}
	return obj, nil
}
