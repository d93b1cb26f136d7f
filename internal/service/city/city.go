package city

import (
	"context"

	"go.uber.org/zap"

	"restaurants/internal/model"
	"restaurants/internal/request"
	"restaurants/internal/response"
	"restaurants/internal/store"
	"restaurants/pkg/logger"
)

// CitySrv translates between the city wire shapes and model.City.
// A nil response means the city does not exist.
type CitySrv interface {
	List(ctx context.Context) ([]*response.City, error)
	Get(ctx context.Context, id int) (*response.City, error)
	Create(ctx context.Context, req *request.City) (*response.City, error)
	Update(ctx context.Context, req *request.City) (*response.City, error)
	Delete(ctx context.Context, id int) (*response.City, error)
	Mapper
}

// Mapper converts cities in both directions, nil maps to nil
type Mapper interface {
	ToModel(req *request.City) *model.City
	ToModels(reqs []*request.City) []*model.City
	ToResponse(city *model.City) *response.City
	ToResponses(cities []*model.City) []*response.City
}

func NewCitySrv(store store.CityStore) CitySrv {
	return citySrv{
		store: store,
	}
}

type citySrv struct {
	store store.CityStore
}

func (c citySrv) List(ctx context.Context) ([]*response.City, error) {
	cities, err := c.store.List(ctx)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the city list", zap.Error(err))
		return nil, err
	}
	return c.ToResponses(cities), nil
}

func (c citySrv) Get(ctx context.Context, id int) (*response.City, error) {
	city, err := c.store.Get(ctx, id)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the city",
			zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return c.ToResponse(city), nil
}

func (c citySrv) Create(ctx context.Context, req *request.City) (*response.City, error) {
	city, err := c.store.Add(ctx, c.ToModel(req))
	if err != nil {
		logger.From(ctx).Error("The database failed to create the city",
			zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	return c.ToResponse(city), nil
}

// Update does not check that the city exists
func (c citySrv) Update(ctx context.Context, req *request.City) (*response.City, error) {
	city, err := c.store.Update(ctx, c.ToModel(req))
	if err != nil {
		logger.From(ctx).Error("The database failed to update the city",
			zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	return c.ToResponse(city), nil
}

func (c citySrv) Delete(ctx context.Context, id int) (*response.City, error) {
	city, err := c.store.Delete(ctx, id)
	if err != nil {
		logger.From(ctx).Error("The database failed to delete the city",
			zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return c.ToResponse(city), nil
}

func (citySrv) ToModel(req *request.City) *model.City {
	if req == nil {
		return nil
	}
	return &model.City{
		ID:   req.ID,
		Name: req.Name,
	}
}

func (c citySrv) ToModels(reqs []*request.City) []*model.City {
	if reqs == nil {
		return nil
	}
	cities := make([]*model.City, len(reqs))
	for i, req := range reqs {
		cities[i] = c.ToModel(req)
	}
	return cities
}

func (citySrv) ToResponse(city *model.City) *response.City {
	if city == nil {
		return nil
	}
	return &response.City{
		ID:   city.ID,
		Name: city.Name,
	}
}

func (c citySrv) ToResponses(cities []*model.City) []*response.City {
	if cities == nil {
		return nil
	}
	results := make([]*response.City, len(cities))
	for i, city := range cities {
		results[i] = c.ToResponse(city)
	}
	return results
}
