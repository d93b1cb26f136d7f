package restaurant

import (
	"context"

	"go.uber.org/zap"

	"restaurants/internal/model"
	"restaurants/internal/request"
	"restaurants/internal/response"
	"restaurants/internal/service/city"
	"restaurants/internal/store"
	"restaurants/pkg/logger"
)

// RestaurantSrv translates between the restaurant wire shapes and model.Restaurant.
// A nil response means the restaurant does not exist.
type RestaurantSrv interface {
	List(ctx context.Context) ([]*response.Restaurant, error)
	Get(ctx context.Context, id int) (*response.Restaurant, error)
	Create(ctx context.Context, req *request.Restaurant) (*response.Restaurant, error)
	Update(ctx context.Context, req *request.Restaurant) (*response.Restaurant, error)
	Delete(ctx context.Context, id int) (*response.Restaurant, error)
	ListByCity(ctx context.Context, cityID int) ([]*response.Restaurant, error)

	ToModel(req *request.Restaurant) *model.Restaurant
	ToModels(reqs []*request.Restaurant) []*model.Restaurant
	ToResponse(restaurant *model.Restaurant) *response.Restaurant
	ToResponses(restaurants []*model.Restaurant) []*response.Restaurant
}

// NewRestaurantSrv cities maps the nested city of every response
func NewRestaurantSrv(store store.RestaurantStore, cities city.Mapper) RestaurantSrv {
	return restaurantSrv{
		store:  store,
		cities: cities,
	}
}

type restaurantSrv struct {
	store  store.RestaurantStore
	cities city.Mapper
}

func (r restaurantSrv) List(ctx context.Context) ([]*response.Restaurant, error) {
	restaurants, err := r.store.List(ctx)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the restaurant list", zap.Error(err))
		return nil, err
	}
	return r.ToResponses(restaurants), nil
}

func (r restaurantSrv) Get(ctx context.Context, id int) (*response.Restaurant, error) {
	restaurant, err := r.store.Get(ctx, id)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the restaurant",
			zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return r.ToResponse(restaurant), nil
}

func (r restaurantSrv) Create(ctx context.Context, req *request.Restaurant) (*response.Restaurant, error) {
	restaurant, err := r.store.Add(ctx, r.ToModel(req))
	if err != nil {
		logger.From(ctx).Error("The database failed to create the restaurant",
			zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	return r.ToResponse(restaurant), nil
}

// Update does not check that the restaurant or its city exists
func (r restaurantSrv) Update(ctx context.Context, req *request.Restaurant) (*response.Restaurant, error) {
	restaurant, err := r.store.Update(ctx, r.ToModel(req))
	if err != nil {
		logger.From(ctx).Error("The database failed to update the restaurant",
			zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	return r.ToResponse(restaurant), nil
}

func (r restaurantSrv) Delete(ctx context.Context, id int) (*response.Restaurant, error) {
	restaurant, err := r.store.Delete(ctx, id)
	if err != nil {
		logger.From(ctx).Error("The database failed to delete the restaurant",
			zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return r.ToResponse(restaurant), nil
}

func (r restaurantSrv) ListByCity(ctx context.Context, cityID int) ([]*response.Restaurant, error) {
	restaurants, err := r.store.ListByCity(ctx, cityID)
	if err != nil {
		logger.From(ctx).Error("The database failed to query the restaurants of the city",
			zap.Int("city_id", cityID), zap.Error(err))
		return nil, err
	}
	return r.ToResponses(restaurants), nil
}

func (restaurantSrv) ToModel(req *request.Restaurant) *model.Restaurant {
	if req == nil {
		return nil
	}
	return &model.Restaurant{
		ID:     req.ID,
		Name:   req.Name,
		CityID: req.CityID,
	}
}

func (r restaurantSrv) ToModels(reqs []*request.Restaurant) []*model.Restaurant {
	if reqs == nil {
		return nil
	}
	restaurants := make([]*model.Restaurant, len(reqs))
	for i, req := range reqs {
		restaurants[i] = r.ToModel(req)
	}
	return restaurants
}

func (r restaurantSrv) ToResponse(restaurant *model.Restaurant) *response.Restaurant {
	if restaurant == nil {
		return nil
	}
	return &response.Restaurant{
		ID:   restaurant.ID,
		Name: restaurant.Name,
		City: r.cities.ToResponse(restaurant.City),
	}
}

func (r restaurantSrv) ToResponses(restaurants []*model.Restaurant) []*response.Restaurant {
	if restaurants == nil {
		return nil
	}
	results := make([]*response.Restaurant, len(restaurants))
	for i, restaurant := range restaurants {
		results[i] = r.ToResponse(restaurant)
	}
	return results
}
