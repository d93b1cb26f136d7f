package service

import (
	"restaurants/internal/service/city"
	"restaurants/internal/service/restaurant"
	"restaurants/internal/store"
)

type Service interface {
	Cities() city.CitySrv
	Restaurants() restaurant.RestaurantSrv
}

func NewService(store store.Factory) Service {
	cities := city.NewCitySrv(store.Cities())
	return &service{
		cities:      cities,
		restaurants: restaurant.NewRestaurantSrv(store.Restaurants(), cities),
	}
}

type service struct {
	cities      city.CitySrv
	restaurants restaurant.RestaurantSrv
}

func (s *service) Cities() city.CitySrv {
	return s.cities
}

func (s *service) Restaurants() restaurant.RestaurantSrv {
	return s.restaurants
}
