package restaurant

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurants/internal/model"
	"restaurants/internal/request"
	"restaurants/internal/response"
	"restaurants/internal/service/city"
	"restaurants/internal/store/mock"
)

func newSrv(t *testing.T) (RestaurantSrv, *mock.MockRestaurantStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := mock.NewMockRestaurantStore(ctrl)
	return NewRestaurantSrv(store, city.NewCitySrv(nil)), store
}

func TestRestaurantSrv_Get(t *testing.T) {
	srv, store := newSrv(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, 1).Return(&model.Restaurant{
		ID: 1, Name: "Bouchon", CityID: 14, City: &model.City{ID: 14, Name: "Lyon"},
	}, nil)
	store.EXPECT().Get(ctx, 2).Return(nil, nil)

	got, err := srv.Get(ctx, 1)
	require.NoError(t, err)
	want := &response.Restaurant{ID: 1, Name: "Bouchon", City: &response.City{ID: 14, Name: "Lyon"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	got, err = srv.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRestaurantSrv_ListByCity(t *testing.T) {
	srv, store := newSrv(t)
	ctx := context.Background()

	lyon := &model.City{ID: 14, Name: "Lyon"}
	rows := make([]*model.Restaurant, 0, 4)
	for i := 1; i <= 4; i++ {
		rows = append(rows, &model.Restaurant{ID: i, CityID: 14, City: lyon})
	}
	store.EXPECT().ListByCity(ctx, 14).Return(rows, nil)
	store.EXPECT().ListByCity(ctx, 15).Return([]*model.Restaurant{}, nil)

	got, err := srv.ListByCity(ctx, 14)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, r := range got {
		assert.Equal(t, &response.City{ID: 14, Name: "Lyon"}, r.City)
	}

	got, err = srv.ListByCity(ctx, 15)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRestaurantSrv_Write(t *testing.T) {
	srv, store := newSrv(t)
	ctx := context.Background()

	stored := &model.Restaurant{ID: 7, Name: "Pizza", CityID: 3}
	store.EXPECT().Add(ctx, stored).Return(stored, nil)
	got, err := srv.Create(ctx, &request.Restaurant{ID: 7, Name: "Pizza", CityID: 3})
	require.NoError(t, err)
	assert.Equal(t, &response.Restaurant{ID: 7, Name: "Pizza"}, got, "city not loaded on insert")

	store.EXPECT().Update(ctx, &model.Restaurant{ID: 7, Name: "Pasta", CityID: 4}).Return(nil, nil)
	_, err = srv.Update(ctx, &request.Restaurant{ID: 7, Name: "Pasta", CityID: 4})
	require.NoError(t, err)

	store.EXPECT().Delete(ctx, 7).Return(nil, nil)
	got, err = srv.Delete(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRestaurantSrv_Mapper(t *testing.T) {
	srv, _ := newSrv(t)

	assert.Nil(t, srv.ToModel(nil))
	assert.Nil(t, srv.ToModels(nil))
	assert.Nil(t, srv.ToResponse(nil))
	assert.Nil(t, srv.ToResponses(nil))

	got := srv.ToResponse(&model.Restaurant{ID: 1, Name: "A", CityID: 9})
	require.NotNil(t, got)
	assert.Nil(t, got.City)

	got = srv.ToResponse(&model.Restaurant{ID: 1, Name: "A", CityID: 9, City: &model.City{ID: 9, Name: "X"}})
	assert.Equal(t, &response.City{ID: 9, Name: "X"}, got.City)

	assert.Equal(t, []*model.Restaurant{{ID: 1, Name: "A", CityID: 9}},
		srv.ToModels([]*request.Restaurant{{ID: 1, Name: "A", CityID: 9}}))
}
