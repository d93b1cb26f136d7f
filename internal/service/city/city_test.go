package city

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurants/internal/model"
	"restaurants/internal/request"
	"restaurants/internal/response"
	"restaurants/internal/store/mock"
	"restaurants/pkg/code"
)

func TestCitySrv_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock.NewMockCityStore(ctrl)
	srv := NewCitySrv(store)
	ctx := context.Background()

	store.EXPECT().Get(ctx, 14).Return(&model.City{ID: 14, Name: "Lyon"}, nil)
	store.EXPECT().Get(ctx, 15).Return(nil, nil)

	got, err := srv.Get(ctx, 14)
	require.NoError(t, err)
	if diff := cmp.Diff(&response.City{ID: 14, Name: "Lyon"}, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	got, err = srv.Get(ctx, 15)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCitySrv_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock.NewMockCityStore(ctrl)
	srv := NewCitySrv(store)
	ctx := context.Background()

	store.EXPECT().List(ctx).Return([]*model.City{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)
	got, err := srv.List(ctx)
	require.NoError(t, err)
	want := []*response.City{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	store.EXPECT().List(ctx).Return(nil, code.ErrInternalServerError)
	_, err = srv.List(ctx)
	assert.True(t, errors.Is(err, code.ErrInternalServerError))
}

func TestCitySrv_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock.NewMockCityStore(ctrl)
	srv := NewCitySrv(store)
	ctx := context.Background()

	store.EXPECT().Add(ctx, &model.City{ID: 14, Name: "Lyon"}).
		DoAndReturn(func(_ context.Context, c *model.City) (*model.City, error) {
			return c, nil
		})
	got, err := srv.Create(ctx, &request.City{ID: 14, Name: "Lyon"})
	require.NoError(t, err)
	assert.Equal(t, &response.City{ID: 14, Name: "Lyon"}, got)

	store.EXPECT().Add(ctx, gomock.Any()).Return(nil, code.ErrConflict.WithResult("id 14"))
	got, err = srv.Create(ctx, &request.City{ID: 14, Name: "Lyon"})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, code.ErrConflict))
}

func TestCitySrv_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock.NewMockCityStore(ctrl)
	srv := NewCitySrv(store)
	ctx := context.Background()

	store.EXPECT().Update(ctx, &model.City{ID: 3, Name: "Nice"}).Return(&model.City{ID: 3, Name: "Nice"}, nil)
	got, err := srv.Update(ctx, &request.City{ID: 3, Name: "Nice"})
	require.NoError(t, err)
	assert.Equal(t, "Nice", got.Name)

	store.EXPECT().Delete(ctx, 3).Return(&model.City{ID: 3, Name: "Nice"}, nil)
	got, err = srv.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &response.City{ID: 3, Name: "Nice"}, got)

	store.EXPECT().Delete(ctx, 3).Return(nil, nil)
	got, err = srv.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCitySrv_Mapper(t *testing.T) {
	srv := NewCitySrv(nil)

	assert.Nil(t, srv.ToModel(nil))
	assert.Nil(t, srv.ToModels(nil))
	assert.Nil(t, srv.ToResponse(nil))
	assert.Nil(t, srv.ToResponses(nil))

	assert.Equal(t, []*model.City{{ID: 1, Name: "A"}, nil},
		srv.ToModels([]*request.City{{ID: 1, Name: "A"}, nil}))
	assert.Equal(t, []*response.City{},
		srv.ToResponses([]*model.City{}))
	assert.Equal(t, &response.City{ID: 2, Name: "B"},
		srv.ToResponse(&model.City{ID: 2, Name: "B", Restaurants: []model.Restaurant{{ID: 9}}}))
}
