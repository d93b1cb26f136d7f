package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurants/internal/response"
	"restaurants/internal/service"
	"restaurants/internal/store/rdb/rdbtest"
	"restaurants/pkg/token"
	"restaurants/pkg/utils/v"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	bearer string
}

func newClient(t *testing.T) *client {
	gin.SetMode(gin.TestMode)
	manager, err := token.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	bearer, err := manager.Generate("tester")
	require.NoError(t, err)
	return &client{
		t:      t,
		router: New(service.NewService(rdbtest.NewFactory(t)), manager),
		bearer: bearer,
	}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.bearer != "" {
		req.Header.Set(v.HeaderAuthorization, v.BearerScheme+c.bearer)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestCityLifecycle(t *testing.T) {
	c := newClient(t)
	city14 := response.City{ID: 14, Name: "City 14"}

	w := c.do(http.MethodGet, "/api/cities/14", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "absent before creation")
	assert.Empty(t, w.Body.String())

	w = c.do(http.MethodPost, "/api/cities", map[string]interface{}{"id": 14, "name": "City 14"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/cities/14", w.Header().Get(v.HeaderLocation))
	assert.Equal(t, city14, decode[response.City](t, w))

	w = c.do(http.MethodGet, "/api/cities/14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, city14, decode[response.City](t, w))

	w = c.do(http.MethodPost, "/api/restaurants",
		map[string]interface{}{"id": 14, "name": "Restaurant 14", "cityId": 14})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/restaurants/14", w.Header().Get(v.HeaderLocation))

	w = c.do(http.MethodGet, "/api/restaurants/14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	want := response.Restaurant{ID: 14, Name: "Restaurant 14", City: &city14}
	if diff := cmp.Diff(want, decode[response.Restaurant](t, w)); diff != "" {
		t.Errorf("GET restaurant 14 mismatch (-want +got):\n%s", diff)
	}

	w = c.do(http.MethodPut, "/api/cities/14", map[string]interface{}{"id": 14, "name": "Lugdunum"})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = c.do(http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []response.City{{ID: 14, Name: "Lugdunum"}}, decode[[]response.City](t, w))

	w = c.do(http.MethodDelete, "/api/restaurants/14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Restaurant 14", decode[response.Restaurant](t, w).Name)

	w = c.do(http.MethodDelete, "/api/cities/14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.City{ID: 14, Name: "Lugdunum"}, decode[response.City](t, w))

	for _, path := range []string{"/api/cities/14", "/api/restaurants/14"} {
		w = c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Empty(t, w.Body.String())

		w = c.do(http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Empty(t, w.Body.String())
	}
}

func TestUpdateIDMismatch(t *testing.T) {
	c := newClient(t)
	require.Equal(t, http.StatusCreated,
		c.do(http.MethodPost, "/api/cities", map[string]interface{}{"id": 20, "name": "Paris"}).Code)

	w := c.do(http.MethodPut, "/api/cities/20", map[string]interface{}{"id": 21, "name": "Marseille"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "4000100001")

	w = c.do(http.MethodGet, "/api/cities/20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paris", decode[response.City](t, w).Name)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/cities/21", nil).Code)

	w = c.do(http.MethodPut, "/api/restaurants/20", map[string]interface{}{"id": 21, "name": "x", "cityId": 20})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBadInput(t *testing.T) {
	c := newClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{name: "non numeric get", method: http.MethodGet, path: "/api/cities/abc", status: http.StatusBadRequest},
		{name: "non numeric delete", method: http.MethodDelete, path: "/api/restaurants/abc", status: http.StatusBadRequest},
		{name: "non numeric nested", method: http.MethodGet, path: "/api/cities/abc/restaurants", status: http.StatusBadRequest},
		{name: "malformed create", method: http.MethodPost, path: "/api/cities", body: "not an object", status: http.StatusBadRequest},
		{name: "malformed update", method: http.MethodPut, path: "/api/restaurants/1", body: []int{1}, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), "4000000001")
		})
	}
}

func TestDuplicateCreate(t *testing.T) {
	c := newClient(t)
	city := map[string]interface{}{"id": 1, "name": "Lyon"}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/cities", city).Code)

	w := c.do(http.MethodPost, "/api/cities", city)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "4090000008")
}

func TestUpdateMissingIsNoContent(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodPut, "/api/cities/99", map[string]interface{}{"id": 99, "name": "Ghost"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/cities/99", nil).Code)
}

func TestRestaurants(t *testing.T) {
	c := newClient(t)
	for _, id := range []int{1, 2} {
		w := c.do(http.MethodPost, "/api/cities", map[string]interface{}{"id": id, "name": fmt.Sprintf("City %d", id)})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	for i := 1; i <= 4; i++ {
		w := c.do(http.MethodPost, "/api/restaurants",
			map[string]interface{}{"id": i, "name": fmt.Sprintf("Restaurant %d", i), "cityId": 1})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, fmt.Sprintf("/api/restaurants/%d", i), w.Header().Get(v.HeaderLocation))
	}

	city1 := &response.City{ID: 1, Name: "City 1"}

	w := c.do(http.MethodGet, "/api/restaurants/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	want := response.Restaurant{ID: 3, Name: "Restaurant 3", City: city1}
	if diff := cmp.Diff(want, decode[response.Restaurant](t, w)); diff != "" {
		t.Errorf("GET restaurant mismatch (-want +got):\n%s", diff)
	}
	assert.JSONEq(t, `{"id":3,"name":"Restaurant 3","city":{"id":1,"name":"City 1"}}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/cities/1/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]response.Restaurant](t, w)
	assert.Len(t, listed, 4)
	for _, r := range listed {
		assert.Equal(t, city1, r.City)
	}

	w = c.do(http.MethodGet, "/api/cities/2/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = c.do(http.MethodPut, "/api/restaurants/4", map[string]interface{}{"id": 4, "name": "Moved", "cityId": 2})
	require.Equal(t, http.StatusNoContent, w.Code)
	w = c.do(http.MethodGet, "/api/cities/2/restaurants", nil)
	assert.Len(t, decode[[]response.Restaurant](t, w), 1)

	w = c.do(http.MethodDelete, "/api/restaurants/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, city1, decode[response.Restaurant](t, w).City)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/restaurants/1", nil).Code)

	w = c.do(http.MethodGet, "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]response.Restaurant](t, w), 3)
}

func TestAuthenticationRequired(t *testing.T) {
	c := newClient(t)
	c.bearer = ""

	for _, path := range []string{"/api/cities", "/api/cities/1", "/api/restaurants", "/api/cities/1/restaurants"} {
		w := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := c.do(http.MethodPost, "/api/cities", map[string]interface{}{"id": 1, "name": "Lyon"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.bearer = "not-a-jwt"
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/cities", nil).Code)
}

func TestAmbientEndpoints(t *testing.T) {
	c := newClient(t)
	c.bearer = ""

	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get(v.HeaderTraceID))

	w = c.do(http.MethodGet, "/debug/log", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"debug":false}`, w.Body.String())
}
