package prometheus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct {
	err error
}

func (p pinger) PingContext(context.Context) error {
	return p.err
}

func TestStatusMetricHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "healthy", want: "restaurants_database_status 0"},
		{name: "unreachable", err: errors.New("dial tcp: refused"), want: "restaurants_database_status 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStatusMetricHandler(pinger{err: tt.err})
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestConnectionCollector(t *testing.T) {
	c := NewConnectionCollector("restaurants")
	srv := &http.Server{}
	c.Track(srv)

	srv.ConnState(nil, http.StateNew)
	srv.ConnState(nil, http.StateNew)
	srv.ConnState(nil, http.StateActive)
	srv.ConnState(nil, http.StateClosed)

	expected := `
# HELP restaurants_http_open_connections open http connections
# TYPE restaurants_http_open_connections gauge
restaurants_http_open_connections{service_name="restaurants"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}
