package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"restaurants/pkg/logger"
)

// database_status 取值
const (
	DatabaseUp   = 0
	DatabaseDown = 1
)

const pingTimeout = 3 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// StatusMetricHandler serves the default registry, the extra collectors and a
// database status gauge refreshed by pinging on every scrape
type StatusMetricHandler struct {
	next   http.Handler
	db     Pinger
	status prometheus.Gauge
}

func NewStatusMetricHandler(db Pinger, collectors ...prometheus.Collector) *StatusMetricHandler {
	status := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "database_status",
		Help:      "0 when the database answers a ping, 1 otherwise",
	})
	reg := prometheus.NewRegistry()
	reg.MustRegister(append(collectors, status)...)
	return &StatusMetricHandler{
		next: promhttp.HandlerFor(
			prometheus.Gatherers{prometheus.DefaultGatherer, reg},
			promhttp.HandlerOpts{EnableOpenMetrics: true},
		),
		db:     db,
		status: status,
	}
}

func (s *StatusMetricHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		logger.From(ctx).Error("database unreachable", zap.Error(err))
		s.status.Set(DatabaseDown)
	} else {
		s.status.Set(DatabaseUp)
	}
	s.next.ServeHTTP(w, r)
}
