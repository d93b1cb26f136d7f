package prometheus

import (
	"net"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// ConnectionCollector reports the number of open http connections of a server
type ConnectionCollector struct {
	open int64
	desc *prometheus.Desc
}

func NewConnectionCollector(serviceName string) *ConnectionCollector {
	return &ConnectionCollector{
		desc: prometheus.NewDesc(namespace+"_http_open_connections", "open http connections",
			nil, prometheus.Labels{"service_name": serviceName}),
	}
}

func (c *ConnectionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *ConnectionCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(atomic.LoadInt64(&c.open)))
}

// Track hooks srv.ConnState, it replaces any previous hook
func (c *ConnectionCollector) Track(srv *http.Server) {
	srv.ConnState = func(_ net.Conn, state http.ConnState) {
		switch state {
		case http.StateNew:
			atomic.AddInt64(&c.open, 1)
		case http.StateClosed, http.StateHijacked:
			atomic.AddInt64(&c.open, -1)
		}
	}
}
