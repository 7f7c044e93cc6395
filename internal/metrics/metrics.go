package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ToolCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "erpmcp", Name: "tool_calls_total", Help: "Processed tool calls",
	}, []string{"tool"})
	ToolErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "erpmcp", Name: "tool_errors_total", Help: "Tool call errors",
	}, []string{"tool"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "erpmcp", Name: "db_ping_seconds", Help: "MongoDB ping latency",
		Buckets: prometheus.DefBuckets,
	})
	CollectionDocs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "erpmcp", Name: "collection_documents", Help: "Documents per collection",
	}, []string{"collection"})
)

func init() {
	prometheus.MustRegister(ToolCalls, ToolErrors, DBPing, CollectionDocs)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
