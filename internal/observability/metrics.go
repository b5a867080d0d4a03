package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paco_chat_requests_total",
			Help: "Total de peticiones al endpoint de chat",
		},
	)

	CompletionErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paco_completion_errors_total",
			Help: "Total de fallas en la llamada al servicio de completions",
		},
	)

	CompletionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "paco_completion_duration_seconds",
			Help:    "Duración de la llamada al servicio de completions",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "paco_catalog_products",
			Help: "Productos cargados del catálogo en la última petición",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(ChatRequests, CompletionErrors, CompletionDuration, CatalogProducts)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, mux)
}
