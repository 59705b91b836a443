package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created.",
	})
	OrdersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_deleted_total",
		Help: "Total number of orders deleted.",
	})
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_events_published_total",
		Help: "Order events successfully written to the broker.",
	})
	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_events_publish_failures_total",
		Help: "Order events dropped after a publish failure.",
	})
	CatalogEventsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_events_applied_total",
		Help: "Product events applied to the catalog cache.",
	})
	CatalogEventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_events_skipped_total",
		Help: "Product events skipped as malformed or unrecognized.",
	})
	CatalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "Products currently held in the catalog cache.",
	})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_request_duration_seconds",
		Help: "Duration of HTTP requests in seconds.",
	}, []string{"method", "route", "status_code"})
)
