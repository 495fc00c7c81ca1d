package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов расчета
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов расчета сценария",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// IRRUndefined счетчик расчетов без определенной IRR
	IRRUndefined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "irr_undefined_total",
			Help: "Количество сценариев, для которых IRR не определена",
		},
	)

	// HTTPRequests счетчик HTTP-запросов
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP-запросы по маршруту и статусу",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration длительность обработки HTTP-запросов
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
