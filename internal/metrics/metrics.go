// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラー、ミドルウェア、サービス層から利用する。
type MetricsCollector interface {
	RecordOutcome(outcome string)
	RecordHTTPStatus(statusCode int)
	RecordLookup(status string, duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	outcomes       *prometheus.CounterVec
	httpStatus     *prometheus.CounterVec
	lookups        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authapi_auth_outcomes_total",
			Help: "トークン検証結果の種別ごとの件数",
		}, []string{"outcome"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authapi_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authapi_user_lookup_total",
			Help: "ユーザー参照の結果別の件数",
		}, []string{"status"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "authapi_user_lookup_duration_seconds",
			Help:    "ユーザー参照のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.outcomes,
		c.httpStatus,
		c.lookups,
		c.lookupDuration,
	)

	return c
}

// RecordOutcome はトークン検証結果を記録する。
func (c *Collector) RecordOutcome(outcome string) {
	c.outcomes.WithLabelValues(outcome).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordLookup はユーザー参照の結果とレイテンシを記録する。
func (c *Collector) RecordLookup(status string, duration time.Duration) {
	c.lookups.WithLabelValues(status).Inc()
	c.lookupDuration.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
