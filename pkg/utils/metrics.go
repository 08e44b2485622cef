package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 HTTP 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocr_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 HTTP 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ocr_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// OcrProcessingTime은 OCR 엔진 처리 시간을 측정합니다
	OcrProcessingTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ocr_engine_processing_time_seconds",
		Help:    "OCR 엔진 처리 시간(초)",
		Buckets: []float64{0.1, 0.5, 1, 2, 3, 4, 5, 7.5, 10, 15, 20, 30},
	})

	// CacheCounter는 결과 캐시의 히트/미스 수를 추적합니다
	CacheCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocr_result_cache_total",
		Help: "결과 캐시 조회 수 (hit/miss)",
	}, []string{"result"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ocr_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerMetric은 서버 부하/건강 상태 게이지입니다
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ocr_server_status",
		Help: "서버 상태 지표 (load/healthy/capacity)",
	}, []string{"server", "metric"})
)

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다
func InitMetrics() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(OcrProcessingTime)
	prometheus.MustRegister(CacheCounter)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerMetric)
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method string, path string, status int, duration float64) {
	statusLabel := statusClass(status)
	RequestCounter.WithLabelValues(method, path, statusLabel).Inc()
	ResponseTime.WithLabelValues(method, path, statusLabel).Observe(duration)
}

// RecordOcrProcessingTime은 OCR 엔진 처리 시간을 기록합니다
func RecordOcrProcessingTime(duration float64) {
	OcrProcessingTime.Observe(duration)
}

// RecordCacheHit은 결과 캐시 히트를 기록합니다
func RecordCacheHit() {
	CacheCounter.WithLabelValues("hit").Inc()
}

// RecordCacheMiss는 결과 캐시 미스를 기록합니다
func RecordCacheMiss() {
	CacheCounter.WithLabelValues("miss").Inc()
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric은 서버 상태 게이지를 업데이트합니다
func UpdateServerMetric(server string, metric string, value float64) {
	ServerMetric.WithLabelValues(server, metric).Set(value)
}

// statusClass는 상태 코드를 2xx/4xx/5xx 형태의 라벨로 변환합니다
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
