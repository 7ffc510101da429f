package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики - количество запросов
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Общее количество HTTP запросов",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP метрики - время обработки запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Время обработки HTTP запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// WS метрики - количество активных соединений
	wsActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_active_connections",
			Help: "Количество активных WebSocket соединений",
		},
	)

	wsMessagesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_messages_dropped_total",
			Help: "Входящие и исходящие WS сообщения, которые не были обработаны",
		},
		[]string{"reason"},
	)

	signalingRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "signaling_rooms",
			Help: "Количество комнат сигналинга с участниками",
		},
	)

	signalingRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signaling_relayed_total",
			Help: "Пересланные WebRTC сообщения",
		},
		[]string{"kind"},
	)

	signalingRelayDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signaling_relay_dropped_total",
			Help: "WebRTC сообщения, отброшенные из-за отсутствия получателя",
		},
		[]string{"kind"},
	)

	meetingBroadcasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_broadcasts_total",
			Help: "Рассылки в комнаты встреч",
		},
		[]string{"type"},
	)
)

// Причины отброса WS сообщений
const (
	DropReasonRateLimited = "rate_limited"
	DropReasonMalformed   = "malformed"
	DropReasonSlowClient  = "slow_client"
)

// RecordHTTPMetrics записывает метрики HTTP запроса
func RecordHTTPMetrics(method, endpoint string, status int, duration time.Duration) {
	strStatus := strconv.Itoa(status)

	httpRequestsTotal.WithLabelValues(method, endpoint, strStatus).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, strStatus).Observe(duration.Seconds())
}

func IncrementWSActiveConnections() {
	wsActiveConnections.Inc()
}

func DecrementWSActiveConnections() {
	wsActiveConnections.Dec()
}

func IncrementWSMessagesDropped(reason string) {
	wsMessagesDropped.WithLabelValues(reason).Inc()
}

func SetSignalingRooms(count int) {
	signalingRooms.Set(float64(count))
}

func IncrementRelayed(kind string) {
	signalingRelayed.WithLabelValues(kind).Inc()
}

func IncrementRelayDropped(kind string) {
	signalingRelayDropped.WithLabelValues(kind).Inc()
}

func IncrementMeetingBroadcast(messageType string) {
	meetingBroadcasts.WithLabelValues(messageType).Inc()
}
