package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 记录请求数量和耗时（RED 指标）
type Metrics struct {
	reqs *prometheus.CounterVec
	durs *prometheus.HistogramVec
}

// NewMetrics 创建并注册指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	const namespace = "rentapi"
	const subsystem = "http"

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "Number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	reg.MustRegister(reqs, durs)

	return &Metrics{reqs: reqs, durs: durs}
}

// Handler 返回 gin 中间件
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 使用路由模板，避免 ID 造成标签爆炸
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.reqs.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.durs.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
