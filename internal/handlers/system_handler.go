package handlers

import (
	"time"

	"rentapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler 系统处理器
type SystemHandler struct {
	version   string
	startedAt time.Time
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

// Health 健康检查
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"service":   "rentapi",
		"version":   h.version,
	})
}
