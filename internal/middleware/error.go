package middleware

import (
	"rentapi/pkg/logger"
	"rentapi/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 错误处理中间件 - 主要处理panic
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.GetLogger().WithField("path", c.Request.URL.Path).Errorf("Panic recovered: %v", err)
				response.ServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
