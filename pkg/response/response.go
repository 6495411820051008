package response

import (
	"rentapi/pkg/errors"

	"github.com/gin-gonic/gin"
)

// MessageResponse 仅包含消息的返回格式
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse 创建成功返回格式
type CreatedResponse struct {
	ID string `json:"id"`
}

// ========== 基础返回方法 ==========

// Success 成功返回，数据直接作为返回体
func Success(c *gin.Context, data interface{}) {
	c.JSON(errors.CodeSuccess, data)
}

// SuccessWithMessage 成功返回（仅消息）
func SuccessWithMessage(c *gin.Context, message string) {
	c.JSON(errors.CodeSuccess, MessageResponse{Message: message})
}

// Created 创建成功返回
func Created(c *gin.Context, id string) {
	c.JSON(errors.CodeCreated, CreatedResponse{ID: id})
}

// Error 通用错误返回
func Error(c *gin.Context, err *errors.APIError) {
	c.JSON(err.Status, gin.H{err.BodyKey(): err.Message})
}

// ========== HTTP错误快捷方法 ==========

func BadRequest(c *gin.Context, message string) {
	Error(c, errors.BadRequest(message))
}

func NotFound(c *gin.Context, message string) {
	Error(c, errors.NotFound(message))
}

func ServerError(c *gin.Context, message string) {
	Error(c, errors.Internal(message))
}
