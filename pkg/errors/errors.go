package errors

import "net/http"

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = http.StatusOK
	CodeCreated = http.StatusCreated
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = http.StatusBadRequest
	CodeNotFound     = http.StatusNotFound
	CodeServerError  = http.StatusInternalServerError
)

// 错误体字段名
const (
	KeyError   = "error"
	KeyMessage = "message"
)

// APIError 客户端可见的错误，携带状态码和返回体字段名
type APIError struct {
	Status  int
	Message string
	Key     string
}

func (e *APIError) Error() string {
	return e.Message
}

// BodyKey 返回错误体字段名，默认 "error"
func (e *APIError) BodyKey() string {
	if e.Key == "" {
		return KeyError
	}
	return e.Key
}

// BadRequest 400错误
func BadRequest(message string) *APIError {
	return &APIError{Status: CodeInvalidParam, Message: message}
}

// MissingKey 400错误，使用 "message" 字段返回
func MissingKey(message string) *APIError {
	return &APIError{Status: CodeInvalidParam, Message: message, Key: KeyMessage}
}

// NotFound 404错误
func NotFound(message string) *APIError {
	return &APIError{Status: CodeNotFound, Message: message}
}

// Internal 500错误
func Internal(message string) *APIError {
	return &APIError{Status: CodeServerError, Message: message}
}
