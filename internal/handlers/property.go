package handlers

import (
	"rentapi/internal/services"
	"rentapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	service *services.PropertyService
}

func NewPropertyHandler(service *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// GetAll 获取房产列表
func (h *PropertyHandler) GetAll(c *gin.Context) {
	properties, apiErr := h.service.List(c.Request.Context())
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, properties)
}

// GetByID 获取房产
func (h *PropertyHandler) GetByID(c *gin.Context) {
	property, apiErr := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, property)
}

// Create 创建房产
func (h *PropertyHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, apiErr := h.service.Create(c.Request.Context(), body)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Created(c, id)
}

// Update 更新房产
func (h *PropertyHandler) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	property, apiErr := h.service.Update(c.Request.Context(), c.Param("id"), body)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, property)
}

// Delete 删除房产
func (h *PropertyHandler) Delete(c *gin.Context) {
	if apiErr := h.service.Delete(c.Request.Context(), c.Param("id")); apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.SuccessWithMessage(c, "Property deleted")
}
