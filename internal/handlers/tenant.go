package handlers

import (
	"rentapi/internal/services"
	"rentapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{
		service: service,
	}
}

// GetAll 获取租客列表
func (h *TenantHandler) GetAll(c *gin.Context) {
	tenants, apiErr := h.service.List(c.Request.Context())
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, tenants)
}

// GetByID 获取租客
func (h *TenantHandler) GetByID(c *gin.Context) {
	tenant, apiErr := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, tenant)
}

// Create 创建租客
func (h *TenantHandler) Create(c *gin.Context) {
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

// Update 更新租客
func (h *TenantHandler) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, apiErr := h.service.Update(c.Request.Context(), c.Param("id"), body)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, tenant)
}

// Delete 删除租客
func (h *TenantHandler) Delete(c *gin.Context) {
	if apiErr := h.service.Delete(c.Request.Context(), c.Param("id")); apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.SuccessWithMessage(c, "Tenant deleted")
}
