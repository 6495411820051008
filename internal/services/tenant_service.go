package services

import (
	"context"
	"errors"

	"rentapi/internal/models"
	"rentapi/internal/store"
	"rentapi/internal/validation"
	apperrors "rentapi/pkg/errors"
	"rentapi/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TenantService 租客服务
// property_id 不校验房产是否存在
type TenantService struct {
	store store.TenantStore
}

func NewTenantService(s store.TenantStore) *TenantService {
	return &TenantService{
		store: s,
	}
}

// List 获取全部租客
func (s *TenantService) List(ctx context.Context) ([]*models.Tenant, *apperrors.APIError) {
	tenants, err := s.store.FindAllTenants(ctx)
	if err != nil {
		return nil, storeFailure("list tenants", err)
	}
	return tenants, nil
}

// GetByID 根据ID获取租客
func (s *TenantService) GetByID(ctx context.Context, id string) (*models.Tenant, *apperrors.APIError) {
	if !validation.IsValidID(id) {
		return nil, validation.ErrInvalidTenantID
	}

	tenant, err := s.store.FindTenant(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrInvalidTenantID
		}
		return nil, storeFailure("find tenant", err)
	}
	return tenant, nil
}

// Create 创建租客
func (s *TenantService) Create(ctx context.Context, body []byte) (string, *apperrors.APIError) {
	payload, apiErr := validation.ParsePayload(body)
	if apiErr != nil {
		return "", apiErr
	}

	tenant, apiErr := validation.ValidateTenantCreate(payload)
	if apiErr != nil {
		logger.GetLogger().WithField("reason", apiErr.Message).Debug("Tenant create rejected")
		return "", apiErr
	}

	id, err := s.store.InsertTenant(ctx, tenant)
	if err != nil {
		return "", storeFailure("insert tenant", err)
	}

	logger.GetLogger().WithFields(logrus.Fields{
		"tenant_id":   id,
		"property_id": tenant.PropertyID,
	}).Info("Tenant created")
	return id, nil
}

// Update 整体替换租客字段
func (s *TenantService) Update(ctx context.Context, id string, body []byte) (*models.Tenant, *apperrors.APIError) {
	payload, apiErr := validation.ParsePayload(body)
	if apiErr != nil {
		return nil, apiErr
	}

	tenant, apiErr := validation.ValidateTenantUpdate(id, payload)
	if apiErr != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"tenant_id": id,
			"reason":    apiErr.Message,
		}).Debug("Tenant update rejected")
		return nil, apiErr
	}

	if err := s.store.UpdateTenant(ctx, id, tenant); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrInvalidTenantID
		}
		return nil, storeFailure("update tenant", err)
	}

	updated, err := s.store.FindTenant(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrInvalidTenantID
		}
		return nil, storeFailure("find tenant", err)
	}

	logger.GetLogger().WithField("tenant_id", id).Info("Tenant updated")
	return updated, nil
}

// Delete 删除租客
func (s *TenantService) Delete(ctx context.Context, id string) *apperrors.APIError {
	if !validation.IsValidID(id) {
		return validation.ErrInvalidTenantID
	}

	if err := s.store.DeleteTenant(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return validation.ErrInvalidTenantID
		}
		return storeFailure("delete tenant", err)
	}

	logger.GetLogger().WithField("tenant_id", id).Info("Tenant deleted")
	return nil
}
