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

type PropertyService struct {
	store store.PropertyStore
}

func NewPropertyService(s store.PropertyStore) *PropertyService {
	return &PropertyService{
		store: s,
	}
}

// List 获取全部房产（按插入顺序）
func (s *PropertyService) List(ctx context.Context) ([]*models.Property, *apperrors.APIError) {
	properties, err := s.store.FindAllProperties(ctx)
	if err != nil {
		return nil, storeFailure("list properties", err)
	}
	return properties, nil
}

// GetByID 根据ID获取房产
func (s *PropertyService) GetByID(ctx context.Context, id string) (*models.Property, *apperrors.APIError) {
	if !validation.IsValidID(id) {
		return nil, validation.ErrInvalidPropertyID
	}

	property, err := s.store.FindProperty(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrInvalidPropertyID
		}
		return nil, storeFailure("find property", err)
	}
	return property, nil
}

// Create 创建房产，返回新ID
func (s *PropertyService) Create(ctx context.Context, body []byte) (string, *apperrors.APIError) {
	payload, apiErr := validation.ParsePayload(body)
	if apiErr != nil {
		return "", apiErr
	}

	property, apiErr := validation.ValidatePropertyCreate(payload)
	if apiErr != nil {
		logger.GetLogger().WithField("reason", apiErr.Message).Debug("Property create rejected")
		return "", apiErr
	}

	id, err := s.store.InsertProperty(ctx, property)
	if err != nil {
		return "", storeFailure("insert property", err)
	}

	logger.GetLogger().WithField("property_id", id).Info("Property created")
	return id, nil
}

// Update 整体替换房产字段
func (s *PropertyService) Update(ctx context.Context, id string, body []byte) (*models.Property, *apperrors.APIError) {
	payload, apiErr := validation.ParsePayload(body)
	if apiErr != nil {
		return nil, apiErr
	}

	property, apiErr := validation.ValidatePropertyUpdate(id, payload)
	if apiErr != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"property_id": id,
			"reason":      apiErr.Message,
		}).Debug("Property update rejected")
		return nil, apiErr
	}

	if err := s.store.UpdateProperty(ctx, id, property); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrPropertyNotExist
		}
		return nil, storeFailure("update property", err)
	}

	updated, err := s.store.FindProperty(ctx, id)
	if err != nil {
		// 并发删除
		if errors.Is(err, store.ErrNotFound) {
			return nil, validation.ErrPropertyNotExist
		}
		return nil, storeFailure("find property", err)
	}

	logger.GetLogger().WithField("property_id", id).Info("Property updated")
	return updated, nil
}

// Delete 删除房产
func (s *PropertyService) Delete(ctx context.Context, id string) *apperrors.APIError {
	if !validation.IsValidID(id) {
		return validation.ErrInvalidPropertyID
	}

	if err := s.store.DeleteProperty(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return validation.ErrInvalidPropertyID
		}
		return storeFailure("delete property", err)
	}

	logger.GetLogger().WithField("property_id", id).Info("Property deleted")
	return nil
}

func storeFailure(op string, err error) *apperrors.APIError {
	logger.GetLogger().WithError(err).Errorf("Store failure: %s", op)
	return apperrors.Internal("Internal server error")
}
