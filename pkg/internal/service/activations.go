package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeisme/fieldvault/pkg/internal/model"
	"github.com/yeisme/fieldvault/pkg/internal/types"
)

const (
	// DefaultPageSize 列表默认分页大小.
	DefaultPageSize = 20
	// MaxPageSize 列表分页上限.
	MaxPageSize = 200
)

// ErrActivationNotFound 记录不存在（或已软删除）.
var ErrActivationNotFound = errors.New("activation not found")

// ListActivations 按条件分页列举落地活动记录，返回记录与总数.
func (as *ActivationService) ListActivations(ctx context.Context, query types.ListActivationsQuery) ([]model.Activations, int64, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	tx := as.dbClient.DB.WithContext(ctx).Model(&model.Activations{})

	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	if query.Region != "" {
		tx = tx.Where("region = ?", query.Region)
	}

	if query.Q != "" {
		pattern := "%" + query.Q + "%"
		tx = tx.Where("name LIKE ? OR city LIKE ? OR address LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count activations: %w", err)
	}

	var records []model.Activations

	err := tx.Order("activated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list activations: %w", err)
	}

	return records, total, nil
}

// GetActivation 按 ID 查询单条记录.
func (as *ActivationService) GetActivation(ctx context.Context, id string) (*model.Activations, error) {
	var record model.Activations

	err := as.dbClient.DB.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivationNotFound
		}

		return nil, fmt.Errorf("get activation %s: %w", id, err)
	}

	return &record, nil
}

// CreateActivation 创建落地活动记录，ID 由服务层生成 UUID.
func (as *ActivationService) CreateActivation(ctx context.Context, req types.CreateActivationRequest) (*model.Activations, error) {
	activatedAt := time.Now().UTC()

	if req.ActivatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.ActivatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse activated_at: %w", err)
		}

		activatedAt = t.UTC()
	}

	record := model.Activations{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Region:      req.Region,
		City:        req.City,
		Status:      req.Status,
		Address:     req.Address,
		ContactName: req.ContactName,
		Notes:       req.Notes,
		ActivatedAt: activatedAt,
	}

	if err := as.dbClient.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create activation: %w", err)
	}

	return &record, nil
}

// UpdateActivation 部分更新，未提供的字段保持原值.
func (as *ActivationService) UpdateActivation(ctx context.Context, id string, req types.UpdateActivationRequest) (*model.Activations, error) {
	record, err := as.GetActivation(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Region != nil {
		updates["region"] = *req.Region
	}

	if req.City != nil {
		updates["city"] = *req.City
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}

	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if req.ActivatedAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ActivatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse activated_at: %w", err)
		}

		updates["activated_at"] = t.UTC()
	}

	if len(updates) == 0 {
		return record, nil
	}

	err = as.dbClient.DB.WithContext(ctx).Model(record).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("update activation %s: %w", id, err)
	}

	return as.GetActivation(ctx, id)
}

// DeleteActivation 软删除记录；若带有照片，先删除存储中的对象.
func (as *ActivationService) DeleteActivation(ctx context.Context, id string) error {
	record, err := as.GetActivation(ctx, id)
	if err != nil {
		return err
	}

	if record.PhotoKey != "" {
		if err := as.removePhotoObject(ctx, record.PhotoKey); err != nil {
			return err
		}
	}

	err = as.dbClient.DB.WithContext(ctx).Delete(&model.Activations{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("delete activation %s: %w", id, err)
	}

	return nil
}
