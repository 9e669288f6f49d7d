package service

import (
	"context"
	"fmt"

	"github.com/yeisme/fieldvault/pkg/internal/model"
	"github.com/yeisme/fieldvault/pkg/internal/storage/db"
)

// activationStore 基于 gorm 的行抽样与计数实现.
type activationStore struct {
	db *db.Client
}

// SampleRecentRows 取最近 limit 条激活记录的全部列，列名到值的映射.
func (s *activationStore) SampleRecentRows(ctx context.Context, limit int) ([]map[string]any, error) {
	var rows []map[string]any

	err := s.db.DB.WithContext(ctx).
		Model(&model.Activations{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sample recent activations: %w", err)
	}

	return rows, nil
}

// CountActivations 统计激活总数与已带照片的数量，单次聚合查询.
func (s *activationStore) CountActivations(ctx context.Context) (int64, int64, error) {
	var result struct {
		Total     int64
		WithPhoto int64
	}

	err := s.db.DB.WithContext(ctx).
		Model(&model.Activations{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN photo_key <> '' THEN 1 ELSE 0 END), 0) AS with_photo").
		Scan(&result).Error
	if err != nil {
		return 0, 0, fmt.Errorf("count activations: %w", err)
	}

	return result.Total, result.WithPhoto, nil
}
