package service_test

import (
	"testing"

	"github.com/yeisme/fieldvault/pkg/internal/service"
	"github.com/yeisme/fieldvault/pkg/internal/types"
)

func i64(v int64) *int64 {
	return &v
}

// TestProjectAllInputsMissing 所有可选输入缺失时全部字段降级为 null、
// limiting_factor 为 none，绝不 panic.
func TestProjectAllInputsMissing(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{})

	if out.AveragePhotoBytes != nil || out.PerActivationDBBytes != nil ||
		out.RemainingByDatabase != nil || out.RemainingByStorage != nil ||
		out.EstimatedRemaining != nil || out.EstimatedTotal != nil {
		t.Error("Expected all estimate fields to be null")
	}

	if out.LimitingFactor != types.LimitingFactorNone {
		t.Errorf("Expected limiting factor none, got %s", out.LimitingFactor)
	}

	if len(out.Reasons) == 0 {
		t.Error("Expected unavailability reasons to be recorded")
	}
}

// TestProjectTieBreakFavorsStorage 两侧剩余相等时存储胜出.
func TestProjectTieBreakFavorsStorage(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:        50,
		ActivationsWithPhoto:   50,
		StorageUsedBytes:       i64(50_000),
		StorageRemainingBytes:  i64(100_000),
		DatabaseRemainingBytes: i64(200_000),
		PerActivationDBBytes:   i64(2_000),
	})

	// 均值 1000 字节/张：存储侧 100000/1000=100，数据库侧 200000/2000=100
	if out.RemainingByStorage == nil || *out.RemainingByStorage != 100 {
		t.Fatalf("Expected remaining_by_storage 100, got %v", out.RemainingByStorage)
	}

	if out.RemainingByDatabase == nil || *out.RemainingByDatabase != 100 {
		t.Fatalf("Expected remaining_by_database 100, got %v", out.RemainingByDatabase)
	}

	if out.LimitingFactor != types.LimitingFactorStorage {
		t.Errorf("Expected tie to favor storage, got %s", out.LimitingFactor)
	}
}

// TestProjectMinBindingConstraint 两侧都有值时取更小者作为剩余容量.
func TestProjectMinBindingConstraint(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:        10,
		ActivationsWithPhoto:   10,
		StorageUsedBytes:       i64(10_000),
		StorageRemainingBytes:  i64(500_000),
		DatabaseRemainingBytes: i64(90_000),
		PerActivationDBBytes:   i64(3_000),
	})

	// 均值 1000：存储侧 500，数据库侧 30 — 数据库是瓶颈
	if out.EstimatedRemaining == nil || *out.EstimatedRemaining != 30 {
		t.Fatalf("Expected estimated remaining 30, got %v", out.EstimatedRemaining)
	}

	if out.LimitingFactor != types.LimitingFactorDatabase {
		t.Errorf("Expected database limiting factor, got %s", out.LimitingFactor)
	}

	if out.EstimatedTotal == nil || *out.EstimatedTotal != 40 {
		t.Errorf("Expected estimated total 40, got %v", out.EstimatedTotal)
	}
}

// TestProjectSingleConstraint 只有一侧可算时以该侧为准.
func TestProjectSingleConstraint(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:       20,
		ActivationsWithPhoto:  20,
		StorageUsedBytes:      i64(20_000),
		StorageRemainingBytes: i64(5_000),
	})

	if out.RemainingByStorage == nil || *out.RemainingByStorage != 5 {
		t.Fatalf("Expected remaining_by_storage 5, got %v", out.RemainingByStorage)
	}

	if out.RemainingByDatabase != nil {
		t.Errorf("Expected remaining_by_database null, got %v", out.RemainingByDatabase)
	}

	if out.LimitingFactor != types.LimitingFactorStorage {
		t.Errorf("Expected storage limiting factor, got %s", out.LimitingFactor)
	}
}

// TestProjectPhotoSampleFallback 无带照片计数时退用桶内对象数做样本量.
func TestProjectPhotoSampleFallback(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:  4,
		BucketObjects:    8,
		StorageUsedBytes: i64(16_000),
	})

	if out.AveragePhotoBytes == nil || *out.AveragePhotoBytes != 2_000 {
		t.Errorf("Expected average photo bytes 2000 from object-count fallback, got %v", out.AveragePhotoBytes)
	}
}

// TestProjectNegativeInputsNormalized 负值输入按缺失或零处理，不影响输出合法性.
func TestProjectNegativeInputsNormalized(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:        -3,
		ActivationsWithPhoto:   -1,
		BucketObjects:          -7,
		StorageUsedBytes:       i64(-100),
		StorageRemainingBytes:  i64(-1),
		DatabaseRemainingBytes: i64(-1),
		PerActivationDBBytes:   i64(-50),
	})

	if out.AveragePhotoBytes != nil || out.EstimatedRemaining != nil {
		t.Error("Expected estimates to be null for negative inputs")
	}

	if out.LimitingFactor != types.LimitingFactorNone {
		t.Errorf("Expected limiting factor none, got %s", out.LimitingFactor)
	}

	if out.PhotoCoveragePercent != nil {
		t.Errorf("Expected null coverage for zero count, got %v", out.PhotoCoveragePercent)
	}
}

// TestProjectPhotoCoverage 覆盖率按带照片占比计算，保留两位小数.
func TestProjectPhotoCoverage(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:      3,
		ActivationsWithPhoto: 1,
		StorageUsedBytes:     i64(3_000),
	})

	if out.PhotoCoveragePercent == nil || *out.PhotoCoveragePercent != 33.33 {
		t.Errorf("Expected coverage 33.33, got %v", out.PhotoCoveragePercent)
	}
}

// TestProjectPerActivationTotal 单条记录总成本是数据库成本与照片均值之和.
func TestProjectPerActivationTotal(t *testing.T) {
	out := service.ProjectCapacity(service.ProjectionInput{
		ActivationCount:      10,
		ActivationsWithPhoto: 10,
		StorageUsedBytes:     i64(10_000),
		PerActivationDBBytes: i64(1_500),
	})

	if out.PerActivationTotalBytes == nil || *out.PerActivationTotalBytes != 2_500 {
		t.Errorf("Expected per-activation total 2500, got %v", out.PerActivationTotalBytes)
	}
}
