package service

import (
	"math"

	"github.com/yeisme/fieldvault/pkg/internal/types"
)

// ProjectionInput 容量预测的全部输入.可空字段用指针表示，
// 负值与非有限值在预测前会被归一化为缺失.
type ProjectionInput struct {
	ActivationCount      int64
	ActivationsWithPhoto int64
	BucketObjects        int64

	StorageUsedBytes      *int64
	StorageRemainingBytes *int64

	DatabaseRemainingBytes *int64
	PerActivationDBBytes   *int64
}

// ProjectCapacity 把存储用量、数据库单行成本与行数合并为
// "还能写入多少条激活记录" 的预测，并标识先耗尽的资源.
// 纯函数，任何输入缺失都只会让对应输出降级为 null 并记录原因，
// 不会失败.按一条激活最多一张照片的关系折算照片均值.
func ProjectCapacity(in ProjectionInput) types.CombinedEstimate {
	out := types.CombinedEstimate{LimitingFactor: types.LimitingFactorNone}

	count := clampNonNegative(in.ActivationCount)
	withPhoto := clampNonNegative(in.ActivationsWithPhoto)
	objects := clampNonNegative(in.BucketObjects)

	storageUsed := normalizePositive(in.StorageUsedBytes)
	storageRemaining := normalizeNonNegative(in.StorageRemainingBytes)
	dbRemaining := normalizeNonNegative(in.DatabaseRemainingBytes)
	perRowDB := normalizePositive(in.PerActivationDBBytes)

	// 照片样本量：优先已带照片的激活数，退而用桶内对象数
	sampleSize := withPhoto
	if sampleSize <= 0 {
		sampleSize = objects
	}

	var avgPhoto *int64

	if storageUsed != nil && sampleSize > 0 {
		v := int64(math.Round(float64(*storageUsed) / float64(sampleSize)))
		if v < 1 {
			v = 1
		}

		avgPhoto = &v
	} else {
		out.Reasons = append(out.Reasons, "average photo size unavailable: no photo sample or no storage usage")
	}

	out.AveragePhotoBytes = avgPhoto
	out.PerActivationDBBytes = perRowDB

	if perRowDB == nil {
		out.Reasons = append(out.Reasons, "per-activation database cost unavailable: row estimate missing")
	}

	if perRowDB != nil && avgPhoto != nil {
		total := *perRowDB + *avgPhoto
		out.PerActivationTotalBytes = &total
	}

	if dbRemaining != nil && perRowDB != nil {
		v := *dbRemaining / *perRowDB
		out.RemainingByDatabase = &v
	}

	if storageRemaining != nil && avgPhoto != nil {
		v := *storageRemaining / *avgPhoto
		out.RemainingByStorage = &v
	}

	switch {
	case out.RemainingByDatabase != nil && out.RemainingByStorage != nil:
		// 取更紧的约束；持平时判存储先耗尽，因为存储只能手工清理，
		// 数据库行还可以裁剪
		if *out.RemainingByStorage <= *out.RemainingByDatabase {
			out.EstimatedRemaining = out.RemainingByStorage
			out.LimitingFactor = types.LimitingFactorStorage
		} else {
			out.EstimatedRemaining = out.RemainingByDatabase
			out.LimitingFactor = types.LimitingFactorDatabase
		}
	case out.RemainingByStorage != nil:
		out.EstimatedRemaining = out.RemainingByStorage
		out.LimitingFactor = types.LimitingFactorStorage
	case out.RemainingByDatabase != nil:
		out.EstimatedRemaining = out.RemainingByDatabase
		out.LimitingFactor = types.LimitingFactorDatabase
	}

	if out.EstimatedRemaining != nil {
		total := count + *out.EstimatedRemaining
		out.EstimatedTotal = &total
	}

	if count > 0 {
		coverage := roundPercent(float64(withPhoto) / float64(count) * 100)
		out.PhotoCoveragePercent = &coverage
	}

	return out
}

// clampNonNegative 负的计数按 0 处理.
func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}

	return v
}

// normalizeNonNegative 缺失或为负的可空字节数视为缺失.
func normalizeNonNegative(v *int64) *int64 {
	if v == nil || *v < 0 {
		return nil
	}

	return v
}

// normalizePositive 只接受正值，零值对除法无意义，同样视为缺失.
func normalizePositive(v *int64) *int64 {
	if v == nil || *v <= 0 {
		return nil
	}

	return v
}
