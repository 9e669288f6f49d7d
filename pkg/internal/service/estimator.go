package service

import (
	"context"
	"fmt"
	"math"

	"github.com/bytedance/sonic"

	"github.com/yeisme/fieldvault/pkg/internal/types"
)

const (
	minSampleLimit = 40
	maxSampleLimit = 500
)

// clampSampleLimit 采样条数限制在 [40, 500]，非正值回落到配置默认值.
func clampSampleLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}

	if limit < minSampleLimit {
		return minSampleLimit
	}

	if limit > maxSampleLimit {
		return maxSampleLimit
	}

	return limit
}

// EstimateTableUsage 按近期行采样估算激活表的磁盘占用.
// 取最近 sampleLimit 行序列化后的平均字节数，乘以 overhead 系数
// 作为单行成本，再乘以总行数得出已用字节估计；带字节上限时
// 进一步折算剩余字节、使用百分比与容量（可再写入的行数）.
// totalRows<=0 或采样为空时返回零值估计而不是错误.
func (cs *CapacityService) EstimateTableUsage(ctx context.Context, totalRows, byteLimit int64, sampleLimit int, overhead float64) (types.RowSampleEstimate, error) {
	if overhead <= 0 || math.IsNaN(overhead) || math.IsInf(overhead, 0) {
		overhead = cs.plan.OverheadFactor
	}

	if totalRows <= 0 {
		return zeroedEstimate(byteLimit, overhead), nil
	}

	limit := clampSampleLimit(sampleLimit, cs.plan.SampleLimit)

	rows, err := cs.sampler.SampleRecentRows(ctx, limit)
	if err != nil {
		return types.RowSampleEstimate{}, fmt.Errorf("%w: %v", ErrSampleQuery, err)
	}

	// 总数为正但采样为空（例如与删除竞态），按空表处理
	if len(rows) == 0 {
		return zeroedEstimate(byteLimit, overhead), nil
	}

	est := types.RowSampleEstimate{OverheadFactor: overhead}

	var totalBytes int64

	for _, row := range rows {
		data, err := sonic.Marshal(row)
		if err != nil {
			return types.RowSampleEstimate{}, fmt.Errorf("%w: serialize sample row: %v", ErrSampleQuery, err)
		}

		totalBytes += int64(len(data))
	}

	perRow := int64(math.Round(float64(totalBytes) / float64(len(rows)) * overhead))
	if perRow < 1 {
		perRow = 1
	}

	est.SampleSize = len(rows)
	est.PerRowEstimatedBytes = perRow
	est.EstimatedUsedBytes = int64(math.Round(float64(perRow) * float64(totalRows)))

	if byteLimit > 0 {
		remaining := byteLimit - est.EstimatedUsedBytes
		if remaining < 0 {
			remaining = 0
		}

		percent := roundPercent(float64(est.EstimatedUsedBytes) / float64(byteLimit) * 100)

		capacityTotal := byteLimit / perRow

		capacityRemaining := capacityTotal - totalRows
		if capacityRemaining < 0 {
			capacityRemaining = 0
		}

		est.EstimatedRemainingBytes = &remaining
		est.EstimatedUsagePercent = &percent
		est.EstimatedCapacityTotal = &capacityTotal
		est.EstimatedCapacityRemaining = &capacityRemaining
	}

	return est, nil
}

// zeroedEstimate 空表或空采样时的零用量估计：
// 有字节上限时剩余等于全部上限、使用率为零，容量字段保持 null.
func zeroedEstimate(byteLimit int64, overhead float64) types.RowSampleEstimate {
	est := types.RowSampleEstimate{OverheadFactor: overhead}

	if byteLimit > 0 {
		remaining := byteLimit
		percent := float64(0)
		est.EstimatedRemainingBytes = &remaining
		est.EstimatedUsagePercent = &percent
	}

	return est
}

// roundPercent 百分比保留两位小数.
func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
