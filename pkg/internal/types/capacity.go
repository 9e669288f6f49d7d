// Package types 定义请求与响应的数据结构.
package types

// BucketUsage 对象存储桶的扫描结果.每次汇总请求现算，不做缓存.
type BucketUsage struct {
	TotalBytes   int64 `json:"total_bytes"`
	TotalObjects int64 `json:"total_objects"`
}

// RowSampleEstimate 基于行抽样的数据库用量估算.
// 与配额相关的四个字段在未提供配额时为 null.
type RowSampleEstimate struct {
	SampleSize                 int      `json:"sample_size"`
	OverheadFactor             float64  `json:"overhead_factor"`
	PerRowEstimatedBytes       int64    `json:"per_row_estimated_bytes"`
	EstimatedUsedBytes         int64    `json:"estimated_used_bytes"`
	EstimatedRemainingBytes    *int64   `json:"estimated_remaining_bytes"`
	EstimatedUsagePercent      *float64 `json:"estimated_usage_percent"`
	EstimatedCapacityTotal     *int64   `json:"estimated_capacity_total"`
	EstimatedCapacityRemaining *int64   `json:"estimated_capacity_remaining"`
}

// LimitingFactor 标识哪类资源会先耗尽.
type LimitingFactor string

const (
	LimitingFactorStorage  LimitingFactor = "storage"
	LimitingFactorDatabase LimitingFactor = "database"
	LimitingFactorNone     LimitingFactor = "none"
)

// CombinedEstimate 合并存储与数据库两条独立约束后的容量预测.
// 任一输入缺失时相应字段为 null，原因写入 Reasons，绝不报错.
type CombinedEstimate struct {
	AveragePhotoBytes       *int64         `json:"average_photo_bytes"`
	PerActivationDBBytes    *int64         `json:"per_activation_db_bytes"`
	PerActivationTotalBytes *int64         `json:"per_activation_total_bytes"`
	RemainingByDatabase     *int64         `json:"remaining_by_database"`
	RemainingByStorage      *int64         `json:"remaining_by_storage"`
	EstimatedRemaining      *int64         `json:"estimated_remaining"`
	EstimatedTotal          *int64         `json:"estimated_total"`
	PhotoCoveragePercent    *float64       `json:"photo_coverage_percent"`
	LimitingFactor          LimitingFactor `json:"limiting_factor"`
	Reasons                 []string       `json:"reasons,omitempty"`
}

// PlanLimits 汇总响应中展示的套餐配额.
type PlanLimits struct {
	Name               string `json:"name"`
	DatabaseLimitBytes int64  `json:"database_limit_bytes"`
	StorageLimitBytes  int64  `json:"storage_limit_bytes"`
	FileSizeLimitBytes int64  `json:"file_size_limit_bytes"`
	EgressLimitBytes   int64  `json:"egress_limit_bytes"`
}

// 数据库已用字节的来源.
const (
	DatabaseUsedSourceProbe    = "probe"    // 直接探测
	DatabaseUsedSourceEstimate = "estimate" // 行抽样估算
	DatabaseUsedSourceNone     = "none"     // 两者都不可用
)

// CapacitySummary 容量汇总报告.可选输入失败时相应字段降级为 null
// 并把原因记入 Notes，报告本身总是完整返回.
type CapacitySummary struct {
	ActivationCount        int64              `json:"activation_count"`
	ActivationsWithPhoto   int64              `json:"activations_with_photo"`
	Bucket                 string             `json:"bucket"`
	BucketUsage            BucketUsage        `json:"bucket_usage"`
	DatabaseUsedBytes      *int64             `json:"database_used_bytes"`
	DatabaseUsedSource     string             `json:"database_used_source"`
	DatabaseRemainingBytes *int64             `json:"database_remaining_bytes"`
	DatabaseUsagePercent   *float64           `json:"database_usage_percent"`
	StorageRemainingBytes  *int64             `json:"storage_remaining_bytes"`
	StorageUsagePercent    *float64           `json:"storage_usage_percent"`
	RowEstimate            *RowSampleEstimate `json:"row_estimate"`
	Combined               CombinedEstimate   `json:"combined"`
	Plan                   PlanLimits         `json:"plan"`
	Notes                  []string           `json:"notes,omitempty"`
}
