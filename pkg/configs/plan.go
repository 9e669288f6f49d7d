package configs

import "github.com/spf13/viper"

const (
	// 参考套餐默认配额（未显式配置时的兜底值）.
	DefaultPlanName               = "free"
	DefaultDatabaseLimitBytes     = 500 * 1000 * 1000      // 数据库配额 500 MB
	DefaultStorageLimitBytes      = 1 * 1000 * 1000 * 1000 // 对象存储配额 1 GB
	DefaultFileSizeLimitBytes     = 50 * 1000 * 1000       // 单文件上限 50 MB
	DefaultEgressLimitBytes       = 5 * 1000 * 1000 * 1000 // 每月出口流量 5 GB
	DefaultEstimateSampleLimit    = 240                    // 行抽样条数
	DefaultEstimateOverheadFactor = 1.34                   // 抽样估算的开销放大系数
)

// PlanConfig 容量方案配置：存储与数据库配额，以及行抽样估算参数.
// 所有字段均可被配置覆盖，缺省采用参考套餐（free 档）的固定值.
type PlanConfig struct {
	Name               string  `mapstructure:"name"`
	DatabaseLimitBytes int64   `mapstructure:"database_limit_bytes"  rule:"min=0"`
	StorageLimitBytes  int64   `mapstructure:"storage_limit_bytes"   rule:"min=0"`
	FileSizeLimitBytes int64   `mapstructure:"file_size_limit_bytes" rule:"min=0"`
	EgressLimitBytes   int64   `mapstructure:"egress_limit_bytes"    rule:"min=0"`
	SampleLimit        int     `mapstructure:"sample_limit"          rule:"min=1"`
	OverheadFactor     float64 `mapstructure:"overhead_factor"       rule:"gt=0"`
}

// setDefaults 设置容量方案配置的默认值.
func (c *PlanConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("plan.name", DefaultPlanName)
	v.SetDefault("plan.database_limit_bytes", DefaultDatabaseLimitBytes)
	v.SetDefault("plan.storage_limit_bytes", DefaultStorageLimitBytes)
	v.SetDefault("plan.file_size_limit_bytes", DefaultFileSizeLimitBytes)
	v.SetDefault("plan.egress_limit_bytes", DefaultEgressLimitBytes)
	v.SetDefault("plan.sample_limit", DefaultEstimateSampleLimit)
	v.SetDefault("plan.overhead_factor", DefaultEstimateOverheadFactor)
}
