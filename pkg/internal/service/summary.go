package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/fieldvault/pkg/configs"
	ctxPkg "github.com/yeisme/fieldvault/pkg/context"
	"github.com/yeisme/fieldvault/pkg/internal/types"
	nlog "github.com/yeisme/fieldvault/pkg/log"
)

// sizeValueKeys 探测返回结构里已用字节数的候选字段名.
var sizeValueKeys = []string{"size", "bytes", "db_size", "database_size", "total_bytes"}

// CapacityService 容量核算服务：桶扫描、行抽样估算、容量预测与汇总.
// 四个协作方都以接口注入，生产路径走真实存储客户端，测试用桩替换.
type CapacityService struct {
	lister  ObjectLister
	sampler RowSampler
	prober  SizeProber
	counter UnitCounter

	bucket  string
	plan    configs.PlanConfig
	breaker *gobreaker.CircuitBreaker
}

// NewCapacityService 从 context 获取存储客户端并装配容量服务.
func NewCapacityService(c context.Context) *CapacityService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)

	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	cfg := configs.GetConfig()
	store := &activationStore{db: dbc}

	return NewCapacityServiceWith(s3c, store, dbc, store, s3c.GetConfig().BucketName, cfg.Plan)
}

// NewCapacityServiceWith 按显式依赖装配，测试入口.
func NewCapacityServiceWith(lister ObjectLister, sampler RowSampler, prober SizeProber, counter UnitCounter, bucket string, plan configs.PlanConfig) *CapacityService {
	cfg := configs.GetConfig()

	return &CapacityService{
		lister:  lister,
		sampler: sampler,
		prober:  prober,
		counter: counter,
		bucket:  bucket,
		plan:    plan,
		breaker: newProbeBreaker(cfg.CircuitBreaker),
	}
}

// Bucket 返回服务扫描的照片 bucket 名称.
func (cs *CapacityService) Bucket() string {
	return cs.bucket
}

// newProbeBreaker 数据库大小探测的熔断器.探测只是优选数据源，
// 后端持续拒绝时快速失败并回落到行抽样估算即可.
func newProbeBreaker(cfg configs.CircuitBreakerConfig) *gobreaker.CircuitBreaker {
	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "db-size-probe",
		MaxRequests: cfg.MaxRequestsInHalf,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// Summary 汇总一份完整的容量报告.
// 计数、桶扫描、大小探测三路读取互相独立，并发执行；行抽样估算
// 依赖总行数，在三路完成后计算.计数与桶扫描是承重输入，失败即
// 中止；探测与估算失败只是把相应字段降级为 null 并记入 Notes.
func (cs *CapacityService) Summary(ctx context.Context) (*types.CapacitySummary, error) {
	var (
		total, withPhoto int64
		usage            types.BucketUsage
		probed           *int64
		probeNote        string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		total, withPhoto, err = cs.counter.CountActivations(gctx)
		if err != nil {
			return fmt.Errorf("count activations: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		usage, err = cs.ScanBucketUsage(gctx, cs.bucket)

		return err
	})

	g.Go(func() error {
		// 探测失败不是错误，记下原因即可
		probed, probeNote = cs.probeDatabaseSize(gctx)

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &types.CapacitySummary{
		ActivationCount:      total,
		ActivationsWithPhoto: withPhoto,
		Bucket:               cs.bucket,
		BucketUsage:          usage,
		DatabaseUsedSource:   types.DatabaseUsedSourceNone,
		Plan: types.PlanLimits{
			Name:               cs.plan.Name,
			DatabaseLimitBytes: cs.plan.DatabaseLimitBytes,
			StorageLimitBytes:  cs.plan.StorageLimitBytes,
			FileSizeLimitBytes: cs.plan.FileSizeLimitBytes,
			EgressLimitBytes:   cs.plan.EgressLimitBytes,
		},
	}

	if probeNote != "" {
		summary.Notes = append(summary.Notes, probeNote)
	}

	// 行抽样估算总是计算，即使探测成功也需要它提供单行成本
	estimate, err := cs.EstimateTableUsage(ctx, total, cs.plan.DatabaseLimitBytes, cs.plan.SampleLimit, cs.plan.OverheadFactor)
	if err != nil {
		summary.Notes = append(summary.Notes, fmt.Sprintf("row estimate unavailable: %v", err))
	} else {
		summary.RowEstimate = &estimate
	}

	// 数据库已用字节：探测优先，估算兜底
	switch {
	case probed != nil:
		summary.DatabaseUsedBytes = probed
		summary.DatabaseUsedSource = types.DatabaseUsedSourceProbe
	case summary.RowEstimate != nil && summary.RowEstimate.SampleSize > 0:
		used := summary.RowEstimate.EstimatedUsedBytes
		summary.DatabaseUsedBytes = &used
		summary.DatabaseUsedSource = types.DatabaseUsedSourceEstimate
	case summary.RowEstimate != nil && total <= 0:
		var zero int64

		summary.DatabaseUsedBytes = &zero
		summary.DatabaseUsedSource = types.DatabaseUsedSourceEstimate
	}

	if summary.DatabaseUsedBytes != nil && cs.plan.DatabaseLimitBytes > 0 {
		remaining := cs.plan.DatabaseLimitBytes - *summary.DatabaseUsedBytes
		if remaining < 0 {
			remaining = 0
		}

		percent := roundPercent(float64(*summary.DatabaseUsedBytes) / float64(cs.plan.DatabaseLimitBytes) * 100)

		summary.DatabaseRemainingBytes = &remaining
		summary.DatabaseUsagePercent = &percent
	}

	if cs.plan.StorageLimitBytes > 0 {
		remaining := cs.plan.StorageLimitBytes - usage.TotalBytes
		if remaining < 0 {
			remaining = 0
		}

		percent := roundPercent(float64(usage.TotalBytes) / float64(cs.plan.StorageLimitBytes) * 100)

		summary.StorageRemainingBytes = &remaining
		summary.StorageUsagePercent = &percent
	}

	in := ProjectionInput{
		ActivationCount:        total,
		ActivationsWithPhoto:   withPhoto,
		BucketObjects:          usage.TotalObjects,
		StorageUsedBytes:       &usage.TotalBytes,
		StorageRemainingBytes:  summary.StorageRemainingBytes,
		DatabaseRemainingBytes: summary.DatabaseRemainingBytes,
	}

	if summary.RowEstimate != nil && summary.RowEstimate.SampleSize > 0 {
		perRow := summary.RowEstimate.PerRowEstimatedBytes
		in.PerActivationDBBytes = &perRow
	}

	summary.Combined = ProjectCapacity(in)
	summary.Notes = append(summary.Notes, summary.Combined.Reasons...)

	return summary, nil
}

// probeDatabaseSize 经熔断器直接探测数据库大小，返回字节数或降级原因.
func (cs *CapacityService) probeDatabaseSize(ctx context.Context) (*int64, string) {
	raw, err := cs.breaker.Execute(func() (any, error) {
		return cs.prober.DatabaseSize(ctx)
	})
	if err != nil {
		return nil, fmt.Sprintf("%v: %v", ErrSizeProbe, err)
	}

	size, ok := coerceSizeValue(raw)
	if !ok {
		return nil, fmt.Sprintf("%v: unparseable probe value %T", ErrSizeProbe, raw)
	}

	return &size, ""
}

// coerceSizeValue 宽松解析探测返回值：数字、数字字符串，或在
// map 结构里按候选字段名找第一个可解析的非负值.
func coerceSizeValue(raw any) (int64, bool) {
	if raw == nil {
		return 0, false
	}

	if m, err := cast.ToStringMapE(raw); err == nil {
		for _, key := range sizeValueKeys {
			if v, ok := m[key]; ok {
				if size, sok := coerceSizeValue(v); sok {
					return size, true
				}
			}
		}

		return 0, false
	}

	size, err := cast.ToInt64E(raw)
	if err != nil || size < 0 {
		return 0, false
	}

	return size, true
}
