package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/fieldvault/pkg/configs"
	"github.com/yeisme/fieldvault/pkg/internal/service"
)

// fakeSampler 固定返回预置的采样行，并记录收到的 limit.
type fakeSampler struct {
	rows      []map[string]any
	err       error
	gotLimit  int
	callCount int
}

func (f *fakeSampler) SampleRecentRows(_ context.Context, limit int) ([]map[string]any, error) {
	f.gotLimit = limit
	f.callCount++

	if f.err != nil {
		return nil, f.err
	}

	if limit < len(f.rows) {
		return f.rows[:limit], nil
	}

	return f.rows, nil
}

// sampleRows 构造 n 行，每行 sonic 序列化后恰好 serializedBytes 字节.
// 单键 "v" 的 map 序列化为 {"v":"..."}，8 字节框架加字符串长度.
func sampleRows(n, serializedBytes int) []map[string]any {
	rows := make([]map[string]any, 0, n)
	payload := strings.Repeat("x", serializedBytes-8)

	for range n {
		rows = append(rows, map[string]any{"v": payload})
	}

	return rows
}

func newEstimateService(sampler service.RowSampler) *service.CapacityService {
	plan := configs.PlanConfig{
		SampleLimit:    configs.DefaultEstimateSampleLimit,
		OverheadFactor: configs.DefaultEstimateOverheadFactor,
	}

	return service.NewCapacityServiceWith(nil, sampler, nil, nil, "activation-photos", plan)
}

// TestEstimateZeroRows 总行数为零时返回零用量估计而不是错误，
// 剩余等于全部配额，容量字段为 null.
func TestEstimateZeroRows(t *testing.T) {
	sampler := &fakeSampler{}
	svc := newEstimateService(sampler)

	est, err := svc.EstimateTableUsage(context.Background(), 0, 500_000_000, 240, 1.34)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if est.SampleSize != 0 || est.EstimatedUsedBytes != 0 {
		t.Errorf("Expected zeroed estimate, got sample=%d used=%d", est.SampleSize, est.EstimatedUsedBytes)
	}

	if est.EstimatedRemainingBytes == nil || *est.EstimatedRemainingBytes != 500_000_000 {
		t.Errorf("Expected remaining equal to full limit, got %v", est.EstimatedRemainingBytes)
	}

	if est.EstimatedUsagePercent == nil || *est.EstimatedUsagePercent != 0 {
		t.Errorf("Expected zero usage percent, got %v", est.EstimatedUsagePercent)
	}

	if est.EstimatedCapacityTotal != nil || est.EstimatedCapacityRemaining != nil {
		t.Error("Expected capacity fields to be null for empty table")
	}

	if sampler.callCount != 0 {
		t.Errorf("Expected no sample query for empty table, got %d calls", sampler.callCount)
	}
}

// TestEstimateEmptySampleDespiteCount 总数为正但采样为空（与删除竞态）按空表处理.
func TestEstimateEmptySampleDespiteCount(t *testing.T) {
	svc := newEstimateService(&fakeSampler{})

	est, err := svc.EstimateTableUsage(context.Background(), 100, 0, 240, 1.34)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if est.SampleSize != 0 || est.EstimatedUsedBytes != 0 {
		t.Errorf("Expected zeroed estimate, got sample=%d used=%d", est.SampleSize, est.EstimatedUsedBytes)
	}
}

// TestEstimateWorkedExample 500 行、240 行采样均值 1000 字节、系数 1.34：
// 单行 1340，已用 670000；5 亿配额下容量 373134、剩余容量 372634.
func TestEstimateWorkedExample(t *testing.T) {
	svc := newEstimateService(&fakeSampler{rows: sampleRows(240, 1000)})

	est, err := svc.EstimateTableUsage(context.Background(), 500, 500_000_000, 240, 1.34)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if est.SampleSize != 240 {
		t.Errorf("Expected sample size 240, got %d", est.SampleSize)
	}

	if est.PerRowEstimatedBytes != 1340 {
		t.Errorf("Expected per-row 1340, got %d", est.PerRowEstimatedBytes)
	}

	if est.EstimatedUsedBytes != 670_000 {
		t.Errorf("Expected used 670000, got %d", est.EstimatedUsedBytes)
	}

	if est.EstimatedCapacityTotal == nil || *est.EstimatedCapacityTotal != 373_134 {
		t.Errorf("Expected capacity total 373134, got %v", est.EstimatedCapacityTotal)
	}

	if est.EstimatedCapacityRemaining == nil || *est.EstimatedCapacityRemaining != 372_634 {
		t.Errorf("Expected capacity remaining 372634, got %v", est.EstimatedCapacityRemaining)
	}

	if est.EstimatedRemainingBytes == nil || *est.EstimatedRemainingBytes != 499_330_000 {
		t.Errorf("Expected remaining 499330000, got %v", est.EstimatedRemainingBytes)
	}

	if est.EstimatedUsagePercent == nil || *est.EstimatedUsagePercent != 0.13 {
		t.Errorf("Expected usage percent 0.13, got %v", est.EstimatedUsagePercent)
	}
}

// TestEstimateNoLimit 不给字节配额时四个配额相关字段为 null.
func TestEstimateNoLimit(t *testing.T) {
	svc := newEstimateService(&fakeSampler{rows: sampleRows(40, 100)})

	est, err := svc.EstimateTableUsage(context.Background(), 10, 0, 40, 1.34)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if est.EstimatedRemainingBytes != nil || est.EstimatedUsagePercent != nil ||
		est.EstimatedCapacityTotal != nil || est.EstimatedCapacityRemaining != nil {
		t.Error("Expected all limit-bound fields to be null without a byte limit")
	}

	if est.EstimatedUsedBytes <= 0 {
		t.Errorf("Expected positive used bytes, got %d", est.EstimatedUsedBytes)
	}
}

// TestEstimateSampleLimitClamping 采样条数限制在 [40, 500].
func TestEstimateSampleLimitClamping(t *testing.T) {
	cases := []struct {
		requested int
		expected  int
	}{
		{10, 40},
		{40, 40},
		{240, 240},
		{500, 500},
		{1000, 500},
		{0, 240}, // 非正值回落到配置默认
	}

	for _, tc := range cases {
		sampler := &fakeSampler{rows: sampleRows(40, 100)}
		svc := newEstimateService(sampler)

		_, err := svc.EstimateTableUsage(context.Background(), 10, 0, tc.requested, 1.34)
		if err != nil {
			t.Fatalf("Expected no error for limit %d, got %v", tc.requested, err)
		}

		if sampler.gotLimit != tc.expected {
			t.Errorf("Requested %d: expected clamped limit %d, got %d", tc.requested, tc.expected, sampler.gotLimit)
		}
	}
}

// TestEstimateOverheadMonotonic 提高系数严格增大单行与总用量估计.
func TestEstimateOverheadMonotonic(t *testing.T) {
	rows := sampleRows(100, 500)

	low, err := newEstimateService(&fakeSampler{rows: rows}).
		EstimateTableUsage(context.Background(), 1000, 0, 100, 1.1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	high, err := newEstimateService(&fakeSampler{rows: rows}).
		EstimateTableUsage(context.Background(), 1000, 0, 100, 1.9)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if high.PerRowEstimatedBytes <= low.PerRowEstimatedBytes {
		t.Errorf("Expected per-row to grow with overhead: %d vs %d", low.PerRowEstimatedBytes, high.PerRowEstimatedBytes)
	}

	if high.EstimatedUsedBytes <= low.EstimatedUsedBytes {
		t.Errorf("Expected used bytes to grow with overhead: %d vs %d", low.EstimatedUsedBytes, high.EstimatedUsedBytes)
	}
}

// TestEstimateQueryError 采样查询失败包装为 ErrSampleQuery.
func TestEstimateQueryError(t *testing.T) {
	svc := newEstimateService(&fakeSampler{err: errors.New("relation does not exist")})

	_, err := svc.EstimateTableUsage(context.Background(), 100, 0, 240, 1.34)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if !errors.Is(err, service.ErrSampleQuery) {
		t.Errorf("Expected ErrSampleQuery, got %v", err)
	}
}
