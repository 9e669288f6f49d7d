package types_test

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/yeisme/fieldvault/pkg/internal/types"
)

// TestCombinedEstimateNullRendering 缺失的估计字段序列化为 JSON null 而不是 0，
// 让前端能区分"不可用"与"确实为零".
func TestCombinedEstimateNullRendering(t *testing.T) {
	out, err := sonic.Marshal(types.CombinedEstimate{LimitingFactor: types.LimitingFactorNone})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := string(out)

	for _, field := range []string{"average_photo_bytes", "remaining_by_database", "remaining_by_storage", "estimated_remaining"} {
		if !strings.Contains(s, `"`+field+`":null`) {
			t.Errorf("Expected %s to render as null, got %s", field, s)
		}
	}

	if !strings.Contains(s, `"limiting_factor":"none"`) {
		t.Errorf("Expected limiting_factor none, got %s", s)
	}

	// 空 reasons 不输出
	if strings.Contains(s, "reasons") {
		t.Errorf("Expected empty reasons to be omitted, got %s", s)
	}
}
