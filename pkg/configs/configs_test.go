package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/fieldvault/pkg/configs"
)

// TestInitConfigDefaults 空配置文件下全部字段取参考套餐与内置默认值.
func TestInitConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if err := configs.InitConfig(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cfg := configs.GetConfig()

	if cfg.Plan.DatabaseLimitBytes != configs.DefaultDatabaseLimitBytes {
		t.Errorf("Expected database limit %d, got %d", int64(configs.DefaultDatabaseLimitBytes), cfg.Plan.DatabaseLimitBytes)
	}

	if cfg.Plan.StorageLimitBytes != configs.DefaultStorageLimitBytes {
		t.Errorf("Expected storage limit %d, got %d", int64(configs.DefaultStorageLimitBytes), cfg.Plan.StorageLimitBytes)
	}

	if cfg.Plan.SampleLimit != configs.DefaultEstimateSampleLimit {
		t.Errorf("Expected sample limit %d, got %d", configs.DefaultEstimateSampleLimit, cfg.Plan.SampleLimit)
	}

	if cfg.Plan.OverheadFactor != configs.DefaultEstimateOverheadFactor {
		t.Errorf("Expected overhead factor %v, got %v", configs.DefaultEstimateOverheadFactor, cfg.Plan.OverheadFactor)
	}

	if cfg.S3.BucketName != configs.DefaultS3BucketName {
		t.Errorf("Expected bucket %q, got %q", configs.DefaultS3BucketName, cfg.S3.BucketName)
	}

	if cfg.DB.Type != configs.PostgreSQL {
		t.Errorf("Expected default db type postgresql, got %s", cfg.DB.Type)
	}
}

// TestInitConfigOverride 配置文件覆盖参考套餐默认值.
func TestInitConfigOverride(t *testing.T) {
	dir := t.TempDir()
	content := []byte("plan:\n  database_limit_bytes: 1000000\n  sample_limit: 100\n")

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if err := configs.InitConfig(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cfg := configs.GetConfig()

	if cfg.Plan.DatabaseLimitBytes != 1_000_000 {
		t.Errorf("Expected overridden database limit 1000000, got %d", cfg.Plan.DatabaseLimitBytes)
	}

	if cfg.Plan.SampleLimit != 100 {
		t.Errorf("Expected overridden sample limit 100, got %d", cfg.Plan.SampleLimit)
	}

	// 未覆盖的字段保持默认
	if cfg.Plan.OverheadFactor != configs.DefaultEstimateOverheadFactor {
		t.Errorf("Expected default overhead factor, got %v", cfg.Plan.OverheadFactor)
	}
}
