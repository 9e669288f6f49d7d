// Package service 实现业务逻辑：落地活动记录的增删改查、照片直传，
// 以及容量核算子系统（桶扫描、行抽样估算、容量预测与汇总）.
package service

import (
	"context"
	"errors"

	ctxPkg "github.com/yeisme/fieldvault/pkg/context"
	"github.com/yeisme/fieldvault/pkg/internal/storage/db"
	"github.com/yeisme/fieldvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/fieldvault/pkg/log"
)

// 错误分级：ErrStorageList 属于致命错误，中止整个汇总请求；
// 其余两类为非致命，调用方把对应字段降级为 null 并记录原因.
var (
	// ErrStorageList 桶扫描过程中某次分页列举失败.
	ErrStorageList = errors.New("storage list failed")
	// ErrSampleQuery 行抽样读取失败.
	ErrSampleQuery = errors.New("row sample query failed")
	// ErrSizeProbe 数据库大小直接探测失败或返回值无法解析.
	ErrSizeProbe = errors.New("database size probe unavailable")
)

// ObjectLister 单层目录列举的最小依赖，便于测试替换.
type ObjectLister interface {
	ListDir(ctx context.Context, bucket, dir string, opts s3.ListOptions) ([]s3.ObjectEntry, error)
}

// RowSampler 读取最近 N 行（全部列，列名到值的映射）.
type RowSampler interface {
	SampleRecentRows(ctx context.Context, limit int) ([]map[string]any, error)
}

// SizeProber 直接探测数据库已用字节数.返回值可能是数字、数字字符串
// 或带 size 字段的结构，由调用方宽松解析.
type SizeProber interface {
	DatabaseSize(ctx context.Context) (any, error)
}

// UnitCounter 统计记录总数与带照片的记录数.
type UnitCounter interface {
	CountActivations(ctx context.Context) (total int64, withPhoto int64, err error)
}

// ActivationService 负责落地活动记录相关业务逻辑（CRUD、照片直传），不处理 HTTP 细节.
type ActivationService struct {
	s3Client *s3.Client
	dbClient *db.Client
}

// NewActivationService 从 context 获取依赖实例.
func NewActivationService(c context.Context) *ActivationService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &ActivationService{
		s3Client: s3c,
		dbClient: dbc,
	}
}

// defaultBucket 返回照片 bucket 名称.
func (as *ActivationService) defaultBucket() string {
	return as.s3Client.GetConfig().BucketName
}
