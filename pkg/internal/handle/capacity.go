package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/fieldvault/pkg/context"
	"github.com/yeisme/fieldvault/pkg/internal/service"
	"github.com/yeisme/fieldvault/pkg/log"
)

// GetCapacitySummary 处理容量汇总请求.
//
//	@Summary		获取容量汇总报告
//	@Description	并发汇总激活计数、照片桶扫描、数据库大小探测与行抽样估算，给出剩余可写入量与先耗尽的资源
//	@Tags			容量核算
//	@Produce		json
//	@Success		200	{object}	types.CapacitySummary	"容量汇总报告"
//	@Failure		500	{object}	map[string]string		"承重输入（计数或桶扫描）失败"
//	@Router			/api/v1/capacity/summary [get]
func GetCapacitySummary(c *gin.Context) {
	ctx := c.Request.Context()

	svc := service.NewCapacityService(ctx)

	summary, err := svc.Summary(ctx)
	if err != nil {
		l := ctxPkg.WithTraceContext(ctx, *log.Logger())
		l.Error().Err(err).Msg("capacity summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBucketUsage 处理照片桶用量扫描请求.
//
//	@Summary		扫描照片桶用量
//	@Description	广度优先遍历照片桶的目录层级，返回总字节数与对象数
//	@Tags			容量核算
//	@Produce		json
//	@Param			bucket	query		string				false	"桶名，缺省使用配置的照片桶"
//	@Success		200		{object}	types.BucketUsage	"桶用量"
//	@Failure		500		{object}	map[string]string	"列举失败"
//	@Router			/api/v1/capacity/bucket [get]
func GetBucketUsage(c *gin.Context) {
	ctx := c.Request.Context()

	svc := service.NewCapacityService(ctx)

	bucket := c.Query("bucket")
	if bucket == "" {
		bucket = svc.Bucket()
	}

	usage, err := svc.ScanBucketUsage(ctx, bucket)
	if err != nil {
		log.Logger().Error().Err(err).Str("bucket", bucket).Msg("bucket scan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, usage)
}
