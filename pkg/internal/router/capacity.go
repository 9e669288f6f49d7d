package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/fieldvault/pkg/internal/handle"
)

// RegisterCapacityRoutes 注册容量核算相关路由.
func RegisterCapacityRoutes(g *gin.RouterGroup) {
	capacityRoutes := g.Group("/capacity")
	{
		capacityRoutes.GET("/summary", handle.GetCapacitySummary) // 完整容量汇总
		capacityRoutes.GET("/bucket", handle.GetBucketUsage)      // 仅桶用量扫描
	}
}
