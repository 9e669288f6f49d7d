// Package router 管理路由配置，将路径和处理器绑定到 gin 引擎.
// 处理器实现由 pkg/internal/handle 提供.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAll 将全部业务路由注册到传入的路由组（通常是 /api/v1）.
func RegisterAll(g *gin.RouterGroup) {
	RegisterActivationsRoutes(g)
	RegisterCapacityRoutes(g)
	RegisterHealthCheckRoute(g)
}
