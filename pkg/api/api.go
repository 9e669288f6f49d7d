// Package api 注册对外 HTTP 接口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/fieldvault/pkg/internal/router"
)

// RegisterGroup 将业务路由组注册到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAll(e.Group("/api/v1"))

	return e
}
