// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultHandler 未实现路由的占位处理器.
func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}
