package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/fieldvault/pkg/internal/handle"
)

// RegisterActivationsRoutes 注册落地活动与照片相关路由.
func RegisterActivationsRoutes(g *gin.RouterGroup) {
	activationRoutes := g.Group("/activations")
	{
		activationRoutes.GET("", handle.ListActivations)
		activationRoutes.POST("", handle.CreateActivation)

		singleGroup := activationRoutes.Group("/:id")
		{
			singleGroup.GET("", handle.GetActivation)
			singleGroup.PUT("", handle.UpdateActivation)
			singleGroup.DELETE("", handle.DeleteActivation)

			// 照片：一条记录至多一张
			singleGroup.POST("/photo", handle.UploadActivationPhoto)
			singleGroup.DELETE("/photo", handle.DeleteActivationPhoto)
			singleGroup.GET("/photo/url", handle.GetActivationPhotoURL)
		}
	}
}
