package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/fieldvault/pkg/configs"
	"github.com/yeisme/fieldvault/pkg/internal/service"
	"github.com/yeisme/fieldvault/pkg/log"
)

// UploadActivationPhoto 处理照片上传（multipart 表单，字段名 photo）.
//
//	@Summary		上传或替换活动照片
//	@Description	一条记录至多一张照片，再次上传即替换；超出套餐单文件上限直接拒绝
//	@Tags			活动照片
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string					true	"记录 ID"
//	@Param			photo	formData	file					true	"照片文件"
//	@Success		200		{object}	types.PhotoUploadResult	"上传结果"
//	@Failure		400		{object}	map[string]string		"缺少文件"
//	@Failure		404		{object}	map[string]string		"记录不存在"
//	@Failure		413		{object}	map[string]string		"超出单文件大小上限"
//	@Router			/api/v1/activations/{id}/photo [post]
func UploadActivationPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	defer file.Close() //nolint:errcheck

	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)
	limit := configs.GetConfig().Plan.FileSizeLimitBytes

	result, err := svc.UploadPhoto(ctx, c.Param("id"), fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file, fileHeader.Size, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrActivationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Logger().Error().Err(err).Msg("upload photo failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}

		return
	}

	c.JSON(http.StatusOK, result)
}

// GetActivationPhotoURL 生成照片预签名访问 URL.
//
//	@Summary		获取活动照片访问URL
//	@Tags			活动照片
//	@Produce		json
//	@Param			id	path		string				true	"记录 ID"
//	@Success		200	{object}	map[string]string	"预签名访问URL"
//	@Failure		404	{object}	map[string]string	"记录或照片不存在"
//	@Router			/api/v1/activations/{id}/photo/url [get]
func GetActivationPhotoURL(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	url, err := svc.PhotoURL(ctx, c.Param("id"), service.DefaultPhotoURLExpiry)
	if err != nil {
		if errors.Is(err, service.ErrActivationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		log.Logger().Error().Err(err).Msg("presign photo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteActivationPhoto 删除活动照片.
//
//	@Summary		删除活动照片
//	@Description	删除存储中的照片对象并清空记录上的照片元数据，无照片时幂等成功
//	@Tags			活动照片
//	@Produce		json
//	@Param			id	path		string				true	"记录 ID"
//	@Success		200	{object}	map[string]string	"删除成功"
//	@Failure		404	{object}	map[string]string	"记录不存在"
//	@Router			/api/v1/activations/{id}/photo [delete]
func DeleteActivationPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	if err := svc.DeletePhoto(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrActivationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		log.Logger().Error().Err(err).Msg("delete photo failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
