package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/fieldvault/pkg/internal/service"
	"github.com/yeisme/fieldvault/pkg/internal/types"
	"github.com/yeisme/fieldvault/pkg/log"
	"github.com/yeisme/fieldvault/pkg/rule"
)

// ListActivations 处理落地活动列表请求.
//
//	@Summary		列举落地活动记录
//	@Description	按状态/区域/关键词过滤并分页，按活动时间倒序
//	@Tags			落地活动
//	@Produce		json
//	@Param			status		query		string				false	"状态过滤"
//	@Param			region		query		string				false	"区域过滤"
//	@Param			q			query		string				false	"名称/城市/地址模糊匹配"
//	@Param			page		query		int					false	"页码，从 1 开始"
//	@Param			page_size	query		int					false	"分页大小，默认 20"
//	@Success		200			{object}	map[string]any		"记录列表与总数"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		500			{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/activations [get]
func ListActivations(c *gin.Context) {
	var query types.ListActivationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	records, total, err := svc.ListActivations(ctx, query)
	if err != nil {
		log.Logger().Error().Err(err).Msg("list activations failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"items": records, "total": total})
}

// GetActivation 处理单条记录查询.
//
//	@Summary		获取单条落地活动记录
//	@Tags			落地活动
//	@Produce		json
//	@Param			id	path		string				true	"记录 ID"
//	@Success		200	{object}	model.Activations	"记录"
//	@Failure		404	{object}	map[string]string	"记录不存在"
//	@Router			/api/v1/activations/{id} [get]
func GetActivation(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	record, err := svc.GetActivation(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrActivationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		log.Logger().Error().Err(err).Msg("get activation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, record)
}

// CreateActivation 处理创建请求.
//
//	@Summary		创建落地活动记录
//	@Tags			落地活动
//	@Accept			json
//	@Produce		json
//	@Param			activation	body		types.CreateActivationRequest	true	"创建请求"
//	@Success		201			{object}	model.Activations				"创建的记录"
//	@Failure		400			{object}	map[string]string				"请求参数错误"
//	@Failure		500			{object}	map[string]string				"服务器内部错误"
//	@Router			/api/v1/activations [post]
func CreateActivation(c *gin.Context) {
	var req types.CreateActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid create request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	record, err := svc.CreateActivation(ctx, req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("create activation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateActivation 处理部分更新请求.
//
//	@Summary		更新落地活动记录
//	@Description	未提供的字段保持原值
//	@Tags			落地活动
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"记录 ID"
//	@Param			activation	body		types.UpdateActivationRequest	true	"更新请求"
//	@Success		200			{object}	model.Activations				"更新后的记录"
//	@Failure		400			{object}	map[string]string				"请求参数错误"
//	@Failure		404			{object}	map[string]string				"记录不存在"
//	@Router			/api/v1/activations/{id} [put]
func UpdateActivation(c *gin.Context) {
	var req types.UpdateActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid update request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	record, err := svc.UpdateActivation(ctx, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrActivationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		log.Logger().Error().Err(err).Msg("update activation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteActivation 处理删除请求.
//
//	@Summary		删除落地活动记录
//	@Description	软删除记录，若带有照片则一并删除存储中的对象
//	@Tags			落地活动
//	@Produce		json
//	@Param			id	path		string				true	"记录 ID"
//	@Success		200	{object}	map[string]string	"删除成功"
//	@Failure		404	{object}	map[string]string	"记录不存在"
//	@Router			/api/v1/activations/{id} [delete]
func DeleteActivation(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewActivationService(ctx)

	if err := svc.DeleteActivation(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrActivationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

			return
		}

		log.Logger().Error().Err(err).Msg("delete activation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
