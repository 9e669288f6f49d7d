package types

// CreateActivationRequest 创建落地活动记录的请求体.
type CreateActivationRequest struct {
	Name        string `json:"name"         rule:"required,max=255"`
	Region      string `json:"region"       rule:"max=128"`
	City        string `json:"city"         rule:"max=128"`
	Status      string `json:"status"       rule:"max=64"`
	Address     string `json:"address"      rule:"max=512"`
	ContactName string `json:"contact_name" rule:"max=255"`
	Notes       string `json:"notes"`
	// ActivatedAt RFC3339 时间串，缺省取当前时间
	ActivatedAt string `json:"activated_at" rule:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateActivationRequest 更新请求体，指针字段表示"未提供则不更新".
type UpdateActivationRequest struct {
	Name        *string `json:"name"         rule:"omitempty,max=255"`
	Region      *string `json:"region"       rule:"omitempty,max=128"`
	City        *string `json:"city"         rule:"omitempty,max=128"`
	Status      *string `json:"status"       rule:"omitempty,max=64"`
	Address     *string `json:"address"      rule:"omitempty,max=512"`
	ContactName *string `json:"contact_name" rule:"omitempty,max=255"`
	Notes       *string `json:"notes"`
	ActivatedAt *string `json:"activated_at" rule:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ListActivationsQuery 列表过滤与分页参数.
type ListActivationsQuery struct {
	Status   string `form:"status"    rule:"max=64"`
	Region   string `form:"region"    rule:"max=128"`
	Q        string `form:"q"         rule:"max=255"` // 名称/城市/地址的模糊匹配
	Page     int    `form:"page"      rule:"min=0"`
	PageSize int    `form:"page_size" rule:"min=0,max=500"`
}

// PhotoUploadResult 照片上传结果.
type PhotoUploadResult struct {
	ObjectKey string `json:"object_key"`
	Size      int64  `json:"size"`
	ETag      string `json:"etag"`
}
