// Package model 定义数据库模型.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Activations 落地活动记录模型.一条记录至多关联一张照片（photo_key 为空表示无照片）.
type Activations struct {
	// ID 使用 UUID 字符串，由服务层生成
	ID     string `gorm:"primaryKey;size:36"  json:"id"`
	Name   string `gorm:"size:255;index"      json:"name"`
	Region string `gorm:"size:128;index"      json:"region"`
	City   string `gorm:"size:128;index"      json:"city"`
	// Status 自由文本状态（如 planned/active/done），由调用方约束取值
	Status      string `gorm:"size:64;index"  json:"status"`
	Address     string `gorm:"size:512"       json:"address"`
	ContactName string `gorm:"size:255"       json:"contact_name"`
	Notes       string `gorm:"type:text"      json:"notes"`
	// PhotoKey 照片在对象存储中的 key，空串表示没有照片
	PhotoKey  string `gorm:"size:1024;index" json:"photo_key"`
	PhotoSize int64  `gorm:""                json:"photo_size"`
	// ActivatedAt 活动实际执行时间
	ActivatedAt time.Time `gorm:"index" json:"activated_at"`
	// 软删除与审计
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
