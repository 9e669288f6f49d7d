package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/oklog/ulid"

	"github.com/yeisme/fieldvault/pkg/internal/model"
	"github.com/yeisme/fieldvault/pkg/internal/types"
)

// DefaultPhotoURLExpiry 照片预签名访问 URL 的默认有效期.
const DefaultPhotoURLExpiry = 15 * time.Minute

// ErrPhotoTooLarge 上传的照片超过套餐单文件上限.
var ErrPhotoTooLarge = fmt.Errorf("photo exceeds plan file size limit")

var ulidEntropy = ulid.Monotonic(crand.Reader, 0)

// buildPhotoKey 构建照片对象 key：activations/<记录ID>/<ulid><扩展名>.
// ULID 保证同一条记录反复换图时 key 单调递增且不冲突.
func buildPhotoKey(activationID, filename string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), ulidEntropy)
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("activations/%s/%s%s", activationID, id.String(), ext)
}

// UploadPhoto 为一条激活记录上传（或替换）照片.超过套餐单文件上限
// 直接拒绝；替换时先写新对象再删旧对象，最后更新记录元数据.
func (as *ActivationService) UploadPhoto(ctx context.Context, activationID, filename, contentType string, reader io.Reader, size int64, fileSizeLimit int64) (*types.PhotoUploadResult, error) {
	if fileSizeLimit > 0 && size > fileSizeLimit {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrPhotoTooLarge, size, fileSizeLimit)
	}

	record, err := as.GetActivation(ctx, activationID)
	if err != nil {
		return nil, err
	}

	bucket := as.defaultBucket()
	objectKey := buildPhotoKey(activationID, filename)

	opts := minio.PutObjectOptions{ContentType: contentType}

	info, err := as.s3Client.PutObject(ctx, bucket, objectKey, reader, size, opts)
	if err != nil {
		return nil, fmt.Errorf("upload photo for %s: %w", activationID, err)
	}

	oldKey := record.PhotoKey

	err = as.dbClient.DB.WithContext(ctx).Model(record).Updates(map[string]any{
		"photo_key":  objectKey,
		"photo_size": info.Size,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("record photo for %s: %w", activationID, err)
	}

	// 替换场景：新对象已持久化，旧对象尽力清理
	if oldKey != "" && oldKey != objectKey {
		_ = as.removePhotoObject(ctx, oldKey)
	}

	return &types.PhotoUploadResult{
		ObjectKey: objectKey,
		Size:      info.Size,
		ETag:      strings.Trim(info.ETag, "\""),
	}, nil
}

// PhotoURL 生成照片的预签名 GET URL.
func (as *ActivationService) PhotoURL(ctx context.Context, activationID string, expiry time.Duration) (string, error) {
	record, err := as.GetActivation(ctx, activationID)
	if err != nil {
		return "", err
	}

	if record.PhotoKey == "" {
		return "", ErrActivationNotFound
	}

	if expiry <= 0 {
		expiry = DefaultPhotoURLExpiry
	}

	urlObj, err := as.s3Client.PresignedGetObject(ctx, as.defaultBucket(), record.PhotoKey, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign photo for %s: %w", activationID, err)
	}

	return urlObj.String(), nil
}

// DeletePhoto 删除记录的照片对象并清空元数据.没有照片时是幂等空操作.
func (as *ActivationService) DeletePhoto(ctx context.Context, activationID string) error {
	record, err := as.GetActivation(ctx, activationID)
	if err != nil {
		return err
	}

	if record.PhotoKey == "" {
		return nil
	}

	if err := as.removePhotoObject(ctx, record.PhotoKey); err != nil {
		return err
	}

	err = as.dbClient.DB.WithContext(ctx).Model(&model.Activations{}).
		Where("id = ?", activationID).
		Updates(map[string]any{"photo_key": "", "photo_size": 0}).Error
	if err != nil {
		return fmt.Errorf("clear photo for %s: %w", activationID, err)
	}

	return nil
}

// removePhotoObject 删除存储中的照片对象.
func (as *ActivationService) removePhotoObject(ctx context.Context, objectKey string) error {
	err := as.s3Client.RemoveObject(ctx, as.defaultBucket(), objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove photo object %s: %w", objectKey, err)
	}

	return nil
}
