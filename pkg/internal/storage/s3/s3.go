// Package s3 处理S3存储操作.
package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/fieldvault/pkg/configs"
	nlog "github.com/yeisme/fieldvault/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client
}

// New 初始化 MinIO 客户端，若照片 bucket 不存在则尝试创建.
func New(ctx context.Context) (*Client, error) {
	cfg := configs.GetConfig().S3
	endpoint := cfg.Endpoint
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			cfg.UseSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("fieldvault", configs.AppVersion)

	// ensure bucket
	if bkt := cfg.BucketName; bkt != "" {
		exists, err := cli.BucketExists(ctx, bkt)
		if err != nil {
			return nil, fmt.Errorf("check bucket %s: %w", bkt, err)
		}

		if !exists {
			if err := cli.MakeBucket(ctx, bkt, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
				return nil, fmt.Errorf("create bucket %s: %w", bkt, err)
			}

			nlog.Logger().Info().Str("bucket", bkt).Msg("bucket created")
		}
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("s3 connected")

	return &Client{Client: cli}, nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}

func (c *Client) GetConfig() configs.S3Config {
	return configs.GetConfig().S3
}

// ListOptions 单层目录列举的分页选项.
type ListOptions struct {
	Limit  int    // 单页条数上限，<=0 表示不限制
	Offset int    // 跳过的条目数
	SortBy string // 排序键，目前仅支持 name（列举天然按 key 升序）
}

// ObjectEntry 目录列举返回的条目.目录条目既没有对象 ID 也没有 Metadata，
// 以此与文件条目区分（逻辑目录不是一等对象）.
type ObjectEntry struct {
	Name     string
	ID       *string
	Metadata map[string]any
}

// ListDir 列举 bucket 内 dir 的直接子级（单层、非递归），带 limit/offset 分页.
// dir 为空字符串表示根目录.文件条目的 Metadata 携带 size、eTag、lastModified 字段.
func (c *Client) ListDir(ctx context.Context, bucket, dir string, opts ListOptions) ([]ObjectEntry, error) {
	prefix := ""
	if dir != "" {
		prefix = strings.TrimSuffix(dir, "/") + "/"
	}

	// 提前终止列举需要可取消的 context
	lctx, cancel := context.WithCancel(ctx)
	defer cancel()

	need := 0
	if opts.Limit > 0 {
		need = opts.Offset + opts.Limit
	}

	entries := make([]ObjectEntry, 0, opts.Limit)

	for obj := range c.ListObjects(lctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: false}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", bucket, dir, obj.Err)
		}

		name := strings.TrimPrefix(obj.Key, prefix)

		if strings.HasSuffix(name, "/") {
			// 公共前缀即逻辑目录
			entries = append(entries, ObjectEntry{Name: strings.TrimSuffix(name, "/")})
		} else {
			id := strings.Trim(obj.ETag, "\"")
			entries = append(entries, ObjectEntry{
				Name: name,
				ID:   &id,
				Metadata: map[string]any{
					"size":         obj.Size,
					"eTag":         id,
					"lastModified": obj.LastModified.UTC().Format(time.RFC3339),
				},
			})
		}

		if need > 0 && len(entries) >= need {
			break
		}
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(entries) {
			return nil, nil
		}

		entries = entries[opts.Offset:]
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}

	return entries, nil
}
