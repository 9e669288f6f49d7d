package service

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/yeisme/fieldvault/pkg/internal/storage/s3"
	"github.com/yeisme/fieldvault/pkg/internal/types"
)

const (
	// listPageSize 每次分页列举的条数上限.
	listPageSize = 1000
	// emptyFolderPlaceholder 存储侧用来保留空目录的占位文件名，不计入用量.
	emptyFolderPlaceholder = ".emptyFolderPlaceholder"
)

// sizeMetadataKeys 对象大小在不同存储后端版本下的候选字段名，按序取第一个有限非负值.
var sizeMetadataKeys = []string{"size", "contentLength", "content_length", "Content-Length"}

// ScanBucketUsage 广度优先遍历 bucket 的逻辑目录层级，累计文件字节数与对象数.
// 列举 API 一次只返回一层目录且分页，目录条目没有对象 ID 和 Metadata.
// 使用显式工作队列加已访问集合，保证对重复或自指的列举也能终止；
// 任何一页列举失败都中止整个扫描（宁可失败也不少报用量）.
func (cs *CapacityService) ScanBucketUsage(ctx context.Context, bucket string) (types.BucketUsage, error) {
	var usage types.BucketUsage

	queue := []string{""}
	visited := map[string]bool{}

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		// 出队时判重：同一目录可能被重复入队，但只处理一次
		if visited[dir] {
			continue
		}

		visited[dir] = true

		for offset := 0; ; offset += listPageSize {
			if err := ctx.Err(); err != nil {
				return types.BucketUsage{}, fmt.Errorf("%w: scan cancelled: %v", ErrStorageList, err)
			}

			entries, err := cs.lister.ListDir(ctx, bucket, dir, s3.ListOptions{
				Limit:  listPageSize,
				Offset: offset,
				SortBy: "name",
			})
			if err != nil {
				return types.BucketUsage{}, fmt.Errorf("%w: dir %q offset %d: %v", ErrStorageList, dir, offset, err)
			}

			for _, entry := range entries {
				if entry.Name == "" {
					continue
				}

				if entry.ID == nil && entry.Metadata == nil {
					// 逻辑目录
					child := entry.Name
					if dir != "" {
						child = dir + "/" + entry.Name
					}

					if !visited[child] {
						queue = append(queue, child)
					}

					continue
				}

				if entry.Name == emptyFolderPlaceholder {
					continue
				}

				usage.TotalObjects++

				if size, ok := entrySize(entry); ok {
					usage.TotalBytes += size
				}
			}

			// 短页或空页表示该目录列举完毕
			if len(entries) < listPageSize {
				break
			}
		}
	}

	return usage, nil
}

// entrySize 按候选字段名顺序从条目 Metadata 中取对象大小，第一个有限非负值生效.
func entrySize(entry s3.ObjectEntry) (int64, bool) {
	for _, key := range sizeMetadataKeys {
		raw, ok := entry.Metadata[key]
		if !ok {
			continue
		}

		f, err := cast.ToFloat64E(raw)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			continue
		}

		return int64(f), true
	}

	return 0, false
}
