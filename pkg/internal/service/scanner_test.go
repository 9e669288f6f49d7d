package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yeisme/fieldvault/pkg/configs"
	"github.com/yeisme/fieldvault/pkg/internal/service"
	"github.com/yeisme/fieldvault/pkg/internal/storage/s3"
)

// fakeLister 内存目录树，按 offset/limit 切片模拟分页列举.
type fakeLister struct {
	dirs  map[string][]s3.ObjectEntry
	err   error
	calls int
}

func (f *fakeLister) ListDir(_ context.Context, _, dir string, opts s3.ListOptions) ([]s3.ObjectEntry, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	entries := f.dirs[dir]
	if opts.Offset >= len(entries) {
		return nil, nil
	}

	end := len(entries)
	if opts.Limit > 0 && opts.Offset+opts.Limit < end {
		end = opts.Offset + opts.Limit
	}

	return entries[opts.Offset:end], nil
}

// fileEntry 构造文件条目，大小放在给定的 metadata 字段下.
func fileEntry(name, sizeKey string, size any) s3.ObjectEntry {
	id := name + "-id"

	return s3.ObjectEntry{
		Name:     name,
		ID:       &id,
		Metadata: map[string]any{sizeKey: size},
	}
}

// dirEntry 构造目录条目：没有 ID 也没有 Metadata.
func dirEntry(name string) s3.ObjectEntry {
	return s3.ObjectEntry{Name: name}
}

func newScanService(lister service.ObjectLister) *service.CapacityService {
	return service.NewCapacityServiceWith(lister, nil, nil, nil, "activation-photos", configs.PlanConfig{})
}

// TestScanEmptyBucket 空桶返回零字节零对象.
func TestScanEmptyBucket(t *testing.T) {
	svc := newScanService(&fakeLister{dirs: map[string][]s3.ObjectEntry{}})

	usage, err := svc.ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalBytes != 0 || usage.TotalObjects != 0 {
		t.Errorf("Expected {0, 0}, got {%d, %d}", usage.TotalBytes, usage.TotalObjects)
	}
}

// TestScanNestedWithPlaceholder 三个文件加一个子目录占位文件：
// 占位文件不计入，总量为 1000 字节 3 个对象.
func TestScanNestedWithPlaceholder(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{
		"": {
			fileEntry("a.jpg", "size", 100),
			fileEntry("b.jpg", "size", 250),
			dirEntry("sub"),
		},
		"sub": {
			fileEntry("c.jpg", "size", 650),
			fileEntry(".emptyFolderPlaceholder", "size", 0),
		},
	}}

	usage, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalBytes != 1000 {
		t.Errorf("Expected 1000 total bytes, got %d", usage.TotalBytes)
	}

	if usage.TotalObjects != 3 {
		t.Errorf("Expected 3 objects, got %d", usage.TotalObjects)
	}
}

// TestScanPlaceholderOnlyDir 仅含占位文件的目录贡献零字节零对象.
func TestScanPlaceholderOnlyDir(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{
		"":      {dirEntry("empty")},
		"empty": {fileEntry(".emptyFolderPlaceholder", "size", 0)},
	}}

	usage, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalBytes != 0 || usage.TotalObjects != 0 {
		t.Errorf("Expected {0, 0}, got {%d, %d}", usage.TotalBytes, usage.TotalObjects)
	}
}

// TestScanPagination 超过单页上限的目录会按 offset 继续翻页.
func TestScanPagination(t *testing.T) {
	var entries []s3.ObjectEntry
	for i := range 1500 {
		entries = append(entries, fileEntry(fmt.Sprintf("f%04d.jpg", i), "size", 2))
	}

	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{"": entries}}

	usage, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalObjects != 1500 {
		t.Errorf("Expected 1500 objects, got %d", usage.TotalObjects)
	}

	if usage.TotalBytes != 3000 {
		t.Errorf("Expected 3000 bytes, got %d", usage.TotalBytes)
	}
}

// TestScanDuplicateDirListings 同一目录被重复列出也只访问一次，扫描必定终止.
func TestScanDuplicateDirListings(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{
		"": {
			dirEntry("sub"),
			dirEntry("sub"),
			dirEntry("sub"),
		},
		"sub": {fileEntry("only.jpg", "size", 7)},
	}}

	usage, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalObjects != 1 || usage.TotalBytes != 7 {
		t.Errorf("Expected {7, 1}, got {%d, %d}", usage.TotalBytes, usage.TotalObjects)
	}
}

// TestScanSizeFieldVariants 不同存储版本的大小字段名都能识别；
// 负值与无法解析的值不计入字节但仍计入对象数.
func TestScanSizeFieldVariants(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{
		"": {
			fileEntry("a.jpg", "size", 100),
			fileEntry("b.jpg", "contentLength", 200),
			fileEntry("c.jpg", "content_length", "300"),
			fileEntry("d.jpg", "Content-Length", 400),
			fileEntry("e.jpg", "size", -5),
			fileEntry("f.jpg", "size", "not-a-number"),
		},
	}}

	usage, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if usage.TotalBytes != 1000 {
		t.Errorf("Expected 1000 bytes, got %d", usage.TotalBytes)
	}

	if usage.TotalObjects != 6 {
		t.Errorf("Expected 6 objects, got %d", usage.TotalObjects)
	}
}

// TestScanMonotonicSizing 多放一个大小为 S 的文件，总字节恰增 S、对象数恰增 1.
func TestScanMonotonicSizing(t *testing.T) {
	base := []s3.ObjectEntry{
		fileEntry("a.jpg", "size", 100),
		fileEntry("b.jpg", "size", 250),
	}

	before, err := newScanService(&fakeLister{dirs: map[string][]s3.ObjectEntry{"": base}}).
		ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	const extra = int64(650)

	after, err := newScanService(&fakeLister{dirs: map[string][]s3.ObjectEntry{
		"": append(base, fileEntry("c.jpg", "size", extra)),
	}}).ScanBucketUsage(context.Background(), "activation-photos")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if after.TotalBytes-before.TotalBytes != extra {
		t.Errorf("Expected bytes to grow by %d, got %d", extra, after.TotalBytes-before.TotalBytes)
	}

	if after.TotalObjects-before.TotalObjects != 1 {
		t.Errorf("Expected objects to grow by 1, got %d", after.TotalObjects-before.TotalObjects)
	}
}

// TestScanListErrorAborts 任一页列举失败即中止整个扫描，丢弃部分结果.
func TestScanListErrorAborts(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection reset")}

	_, err := newScanService(lister).ScanBucketUsage(context.Background(), "activation-photos")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if !errors.Is(err, service.ErrStorageList) {
		t.Errorf("Expected ErrStorageList, got %v", err)
	}
}

// TestScanCancellation 取消 context 后分页循环尽快退出.
func TestScanCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lister := &fakeLister{dirs: map[string][]s3.ObjectEntry{
		"": {fileEntry("a.jpg", "size", 1)},
	}}

	_, err := newScanService(lister).ScanBucketUsage(ctx, "activation-photos")
	if err == nil {
		t.Fatal("Expected cancellation error, got nil")
	}

	if !errors.Is(err, service.ErrStorageList) {
		t.Errorf("Expected ErrStorageList wrapping, got %v", err)
	}
}
