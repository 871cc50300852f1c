package checks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"facet-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrBucketMissing is returned by CheckStructure when the bucket is absent.
var ErrBucketMissing = errors.New("bucket does not exist")

// ProjectFolders lists the folders every project needs under the prefix.
var ProjectFolders = []string{"modules", "defaults", "settings"}

// CheckStructure returns the folders missing from the bucket: the prefix
// itself, then the project folders of every project found under it.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	root := folderPath(prefix)
	if root != "" && !hasObjects(ctx, client, bucket, root) {
		return []string{strings.TrimSuffix(root, "/")}, nil
	}

	projects, err := listProjects(ctx, client, bucket, root)
	if err != nil {
		return nil, err
	}

	missing := []string{}
	for _, project := range projects {
		for _, folder := range ProjectFolders {
			p := project + folder
			if !hasObjects(ctx, client, bucket, p+"/") {
				missing = append(missing, p)
			}
		}
	}
	return missing, nil
}

// CreateBucket creates the snapshot bucket.
func CreateBucket(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}

// FixStructure creates folder markers for the missing folders.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

func hasObjects(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err == nil {
			return true
		}
	}
	return false
}

// listProjects returns the project folders directly below root, each with a
// trailing slash.
func listProjects(ctx context.Context, client storage.Client, bucket, root string) ([]string, error) {
	var projects []string
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: root}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", obj.Err)
		}
		if obj.Key == root || !strings.HasSuffix(obj.Key, "/") {
			continue
		}
		projects = append(projects, obj.Key)
	}
	sort.Strings(projects)
	return projects, nil
}
