package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/storage"
	"facet-reconciler/feature/facet/models"

	"github.com/minio/minio-go/v7"
)

const (
	modulesDir  = "modules"
	defaultsDir = "defaults"
	settingsDir = "settings"
	jsonExt     = ".json"
)

// SnapshotStore keeps module snapshots, default buckets and persisted
// settings as JSON objects:
//
//	<prefix>/<project>/modules/<module>.json
//	<prefix>/<project>/defaults/<platform>.json
//	<prefix>/<project>/settings/<module>.json
type SnapshotStore struct {
	client storage.Client
	bucket string
	prefix string
}

// New creates a store rooted at prefix inside bucket.
func New(client storage.Client, bucket, prefix string) *SnapshotStore {
	return &SnapshotStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Bucket returns the storage bucket name.
func (s *SnapshotStore) Bucket() string {
	return s.bucket
}

// Prefix returns the object prefix.
func (s *SnapshotStore) Prefix() string {
	return s.prefix
}

func (s *SnapshotStore) key(parts ...string) string {
	return path.Join(append([]string{s.prefix}, parts...)...)
}

// ModuleKey returns the object name of a module snapshot.
func (s *SnapshotStore) ModuleKey(project, module string) string {
	return s.key(project, modulesDir, module+jsonExt)
}

// DefaultsKey returns the object name of a platform default bucket.
func (s *SnapshotStore) DefaultsKey(project string, platform args.Platform) string {
	return s.key(project, defaultsDir, string(platform)+jsonExt)
}

// SettingsKey returns the object name of persisted module settings.
func (s *SnapshotStore) SettingsKey(project, module string) string {
	return s.key(project, settingsDir, module+jsonExt)
}

// ListModules reads every module snapshot of a project, ordered by position
// and then by name.
func (s *SnapshotStore) ListModules(ctx context.Context, project string) ([]models.ModuleSnapshot, error) {
	prefix := s.key(project, modulesDir) + "/"
	var snapshots []models.ModuleSnapshot

	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list modules of %s: %w", project, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, jsonExt) {
			continue
		}
		var snap models.ModuleSnapshot
		if err := s.readJSON(ctx, obj.Key, &snap); err != nil {
			return nil, err
		}
		if snap.Name == "" {
			snap.Name = strings.TrimSuffix(path.Base(obj.Key), jsonExt)
		}
		snapshots = append(snapshots, snap)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].Position != snapshots[j].Position {
			return snapshots[i].Position < snapshots[j].Position
		}
		return snapshots[i].Name < snapshots[j].Name
	})
	return snapshots, nil
}

// PutModule writes a module snapshot.
func (s *SnapshotStore) PutModule(ctx context.Context, project string, snap models.ModuleSnapshot) error {
	return s.writeJSON(ctx, s.ModuleKey(project, snap.Name), snap)
}

// GetDefaults reads the default bucket of a platform. A missing object is an
// empty bucket.
func (s *SnapshotStore) GetDefaults(ctx context.Context, project string, platform args.Platform) (*args.Bucket, error) {
	b := args.NewBucket()
	err := s.readJSON(ctx, s.DefaultsKey(project, platform), b)
	if storage.IsNotFound(err) {
		return args.NewBucket(), nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// PutDefaults writes the default bucket of a platform.
func (s *SnapshotStore) PutDefaults(ctx context.Context, project string, platform args.Platform, defaults *args.Bucket) error {
	return s.writeJSON(ctx, s.DefaultsKey(project, platform), defaults)
}

// GetSettings reads the persisted settings of a module. Missing settings are
// empty.
func (s *SnapshotStore) GetSettings(ctx context.Context, project, module string) (reconcile.Settings, error) {
	var settings reconcile.Settings
	err := s.readJSON(ctx, s.SettingsKey(project, module), &settings)
	if storage.IsNotFound(err) {
		return reconcile.Settings{}, nil
	}
	return settings, err
}

// PutSettings writes the settings of a module.
func (s *SnapshotStore) PutSettings(ctx context.Context, project, module string, settings reconcile.Settings) error {
	return s.writeJSON(ctx, s.SettingsKey(project, module), settings)
}

// DeleteModule removes the snapshot and persisted settings of a module.
// Missing objects are not an error.
func (s *SnapshotStore) DeleteModule(ctx context.Context, project, module string) error {
	for _, key := range []string{s.ModuleKey(project, module), s.SettingsKey(project, module)} {
		err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
		if err != nil && !storage.IsNotFound(err) {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

// DeleteProject removes every object of a project and returns how many
// objects were listed for removal.
func (s *SnapshotStore) DeleteProject(ctx context.Context, project string) (int, error) {
	listed := make(chan minio.ObjectInfo)
	done := make(chan struct{})
	var (
		count   int
		listErr error
	)
	go func() {
		defer close(done)
		defer close(listed)
		opts := minio.ListObjectsOptions{Prefix: s.key(project) + "/", Recursive: true}
		for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
			if obj.Err != nil {
				listErr = obj.Err
				return
			}
			select {
			case listed <- obj:
				count++
			case <-ctx.Done():
				listErr = ctx.Err()
				return
			}
		}
	}()

	var failed []string
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, listed, minio.RemoveObjectsOptions{}) {
		failed = append(failed, fmt.Sprintf("%s: %v", rerr.ObjectName, rerr.Err))
	}
	<-done

	if listErr != nil {
		return count, fmt.Errorf("failed to list project %s: %w", project, listErr)
	}
	if len(failed) > 0 {
		return count, fmt.Errorf("failed to remove %d objects: %s", len(failed), strings.Join(failed, "; "))
	}
	return count, nil
}

func (s *SnapshotStore) readJSON(ctx context.Context, key string, v any) error {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%s: %w", key, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%s: %w", key, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
