// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so that module
// snapshots, default buckets and persisted settings can be read and written
// against AWS S3 or a self-hosted MinIO, and mocked in tests (see
// core/storage/mocks).
//
// IsNotFound recognizes missing keys across MinIO error responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "facets")
package storage
