// Package store persists module snapshots, platform default buckets and
// reconciled settings as JSON objects in S3-compatible storage.
package store
