// Package adapter connects the reconcile engine to the facet storage: module
// snapshots, default buckets and settings in object storage, SDK table and
// bindings in the database.
package adapter
