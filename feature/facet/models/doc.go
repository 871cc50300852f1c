// Package models defines the persisted and transported types of the facet
// feature: GORM models of the SDK registry, module snapshots kept in object
// storage, and HTTP request and report bodies.
package models
