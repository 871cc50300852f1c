package models

import (
	"facet-reconciler/core/args"
	"facet-reconciler/core/classify"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
)

// ReconcileRequest is the body of an inline reconciliation.
type ReconcileRequest struct {
	Module          string       `json:"module"`
	Platform        string       `json:"platform"`
	Current         *args.Bucket `json:"current"`
	Defaults        *args.Bucket `json:"defaults"`
	PluginOptions   []string     `json:"plugin_options"`
	ExternalSdk     bool         `json:"external_sdk"`
	PlatformManaged bool         `json:"platform_managed"`
	// Sdk is optional; SDK resolution is skipped when absent.
	Sdk *reconcile.SdkEnvironment `json:"sdk,omitempty"`
	// Siblings are the other modules of the project with their resolved
	// SDKs, in project order. Only used when Sdk is set.
	Siblings []sdk.Sibling `json:"siblings,omitempty"`
}

// FieldInfo describes one field of a platform schema.
type FieldInfo struct {
	ID    args.FieldID   `json:"id"`
	Kind  string         `json:"kind"`
	Path  bool           `json:"path"`
	Class classify.Class `json:"class"`
}

// FieldsReport lists the classified schema of a platform.
type FieldsReport struct {
	Platform      args.Platform `json:"platform"`
	SchemaVersion string        `json:"schema_version"`
	Fields        []FieldInfo   `json:"fields"`
}

// ApplyReport is returned after applying a plan.
type ApplyReport struct {
	Plan     *reconcile.ReconcilePlan `json:"plan"`
	Executed int                      `json:"executed"`
	DryRun   bool                     `json:"dry_run"`
}

// DeleteReport is returned after deleting a project.
type DeleteReport struct {
	Project string `json:"project"`
	Objects int    `json:"objects"`
}
