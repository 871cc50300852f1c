package models

import (
	"facet-reconciler/core/args"
	"facet-reconciler/core/reconcile"
)

// ModuleSnapshot is the stored state of one module as exported by the build
// import.
type ModuleSnapshot struct {
	Name     string        `json:"name"`
	Platform args.Platform `json:"platform"`
	// Arguments is the module's current argument bucket.
	Arguments       *args.Bucket `json:"arguments"`
	ExternalSdk     bool         `json:"external_sdk"`
	PlatformManaged bool         `json:"platform_managed"`
	// Position orders modules inside the project.
	Position int `json:"position"`
}

// ToModule converts the snapshot into a reconcile module. Settings and SDK
// binding are filled by the caller.
func (s ModuleSnapshot) ToModule() reconcile.Module {
	current := s.Arguments
	if current == nil {
		current = args.NewBucket()
	}
	return reconcile.Module{
		Name:            s.Name,
		Platform:        s.Platform,
		Current:         current,
		ExternalSdk:     s.ExternalSdk,
		PlatformManaged: s.PlatformManaged,
	}
}
