package sdk

import "facet-reconciler/core/args"

// Kind tags the family of an SDK.
type Kind string

const (
	// KindJava is a Java-compatible SDK (a JDK).
	KindJava Kind = "java"
	// KindKotlin is the Kotlin SDK used by non-JVM modules.
	KindKotlin Kind = "kotlin"
)

// Candidate is one SDK known to the project's SDK table.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	HomePath string `json:"home_path"`
}

// Same reports whether two candidates refer to the same SDK. Nil candidates
// are only the same as each other.
func Same(a, b *Candidate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

// Module describes the module being resolved.
type Module struct {
	Name string `json:"name"`
	// ExternalSdk marks modules whose SDK is configured by an external build
	// system. It can be overridden by an explicit jdkHome on the JVM.
	ExternalSdk bool `json:"external_sdk"`
	// PlatformManaged marks modules whose SDK is set up by a platform plugin
	// (e.g. Android). Such modules are never touched.
	PlatformManaged bool `json:"platform_managed"`
}

// Sibling is another module of the project with its currently resolved SDK.
type Sibling struct {
	Name string     `json:"name"`
	Sdk  *Candidate `json:"sdk,omitempty"`
}

// Request bundles the inputs of one resolution.
type Request struct {
	Module     Module
	Platform   args.Platform
	Bucket     *args.Bucket
	ProjectSdk *Candidate
	Available  []Candidate
	Siblings   []Sibling
}

// Action is what the caller must do with the module's SDK setting.
type Action string

const (
	// ActionSkip leaves the module's SDK untouched.
	ActionSkip Action = "skip"
	// ActionAssign sets Decision.Sdk explicitly on the module.
	ActionAssign Action = "assign"
	// ActionInherit marks the module as inheriting the project SDK.
	ActionInherit Action = "inherit"
)

// Decision is the outcome of a resolution.
type Decision struct {
	Action Action `json:"action"`
	// Sdk is the selected candidate. It is set for ActionAssign, and for
	// ActionInherit when the selected candidate is the project SDK.
	Sdk *Candidate `json:"sdk,omitempty"`
	// Strategy names the strategy that produced the candidate, if any.
	Strategy string `json:"strategy,omitempty"`
}
