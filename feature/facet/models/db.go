package models

import "facet-reconciler/core/sdk"

// Sdk is one row of the SDK table.
type Sdk struct {
	ID       string `gorm:"column:id;primaryKey;type:varchar(128)" json:"id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Kind     string `gorm:"column:kind;type:varchar(16);not null;index" json:"kind"`
	HomePath string `gorm:"column:home_path;type:varchar(1024)" json:"home_path"`
	// Position orders candidates; the resolver takes the first match.
	Position int `gorm:"column:position;not null" json:"position"`
}

// TableName overrides the table name.
func (Sdk) TableName() string {
	return "sdks"
}

// ToCandidate converts the row into a resolver candidate.
func (s Sdk) ToCandidate() sdk.Candidate {
	return sdk.Candidate{
		ID:       s.ID,
		Name:     s.Name,
		Kind:     sdk.Kind(s.Kind),
		HomePath: s.HomePath,
	}
}

// ProjectSdk stores the default SDK of a project.
type ProjectSdk struct {
	Project string `gorm:"column:project;primaryKey;type:varchar(128)" json:"project"`
	SdkID   string `gorm:"column:sdk_id;type:varchar(128);not null" json:"sdk_id"`
}

// TableName overrides the table name.
func (ProjectSdk) TableName() string {
	return "project_sdks"
}

// ModuleSdk stores the SDK binding of a module.
type ModuleSdk struct {
	Project string `gorm:"column:project;primaryKey;type:varchar(128)" json:"project"`
	Module  string `gorm:"column:module;primaryKey;type:varchar(255)" json:"module"`
	// SdkID is empty when the module inherits the project SDK.
	SdkID   string `gorm:"column:sdk_id;type:varchar(128)" json:"sdk_id"`
	Inherit bool   `gorm:"column:inherit;not null" json:"inherit"`
}

// TableName overrides the table name.
func (ModuleSdk) TableName() string {
	return "module_sdks"
}

// Tables lists every model of the SDK registry, in migration order.
func Tables() []any {
	return []any{&Sdk{}, &ProjectSdk{}, &ModuleSdk{}}
}
