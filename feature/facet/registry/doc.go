// Package registry stores the project's SDK table and the SDK binding of each
// module in MySQL or SQLite through GORM.
//
// Tables:
//
//   - sdks: every known SDK, ordered by position
//   - project_sdks: the default SDK of each project
//   - module_sdks: explicit or inherited binding per module
package registry
