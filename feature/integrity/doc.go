// Package integrity provides health checks of the facet infrastructure.
//
// # Checks Provided
//
//   - Structure: the snapshot bucket exists, the project prefix exists and
//     every project has its modules, defaults and settings folders.
//   - Server: the SDK registry tables match the GORM models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs the schema check.
package integrity
