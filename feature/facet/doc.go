// Package facet exposes facet reconciliation over HTTP.
//
// Module snapshots, default buckets and persisted settings live in object
// storage; the SDK table and module bindings live in the database. Inline
// reconciliation and field listing work without a database.
//
// Routes:
//
//	POST   /facet/reconcile
//	GET    /facet/fields/:platform
//	DELETE /facet/projects/:project
//	GET    /facet/projects/:project/plan[?skip_sdk=true]
//	POST   /facet/projects/:project/apply[?confirm=true&dry_run=true]
//	PUT    /facet/projects/:project/modules/:module
//	DELETE /facet/projects/:project/modules/:module
//	PUT    /facet/projects/:project/defaults/:platform
package facet
