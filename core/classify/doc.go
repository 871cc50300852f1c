// Package classify holds the per-platform field classification tables.
//
// Every compiler argument is, for a given platform, one of:
//   - Primary: exposed in the facet UI (language version, JVM target, ...)
//   - HiddenPrimary: managed through a dedicated channel (plugin options and
//     classpaths, the multiplatform flag, friend paths)
//   - Ignored: owned by the SDK resolver (noJdk, jdkHome on the JVM)
//   - Additional: everything else; persisted only when it deviates from the
//     platform default.
//
// The default tables are built once at package initialization and never
// mutated, so lookups need no locking.
package classify
