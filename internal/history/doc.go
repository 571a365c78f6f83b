// Package history records processed caption files in SQLite so repeat batch
// runs can skip inputs that have not changed.
//
// Each row captures the input path, the sha256 of its contents, a fingerprint
// of the settings it was processed with and where the result was written. A
// later run that sees the same hash and fingerprint, with the output still on
// disk, has nothing new to do.
//
// The database is a cache rather than an archive. Schema changes bump the
// version in schema.go; users delete history.db to adopt the new schema.
package history
