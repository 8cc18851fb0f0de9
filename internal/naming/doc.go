// Package naming resolves collisions between new names and names that are
// already taken by appending or incrementing a trailing "(vN)" marker.
//
// A name is split by [ParseName] into a base name and an optional version.
// [AssignNextVersion] picks the first free "Base (vN)" for a colliding name,
// and [ProcessNames] runs a whole batch where every resolved name becomes
// taken before the next one is considered.
//
// Comparison is case-insensitive throughout: "Report" and "REPORT" collide.
package naming
