// Package store keeps a catalog of named, immutable graph snapshots in a
// single bbolt file, indexed with bolthold and encoded with msgpack.
//
// Each Put replaces the whole snapshot stored under a name; there are no
// partial updates. Labels are ints, matching the lvmatch CLI.
//
// What:
//
//   - Open(path, WithTimeout(d))   open or create the catalog file
//   - Put / Get / List / Delete    whole-snapshot operations keyed by name
//
// Errors:
//
//   - ErrEmptyName   Put with an empty name
//   - ErrNotFound    Get/Delete of an unknown name
package store
