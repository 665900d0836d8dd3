// Package history defines the record of executed calculator operations and
// the [Provider] interface for storing it.
//
// Entries are append-only and are returned as independent copies, so a
// caller holding a slice from [Provider.All] cannot alter what the store
// holds. The default implementation lives in the inmemory subpackage.
package history
