// Package inmemory provides a slice-backed [history.Provider].
// Nothing survives the process; [New] returns an empty store.
package inmemory
