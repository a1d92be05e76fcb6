package store

import (
	"fmt"
	"os"
)

// MustGetTempStore returns a Store backed by a temporary file, and a cleanup
// function that should be called when the Store is no longer used. It panics
// if the Store cannot be created.
func MustGetTempStore() (DBStore, func()) {
	st, err := NewTempStore()
	if err != nil {
		panic(fmt.Sprintf("Failed to create Store instance: %v", err))
	}
	return st, func() {
		if err := st.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close temp store:", err)
		}
	}
}
