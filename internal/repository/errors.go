package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCollection is returned for a collection name other than
	// clients, tasks or users.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrStorageCorrupt matches every *StorageCorruptError.
	ErrStorageCorrupt = errors.New("stored data is corrupt")

	// ErrBlobNotFound is returned by BlobStore.Get for a missing key.
	ErrBlobNotFound = errors.New("blob not found")
)

// StorageCorruptError reports a stored collection that is not valid JSON
// for its type. The stored value is left untouched.
type StorageCorruptError struct {
	Collection Collection
	Err        error
}

func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("collection %q is corrupt: %v", string(e.Collection), e.Err)
}

func (e *StorageCorruptError) Unwrap() error { return e.Err }

func (e *StorageCorruptError) Is(target error) bool { return target == ErrStorageCorrupt }
