package storage

import (
	"errors"
	"fmt"
)

// DefaultDir is the root directory for the file storage.
var DefaultDir = "file-storage"

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// Key is the storage key of a training run artifact.
type Key struct {
	Run   string `json:"run"`
	Label string `json:"label"`
}

// Path returns the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s", k.Run, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
