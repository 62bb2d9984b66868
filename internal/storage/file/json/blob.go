package json

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/linear-regression/internal/storage"
)

// BlobStorage stores every key as a json file under <path>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
}

// BlobShard creates json file storage shards for the given table under the root path.
func BlobShard(path, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(path, table, shard), nil
	}
}

// NewJsonBlob creates a new json file storage.
// table has the same schema
// shard is a logical split
func NewJsonBlob(path, table, shard string) *BlobStorage {
	if path == "" {
		path = storage.DefaultDir
	}
	return &BlobStorage{
		path:  path,
		table: table,
		shard: shard,
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.table, s.shard)
	err := Save(p, k.Path(), value)
	if err == nil {
		log.Debug().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.table, s.shard), k.Path(), value)
}

// File returns the file the given key is stored in.
func (s BlobStorage) File(k storage.Key) string {
	return filepath.Join(s.path, s.table, s.shard, k.Path()+".json")
}
