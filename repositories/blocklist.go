//go:generate go run go.uber.org/mock/mockgen -source=blocklist.go -destination=../mocks/mock_blocklist_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const blocklistPrefix = "blacklist:"

type IBlocklistRepository interface {
	Add(words ...string) error
	All() ([]string, error)
}

// BlocklistRepository stores blocked words as keys only, values stay empty.
type BlocklistRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBlocklistRepository(db *badger.DB, log *slog.Logger) BlocklistRepository {
	return BlocklistRepository{db: db, log: log}
}

func (b BlocklistRepository) Add(words ...string) error {
	wb := b.db.NewWriteBatch()
	defer wb.Cancel()
	added := 0
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if err := wb.Set([]byte(blocklistPrefix+word), nil); err != nil {
			return err
		}
		added++
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	b.log.Debug("Blocked words stored", "count", added)
	return nil
}

// All returns every blocked word in key order.
func (b BlocklistRepository) All() ([]string, error) {
	var words []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // words live in the keys
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(blocklistPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			words = append(words, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return words, err
}
