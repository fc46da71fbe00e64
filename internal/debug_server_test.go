package internal

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"marketchat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDebugServer_ListsPrefixedKeys(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	req.NoError(repositories.NewBlocklistRepository(db, log).Add("scam", "telegram"))

	srv := NewDebugServer(log, db, 0, "/inspect", nil, func() map[string]any {
		return map[string]any{"censored_words": 2}
	})

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/inspect?prefix=blacklist:", nil))
	req.Equal(200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Contains(string(body), "blacklist:scam")
	req.Contains(string(body), "blacklist:telegram")
	req.Contains(string(body), "censored_words: 2")
}

func TestDebugServer_Limit(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	req.NoError(repositories.NewBlocklistRepository(db, log).Add("scam", "telegram"))
	srv := NewDebugServer(log, db, 0, "/inspect", repositories.InspectRecord, nil)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/inspect?prefix=blacklist:&limit=1", nil))
	req.Equal(200, rec.Code)

	body := rec.Body.String()
	req.Contains(body, "blacklist:scam")
	req.NotContains(body, "blacklist:telegram")
	req.Contains(body, "Only the first 1 entries are shown.")
}
