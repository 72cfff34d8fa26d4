package ops

import (
	"database/sql"
	"testing"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/db"
)

func testEnv(t *testing.T) (*sql.DB, *config.Config) {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database, config.DefaultConfig()
}

func mustBlockAdd(t *testing.T, database *sql.DB, input BlockAddInput) *BlockAddOutput {
	t.Helper()
	out, err := BlockAdd(database, input)
	if err != nil {
		t.Fatalf("BlockAdd(%+v) failed: %v", input, err)
	}
	return out
}
