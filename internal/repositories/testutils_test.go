package repositories_test

import (
	"testing"

	"github.com/mysterydesk/gumshoe/internal/db"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *db.Database {
	dbs, err := db.NewDatabase(":memory:")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if closeErr := dbs.Close(); closeErr != nil {
			t.Fatal(closeErr)
		}
	})

	return dbs
}
