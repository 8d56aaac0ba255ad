package rest

import (
	"testing"

	"github.com/kekechi03/ero/internal/db"
	deps "github.com/kekechi03/ero/internal/debs"
	"github.com/pashagolub/pgxmock/v4"
)

// newMockAPI wires an API onto a pgxmock pool so repo methods run
// against scripted expectations instead of Postgres.
func newMockAPI(t *testing.T) (*API, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool returned error %v", err)
	}
	t.Cleanup(mock.Close)

	api := &API{
		DB:   mock,
		Deps: &deps.Dependencies{DB: db.NewWithPool(mock)},
	}
	return api, mock
}
