package ops

import (
	"database/sql"
	"strings"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
)

// BlockDeleteInput contains parameters for the BlockDelete operation.
type BlockDeleteInput struct {
	ID string
}

// BlockDeleteOutput contains the result of the BlockDelete operation.
type BlockDeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// BlockDelete removes a user block by ID.
func BlockDelete(database *sql.DB, input BlockDeleteInput) (*BlockDeleteOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if err := db.DeleteBlock(database, id); err != nil {
		return nil, err
	}
	return &BlockDeleteOutput{ID: id, Deleted: true}, nil
}
