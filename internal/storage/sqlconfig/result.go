package sqlconfig

import (
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

func requireAffected(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
