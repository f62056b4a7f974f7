package postgres

import (
	"database/sql"
	"errors"
)

const dateLayout = "2006-01-02"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
