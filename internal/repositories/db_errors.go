package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntry reports whether err is a MySQL/MariaDB unique key
// violation, so races on upsert-style inserts can map to domain errors
// instead of a generic 500.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
