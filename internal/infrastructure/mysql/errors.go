package mysql

import (
	"errors"

	driver "github.com/go-sql-driver/mysql"
)

const (
	errDuplicateEntry  = 1062
	errNoReferencedRow = 1452
)

// IsDuplicateEntry reports whether err is a unique-key violation.
func IsDuplicateEntry(err error) bool {
	return hasErrorNumber(err, errDuplicateEntry)
}

// IsForeignKeyViolation reports whether err is an insert that references a
// missing parent row.
func IsForeignKeyViolation(err error) bool {
	return hasErrorNumber(err, errNoReferencedRow)
}

func hasErrorNumber(err error, number uint16) bool {
	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == number
	}
	return false
}
