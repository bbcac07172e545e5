package repositories

import (
	"errors"
	"fmt"

	"masterdesk/internal/core/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// translateError maps driver-level errors onto the domain taxonomy so that
// callers never depend on gorm or mysql error values.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateName
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return domain.ErrDuplicateName
	}
	return fmt.Errorf("store: %w", err)
}
