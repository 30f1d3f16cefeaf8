package initializers

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectToDb opens the sqlite database at the given DSN.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the blacklist repository relies on.
func ConnectToDb(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database at %s: %w", dsn, err)
	}
	return db, nil
}
