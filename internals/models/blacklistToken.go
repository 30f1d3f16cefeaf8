package models

import "gorm.io/gorm"

// BlacklistToken records a revoked auth token. Rows are written on logout and
// never mutated or deleted; CreatedAt is the blacklisting timestamp. The
// unique index makes duplicate revocations a storage-level no-op.
type BlacklistToken struct {
	gorm.Model
	Token string `gorm:"uniqueIndex"`
}
