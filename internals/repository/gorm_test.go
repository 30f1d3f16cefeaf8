package repository

import (
	"testing"

	"auth-api/internals/initializers"
	"auth-api/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

func TestUsersInsertAndFind(t *testing.T) {
	users := NewUsers(newTestDB(t))

	user := &models.User{Email: "joe@gmail.com", Password: "hashed"}
	require.NoError(t, users.Insert(user))
	require.NotZero(t, user.ID)

	byEmail, err := users.FindByEmail("joe@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.False(t, byEmail.Admin)

	byID, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe@gmail.com", byID.Email)
}

func TestUsersFindMissing(t *testing.T) {
	users := NewUsers(newTestDB(t))

	_, err := users.FindByEmail("nobody@gmail.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersDuplicateEmail(t *testing.T) {
	users := NewUsers(newTestDB(t))

	require.NoError(t, users.Insert(&models.User{Email: "joe@gmail.com", Password: "hashed"}))

	err := users.Insert(&models.User{Email: "joe@gmail.com", Password: "other"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestBlacklistAddAndContains(t *testing.T) {
	blacklist := NewBlacklist(newTestDB(t))

	require.NoError(t, blacklist.Add("revoked-token"))

	found, err := blacklist.Contains("revoked-token")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = blacklist.Contains("some-other-token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBlacklistAddIsIdempotent(t *testing.T) {
	blacklist := NewBlacklist(newTestDB(t))

	require.NoError(t, blacklist.Add("revoked-token"))
	require.NoError(t, blacklist.Add("revoked-token"))

	found, err := blacklist.Contains("revoked-token")
	require.NoError(t, err)
	assert.True(t, found)
}
