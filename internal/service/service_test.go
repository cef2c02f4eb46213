package service

import (
	"testing"

	"duet/internal/models"
	"duet/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDeps bundles real repositories over an in-memory SQLite database.
type testDeps struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
}

func setupDeps(t *testing.T) *testDeps {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Match{}, &models.Message{}))

	return &testDeps{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		matchRepo:   repository.NewMatchRepository(db),
		messageRepo: repository.NewMessageRepository(db),
	}
}

func (d *testDeps) createUser(t *testing.T, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: name, Password: "hashed", Role: "Bassist"}
	require.NoError(t, d.db.Create(user).Error)
	return user
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	return appErr.Code
}
