package services

import (
	"testing"

	"inkwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB creates an in-memory SQLite database for testing.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	return db
}

func registerForm(name, email, password string) *models.RegisterForm {
	return &models.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	created, err := users.Register(registerForm("Ann", "ann@x.com", "password1"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "password1", created.Password, "password must be stored hashed")

	authed, err := users.Authenticate("ann@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.Register(registerForm("Ann", "ann@x.com", "password1"))
	require.NoError(t, err)

	_, err = users.Register(registerForm("Other Ann", "ann@x.com", "different1"))
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no new record on duplicate registration")
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.Authenticate("nobody@x.com", "whatever1")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestAuthenticateInvalidPassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.Register(registerForm("Ann", "ann@x.com", "password1"))
	require.NoError(t, err)

	_, err = users.Authenticate("ann@x.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestAuthenticateTrimsEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.Register(registerForm("Ann", "ann@x.com", "password1"))
	require.NoError(t, err)

	authed, err := users.Authenticate("  ann@x.com ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", authed.Email)
}

func TestGetByIDMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
