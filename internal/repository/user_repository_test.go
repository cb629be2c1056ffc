package repository

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	apperrors "trackbudget/internal/errors"
	"trackbudget/internal/model"
)

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'taken@example.com' for key 'email'"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.User{Email: "taken@example.com", PasswordHash: "x"})

	// The signup pre-check can lose a race; the unique index is the
	// real guard and must still surface as the conflict error.
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'taken@example.com' for key 'email'"})
	mock.ExpectRollback()

	err := repo.UpdateProfile(context.Background(), 1, "Name", "taken@example.com", "")

	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
