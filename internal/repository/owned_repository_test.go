package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"trackbudget/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestOwnedRepository_ListByUser_FiltersByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOwned[model.Expense](db, "date DESC")

	mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE user_id = \\? ORDER BY date DESC").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "date"}).
			AddRow(1, 7, "Rent", "1200", "2025-01-01"))

	rows, err := repo.ListByUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Rent", rows[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedRepository_Update_OtherUsersRowIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOwned[model.Expense](db, "")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses` SET .+ WHERE id = \\? AND user_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rec := &model.Expense{Name: "Rent", Amount: decimal.NewFromInt(1200), Date: "2025-01-01"}
	err := repo.Update(context.Background(), 99, 1, rec)

	// Zero matched rows is success, not an error: the caller simply
	// does not own row 1.
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedRepository_Delete_OtherUsersRowIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOwned[model.Expense](db, "")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses` WHERE id = \\? AND user_id = \\?").
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 99, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsRepository_AddFunds_AdditiveUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSavingsRepository(db)

	// The increment is expressed relative to the stored value, never as
	// a read-modify-write, so two deltas applied back to back (or from
	// concurrent requests) both land.
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `savings_buckets` SET `current_amount`=current_amount \\+ \\?").
			WithArgs(decimal.NewFromInt(50), sqlmock.AnyArg(), 5, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	assert.NoError(t, repo.AddFunds(context.Background(), 7, 5, decimal.NewFromInt(50)))
	assert.NoError(t, repo.AddFunds(context.Background(), 7, 5, decimal.NewFromInt(50)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepository_SetPaid_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bills` SET `is_paid`=\\?").
		WithArgs(true, sqlmock.AnyArg(), 3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.SetPaid(context.Background(), 7, 3, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
