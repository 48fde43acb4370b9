package postgres_test

import (
	"context"
	"testing"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email"}).
			AddRow(1, "Name", "test@test.com")

		mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "test@test.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email"}))

		user, err := repo.GetByID(ctx, 2)
		assert.Nil(t, user)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Absent email maps to NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@test.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email"}))

		user, err := repo.GetByEmail(ctx, "nobody@test.com")
		assert.Nil(t, user)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{Name: "New User", Email: "new@test.com"}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Name, u.Email).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
	})
}
