package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRepoTest(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewUserRepo(db), mock
}

var userRowColumns = []string{"id", "username", "email", "first_name", "last_name", "password_hash", "is_admin", "created_at", "updated_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := setupUserRepoTest(t)
	ctx := t.Context()

	userSQL := regexp.QuoteMeta("INSERT INTO users (id, username, email, first_name, last_name, password_hash, is_admin, created_at, updated_at)")
	clientSQL := regexp.QuoteMeta("INSERT INTO clients (id, user_id, phone, address, created_at)")

	newUser := func() (*models.User, *models.Client) {
		return &models.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Password: "hash"},
			&models.Client{ID: uuid.New(), Phone: "555-0100", Address: "12 Analytical St"}
	}

	t.Run("Success - User And Client Committed", func(t *testing.T) {
		// Arrange
		user, client := newUser()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(userSQL).
			WithArgs(user.ID, "ada", "ada@example.com", "Ada", "Lovelace", "hash", false).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectQuery(clientSQL).
			WithArgs(client.ID, user.ID, "555-0100", "12 Analytical St").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectCommit()

		// Act
		err := repo.CreateUser(ctx, user, client)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, user.ID, client.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Duplicate Username", func(t *testing.T) {
		// Arrange
		user, client := newUser()

		mock.ExpectBegin()
		mock.ExpectQuery(userSQL).WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})
		mock.ExpectRollback()

		// Act
		err := repo.CreateUser(ctx, user, client)

		// Assert
		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Client Insert Rolls Back User", func(t *testing.T) {
		// Arrange
		user, client := newUser()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(userSQL).WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectQuery(clientSQL).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateUser(ctx, user, client)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert client")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	repo, mock := setupUserRepoTest(t)
	ctx := t.Context()
	id := uuid.New()
	now := time.Now()

	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(userRowColumns).AddRow(id, "ada", "ada@example.com", "Ada", "Lovelace", "hash", true, now, now)
	}

	t.Run("By Username", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).WithArgs("ada").WillReturnRows(row())

		user, err := repo.GetUserByUsername(ctx, "ada")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "hash", user.Password)
		assert.True(t, user.IsAdmin)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By Email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).WithArgs("ada@example.com").WillReturnRows(row())

		user, err := repo.GetUserByEmail(ctx, "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, "ada", user.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By ID - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs(id).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, id)

		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By ID - Database Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).WithArgs(id).WillReturnError(errors.New("conn refused"))

		user, err := repo.GetUserByID(ctx, id)

		require.Error(t, err)
		assert.NotErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewClientRepo(db)
	ctx := t.Context()
	userID := uuid.New()
	clientID := uuid.New()
	now := time.Now()

	insertSQL := regexp.QuoteMeta("ON CONFLICT (user_id) DO NOTHING")
	selectSQL := regexp.QuoteMeta("SELECT id, user_id, phone, address, created_at FROM clients WHERE user_id = $1")
	columns := []string{"id", "user_id", "phone", "address", "created_at"}

	t.Run("GetOrCreate - Created", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).
			WithArgs(sqlmock.AnyArg(), userID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(clientID, userID, "", "", now))

		client, created, err := repo.GetOrCreateClient(ctx, userID)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, clientID, client.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrCreate - Existing", func(t *testing.T) {
		mock.ExpectQuery(insertSQL).WithArgs(sqlmock.AnyArg(), userID).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(selectSQL).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(clientID, userID, "555-0100", "addr", now))

		client, created, err := repo.GetOrCreateClient(ctx, userID)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "555-0100", client.Phone)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetClientByUserID - Not Found", func(t *testing.T) {
		mock.ExpectQuery(selectSQL).WithArgs(userID).WillReturnError(sql.ErrNoRows)

		client, err := repo.GetClientByUserID(ctx, userID)

		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, client)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
