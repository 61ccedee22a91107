package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/postgres"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// UserAdapter implements UserRepository
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new user inside one unit of work
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"age":        user.Age,
		"email":      user.Email,
		"role":       user.Role,
		"phone":      user.Phone,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateExecError(err,
				fmt.Sprintf("user with id %d already exists", user.ID),
				"failed to create user")
		}
		return nil
	})
}

// GetByID retrieves a user by id
func (a *UserAdapter) GetByID(ctx context.Context, id int) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "first_name", "last_name", "age", "email", "role", "phone",
	).From("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	user := &entities.User{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.Email,
		&user.Role,
		&user.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}

// ListByIDs retrieves the users matching ids; absent ids are skipped
func (a *UserAdapter) ListByIDs(ctx context.Context, ids []int) ([]*entities.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := a.db.Select(
		"id", "first_name", "last_name", "age", "email", "role", "phone",
	).From("users").
		Where(goqu.Ex{"id": ids}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryUsers(ctx, query, args)
}

// Update replaces the mutable fields of an existing user
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"age":        user.Age,
		"email":      user.Email,
		"role":       user.Role,
		"phone":      user.Phone,
	}

	query, args, err := a.db.Update("users").
		Set(record).
		Where(goqu.Ex{"id": user.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to update user", err)
		}
		return requireRowAffected(result, fmt.Sprintf("user with id %d not found", user.ID))
	})
}

// Delete removes a user; orders referencing it are left untouched
func (a *UserAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("users").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to delete user", err)
		}
		return requireRowAffected(result, fmt.Sprintf("user with id %d not found", id))
	})
}

// List retrieves all users in storage order
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "first_name", "last_name", "age", "email", "role", "phone",
	).From("users").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.queryUsers(ctx, query, args)
}

func (a *UserAdapter) queryUsers(ctx context.Context, query string, args []interface{}) ([]*entities.User, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user := &entities.User{}
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Age,
			&user.Email,
			&user.Role,
			&user.Phone,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read users", err)
	}

	return users, nil
}

// requireRowAffected turns a zero-row mutation into NOT_FOUND.
func requireRowAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	return nil
}
