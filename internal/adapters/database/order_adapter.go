package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/postgres"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// OrderAdapter implements OrderRepository
type OrderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOrderAdapter creates a new order adapter
func NewOrderAdapter(client *postgres.Client) repositories.OrderRepository {
	return &OrderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new order inside one unit of work
func (a *OrderAdapter) Create(ctx context.Context, order *entities.Order) error {
	record := goqu.Record{
		"id":          order.ID,
		"name":        order.Name,
		"description": order.Description,
		"start_date":  order.StartDate,
		"end_date":    order.EndDate,
		"address":     order.Address,
		"price":       order.Price,
		"customer_id": order.CustomerID,
		"executor_id": order.ExecutorID,
	}

	query, args, err := a.db.Insert("orders").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateExecError(err,
				fmt.Sprintf("order with id %d already exists", order.ID),
				"failed to create order")
		}
		return nil
	})
}

// GetByID retrieves an order by id with raw customer/executor ids
func (a *OrderAdapter) GetByID(ctx context.Context, id int) (*entities.Order, error) {
	query, args, err := a.db.Select(
		"id", "name", "description", "start_date", "end_date",
		"address", "price", "customer_id", "executor_id",
	).From("orders").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	order := &entities.Order{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.Name,
		&order.Description,
		&order.StartDate,
		&order.EndDate,
		&order.Address,
		&order.Price,
		&order.CustomerID,
		&order.ExecutorID,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get order", err)
	}

	return order, nil
}

// Update replaces the mutable fields of an existing order
func (a *OrderAdapter) Update(ctx context.Context, order *entities.Order) error {
	record := goqu.Record{
		"name":        order.Name,
		"description": order.Description,
		"start_date":  order.StartDate,
		"end_date":    order.EndDate,
		"address":     order.Address,
		"price":       order.Price,
		"customer_id": order.CustomerID,
		"executor_id": order.ExecutorID,
	}

	query, args, err := a.db.Update("orders").
		Set(record).
		Where(goqu.Ex{"id": order.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to update order", err)
		}
		return requireRowAffected(result, fmt.Sprintf("order with id %d not found", order.ID))
	})
}

// Delete removes an order; offers referencing it are left untouched
func (a *OrderAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("orders").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to delete order", err)
		}
		return requireRowAffected(result, fmt.Sprintf("order with id %d not found", id))
	})
}

// List retrieves all orders in storage order
func (a *OrderAdapter) List(ctx context.Context) ([]*entities.Order, error) {
	query, args, err := a.db.Select(
		"id", "name", "description", "start_date", "end_date",
		"address", "price", "customer_id", "executor_id",
	).From("orders").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list orders", err)
	}
	defer rows.Close()

	var orders []*entities.Order
	for rows.Next() {
		order := &entities.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Name,
			&order.Description,
			&order.StartDate,
			&order.EndDate,
			&order.Address,
			&order.Price,
			&order.CustomerID,
			&order.ExecutorID,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read orders", err)
	}

	return orders, nil
}
