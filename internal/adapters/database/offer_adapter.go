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

// OfferAdapter implements OfferRepository
type OfferAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOfferAdapter creates a new offer adapter
func NewOfferAdapter(client *postgres.Client) repositories.OfferRepository {
	return &OfferAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create persists a new offer inside one unit of work
func (a *OfferAdapter) Create(ctx context.Context, offer *entities.Offer) error {
	record := goqu.Record{
		"id":          offer.ID,
		"order_id":    offer.OrderID,
		"executor_id": offer.ExecutorID,
	}

	query, args, err := a.db.Insert("offers").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateExecError(err,
				fmt.Sprintf("offer with id %d already exists", offer.ID),
				"failed to create offer")
		}
		return nil
	})
}

// GetByID retrieves an offer by id
func (a *OfferAdapter) GetByID(ctx context.Context, id int) (*entities.Offer, error) {
	query, args, err := a.db.Select("id", "order_id", "executor_id").
		From("offers").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	offer := &entities.Offer{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&offer.ID,
		&offer.OrderID,
		&offer.ExecutorID,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("offer with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get offer", err)
	}

	return offer, nil
}

// Update replaces the mutable fields of an existing offer
func (a *OfferAdapter) Update(ctx context.Context, offer *entities.Offer) error {
	record := goqu.Record{
		"order_id":    offer.OrderID,
		"executor_id": offer.ExecutorID,
	}

	query, args, err := a.db.Update("offers").
		Set(record).
		Where(goqu.Ex{"id": offer.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to update offer", err)
		}
		return requireRowAffected(result, fmt.Sprintf("offer with id %d not found", offer.ID))
	})
}

// Delete removes an offer
func (a *OfferAdapter) Delete(ctx context.Context, id int) error {
	query, args, err := a.db.Delete("offers").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return a.client.WithinTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.NewInternalError("failed to delete offer", err)
		}
		return requireRowAffected(result, fmt.Sprintf("offer with id %d not found", id))
	})
}

// List retrieves all offers in storage order
func (a *OfferAdapter) List(ctx context.Context) ([]*entities.Offer, error) {
	query, args, err := a.db.Select("id", "order_id", "executor_id").
		From("offers").
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list offers", err)
	}
	defer rows.Close()

	var offers []*entities.Offer
	for rows.Next() {
		offer := &entities.Offer{}
		if err := rows.Scan(&offer.ID, &offer.OrderID, &offer.ExecutorID); err != nil {
			return nil, apperrors.NewInternalError("failed to scan offer", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read offers", err)
	}

	return offers, nil
}
