package handlers_test

import (
	"context"
	"fmt"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// In-memory repositories mirroring the persistence contract: duplicate id
// on create conflicts, missing id fails not-found, List keeps insertion
// order, and no operation cascades.

type memUserRepo struct {
	users    map[int]*entities.User
	inserted []int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int]*entities.User{}}
}

func (m *memUserRepo) Create(_ context.Context, user *entities.User) error {
	if _, ok := m.users[user.ID]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("user with id %d already exists", user.ID))
	}
	clone := *user
	m.users[user.ID] = &clone
	m.inserted = append(m.inserted, user.ID)
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	clone := *user
	return &clone, nil
}

func (m *memUserRepo) ListByIDs(_ context.Context, ids []int) ([]*entities.User, error) {
	var found []*entities.User
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			clone := *user
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (m *memUserRepo) Update(_ context.Context, user *entities.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", user.ID))
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	delete(m.users, id)
	for i, existing := range m.inserted {
		if existing == id {
			m.inserted = append(m.inserted[:i], m.inserted[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memUserRepo) List(_ context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(m.inserted))
	for _, id := range m.inserted {
		clone := *m.users[id]
		users = append(users, &clone)
	}
	return users, nil
}

type memOrderRepo struct {
	orders   map[int]*entities.Order
	inserted []int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[int]*entities.Order{}}
}

func (m *memOrderRepo) Create(_ context.Context, order *entities.Order) error {
	if _, ok := m.orders[order.ID]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("order with id %d already exists", order.ID))
	}
	clone := *order
	m.orders[order.ID] = &clone
	m.inserted = append(m.inserted, order.ID)
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id int) (*entities.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	clone := *order
	return &clone, nil
}

func (m *memOrderRepo) Update(_ context.Context, order *entities.Order) error {
	if _, ok := m.orders[order.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", order.ID))
	}
	clone := *order
	m.orders[order.ID] = &clone
	return nil
}

func (m *memOrderRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.orders[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	delete(m.orders, id)
	for i, existing := range m.inserted {
		if existing == id {
			m.inserted = append(m.inserted[:i], m.inserted[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memOrderRepo) List(_ context.Context) ([]*entities.Order, error) {
	orders := make([]*entities.Order, 0, len(m.inserted))
	for _, id := range m.inserted {
		clone := *m.orders[id]
		orders = append(orders, &clone)
	}
	return orders, nil
}

type memOfferRepo struct {
	offers   map[int]*entities.Offer
	inserted []int
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{offers: map[int]*entities.Offer{}}
}

func (m *memOfferRepo) Create(_ context.Context, offer *entities.Offer) error {
	if _, ok := m.offers[offer.ID]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("offer with id %d already exists", offer.ID))
	}
	clone := *offer
	m.offers[offer.ID] = &clone
	m.inserted = append(m.inserted, offer.ID)
	return nil
}

func (m *memOfferRepo) GetByID(_ context.Context, id int) (*entities.Offer, error) {
	offer, ok := m.offers[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("offer with id %d not found", id))
	}
	clone := *offer
	return &clone, nil
}

func (m *memOfferRepo) Update(_ context.Context, offer *entities.Offer) error {
	if _, ok := m.offers[offer.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("offer with id %d not found", offer.ID))
	}
	clone := *offer
	m.offers[offer.ID] = &clone
	return nil
}

func (m *memOfferRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.offers[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("offer with id %d not found", id))
	}
	delete(m.offers, id)
	for i, existing := range m.inserted {
		if existing == id {
			m.inserted = append(m.inserted[:i], m.inserted[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memOfferRepo) List(_ context.Context) ([]*entities.Offer, error) {
	offers := make([]*entities.Offer, 0, len(m.inserted))
	for _, id := range m.inserted {
		clone := *m.offers[id]
		offers = append(offers, &clone)
	}
	return offers, nil
}
