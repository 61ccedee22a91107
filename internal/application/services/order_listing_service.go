package services

import (
	"context"

	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
)

// OrderListingService produces the enriched order list view: customer and
// executor ids are substituted with the referenced user's first name when
// that user exists, and passed through raw otherwise.
type OrderListingService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
}

// NewOrderListingService creates a new order listing service.
func NewOrderListingService(orders repositories.OrderRepository, users repositories.UserRepository) *OrderListingService {
	return &OrderListingService{
		orders: orders,
		users:  users,
	}
}

// ListResolved lists all orders with references resolved for display.
// All referenced user ids are collected first and fetched in a single
// batch; the stored orders keep their raw numeric ids.
func (s *OrderListingService) ListResolved(ctx context.Context) ([]entities.OrderListItem, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	idSet := make(map[int]struct{}, len(orders)*2)
	for _, order := range orders {
		idSet[order.CustomerID] = struct{}{}
		idSet[order.ExecutorID] = struct{}{}
	}
	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FirstName
	}

	items := make([]entities.OrderListItem, 0, len(orders))
	for _, order := range orders {
		items = append(items, entities.OrderListItem{
			ID:          order.ID,
			Name:        order.Name,
			Description: order.Description,
			StartDate:   order.StartDate,
			EndDate:     order.EndDate,
			Address:     order.Address,
			Price:       order.Price,
			Customer:    resolveReference(order.CustomerID, names),
			Executor:    resolveReference(order.ExecutorID, names),
		})
	}
	return items, nil
}

// resolveReference returns the user's first name when known, otherwise
// the raw id unchanged. Dangling references are tolerated, never an error.
func resolveReference(id int, names map[int]string) interface{} {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
