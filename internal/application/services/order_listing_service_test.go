package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasnikov/workorders/internal/application/services"
	"github.com/kvasnikov/workorders/internal/domain/entities"
)

type stubOrderRepo struct {
	orders []*entities.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entities.Order) error { return nil }
func (s *stubOrderRepo) GetByID(ctx context.Context, id int) (*entities.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) Update(ctx context.Context, order *entities.Order) error { return nil }
func (s *stubOrderRepo) Delete(ctx context.Context, id int) error                { return nil }
func (s *stubOrderRepo) List(ctx context.Context) ([]*entities.Order, error) {
	return s.orders, nil
}

type stubUserRepo struct {
	users       map[int]*entities.User
	batchCalls  int
	lastBatchIn []int
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*entities.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, user *entities.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id int) error              { return nil }
func (s *stubUserRepo) List(ctx context.Context) ([]*entities.User, error)    { return nil, nil }
func (s *stubUserRepo) ListByIDs(ctx context.Context, ids []int) ([]*entities.User, error) {
	s.batchCalls++
	s.lastBatchIn = ids
	var found []*entities.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			found = append(found, user)
		}
	}
	return found, nil
}

func TestOrderListingService_ResolvesKnownUsers(t *testing.T) {
	orders := &stubOrderRepo{orders: []*entities.Order{
		{
			ID:         1,
			Name:       "repair shed",
			StartDate:  entities.NewDate(2024, time.January, 15),
			EndDate:    entities.NewDate(2024, time.February, 1),
			Price:      5000,
			CustomerID: 10,
			ExecutorID: 20,
		},
	}}
	users := &stubUserRepo{users: map[int]*entities.User{
		10: {ID: 10, FirstName: "Anna"},
		20: {ID: 20, FirstName: "Boris"},
	}}

	service := services.NewOrderListingService(orders, users)
	items, err := service.ListResolved(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Anna", items[0].Customer)
	assert.Equal(t, "Boris", items[0].Executor)
}

func TestOrderListingService_PassesDanglingIDsThrough(t *testing.T) {
	orders := &stubOrderRepo{orders: []*entities.Order{
		{ID: 1, CustomerID: 10, ExecutorID: 999},
	}}
	users := &stubUserRepo{users: map[int]*entities.User{
		10: {ID: 10, FirstName: "Anna"},
	}}

	service := services.NewOrderListingService(orders, users)
	items, err := service.ListResolved(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Anna", items[0].Customer)
	assert.Equal(t, 999, items[0].Executor)
}

func TestOrderListingService_SingleBatchLookup(t *testing.T) {
	orders := &stubOrderRepo{orders: []*entities.Order{
		{ID: 1, CustomerID: 10, ExecutorID: 20},
		{ID: 2, CustomerID: 10, ExecutorID: 30},
		{ID: 3, CustomerID: 20, ExecutorID: 20},
	}}
	users := &stubUserRepo{users: map[int]*entities.User{}}

	service := services.NewOrderListingService(orders, users)
	_, err := service.ListResolved(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, users.batchCalls)
	assert.ElementsMatch(t, []int{10, 20, 30}, users.lastBatchIn)
}

func TestOrderListingService_EmptyListing(t *testing.T) {
	service := services.NewOrderListingService(&stubOrderRepo{}, &stubUserRepo{})

	items, err := service.ListResolved(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}
