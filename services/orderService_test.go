package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

// fakeOrderStore implements OrderStore through overridable funcs.
type fakeOrderStore struct {
	allOrders         func(ctx context.Context) ([]store.Doc, error)
	listTenants       func(ctx context.Context) ([]string, error)
	tenantOrders      func(ctx context.Context, tenantID string) ([]store.Doc, error)
	getTenantOrder    func(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error)
	updateTenantOrder func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error
	updateCourier     func(ctx context.Context, courierID string, updates map[string]interface{}) error
}

func (f *fakeOrderStore) AllOrders(ctx context.Context) ([]store.Doc, error) {
	return f.allOrders(ctx)
}

func (f *fakeOrderStore) ListTenants(ctx context.Context) ([]string, error) {
	return f.listTenants(ctx)
}

func (f *fakeOrderStore) TenantOrders(ctx context.Context, tenantID string) ([]store.Doc, error) {
	return f.tenantOrders(ctx, tenantID)
}

func (f *fakeOrderStore) GetTenantOrder(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error) {
	return f.getTenantOrder(ctx, tenantID, orderID)
}

func (f *fakeOrderStore) UpdateTenantOrder(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
	return f.updateTenantOrder(ctx, tenantID, orderID, updates)
}

func (f *fakeOrderStore) UpdateCourier(ctx context.Context, courierID string, updates map[string]interface{}) error {
	return f.updateCourier(ctx, courierID, updates)
}

func orderDoc(id, tenant string, created time.Time) store.Doc {
	return store.Doc{
		ID:     id,
		Tenant: tenant,
		Data: map[string]interface{}{
			"status":    "pending",
			"createdAt": created,
		},
	}
}

func TestOrdersPrimaryPath(t *testing.T) {
	now := time.Now()
	fallbackUsed := false
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			return []store.Doc{
				orderDoc("o2", "user-2", now),
				orderDoc("o1", "user-1", now.Add(-time.Hour)),
			}, nil
		},
		listTenants: func(ctx context.Context) ([]string, error) {
			fallbackUsed = true
			return nil, nil
		},
	}

	orders := NewOrderService(st).Orders(context.Background())

	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "user-2", orders[0].UserID)
	assert.Equal(t, "o1", orders[1].ID)
	assert.False(t, fallbackUsed)
}

func TestOrdersFallbackSortsNewestFirst(t *testing.T) {
	now := time.Now()
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			return nil, errors.New("index missing")
		},
		listTenants: func(ctx context.Context) ([]string, error) {
			return []string{"user-1", "user-2"}, nil
		},
		tenantOrders: func(ctx context.Context, tenantID string) ([]store.Doc, error) {
			switch tenantID {
			case "user-1":
				return []store.Doc{orderDoc("o1", "", now.Add(-2 * time.Hour))}, nil
			case "user-2":
				return []store.Doc{
					orderDoc("o3", "", now),
					orderDoc("o2", "", now.Add(-time.Hour)),
				}, nil
			}
			return nil, nil
		},
	}

	orders := NewOrderService(st).Orders(context.Background())

	require.Len(t, orders, 3)
	assert.Equal(t, []string{"o3", "o2", "o1"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
	// Tenant ownership comes from the path walked, not the body.
	assert.Equal(t, "user-1", orders[2].UserID)
	assert.Equal(t, "user-2", orders[0].UserID)
}

func TestOrdersFallbackSkipsFailingTenant(t *testing.T) {
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			return nil, errors.New("index missing")
		},
		listTenants: func(ctx context.Context) ([]string, error) {
			return []string{"user-1", "user-2"}, nil
		},
		tenantOrders: func(ctx context.Context, tenantID string) ([]store.Doc, error) {
			if tenantID == "user-1" {
				return nil, errors.New("permission denied")
			}
			return []store.Doc{orderDoc("o2", "", time.Now())}, nil
		},
	}

	orders := NewOrderService(st).Orders(context.Background())

	require.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestOrdersTotalFailureYieldsEmptySlice(t *testing.T) {
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			return nil, errors.New("index missing")
		},
		listTenants: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("unavailable")
		},
	}

	orders := NewOrderService(st).Orders(context.Background())

	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestConcurrentOrdersShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			calls.Add(1)
			entered <- struct{}{}
			<-release
			return []store.Doc{orderDoc("o1", "user-1", time.Now())}, nil
		},
	}
	svc := NewOrderService(st)

	var wg sync.WaitGroup
	results := make([][]models.Order, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = svc.Orders(context.Background())
	}()
	<-entered

	// The fetch is blocked in the store; every caller joining now must
	// share it rather than issue its own.
	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Orders(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, orders := range results {
		require.Len(t, orders, 1)
		assert.Equal(t, "o1", orders[0].ID)
	}

	// Once the flight lands, the next call issues a fresh round-trip.
	svc.Orders(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestOrdersCancelledCallerDoesNotStarveOthers(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	var storeCtxErr error
	st := &fakeOrderStore{
		allOrders: func(ctx context.Context) ([]store.Doc, error) {
			entered <- struct{}{}
			<-release
			if err := ctx.Err(); err != nil {
				storeCtxErr = err
				return nil, err
			}
			return []store.Doc{orderDoc("o1", "user-1", time.Now())}, nil
		},
		listTenants: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("unavailable")
		},
	}
	svc := NewOrderService(st)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Orders(firstCtx)
	}()
	<-entered

	var joined []models.Order
	wg.Add(1)
	go func() {
		defer wg.Done()
		joined = svc.Orders(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)

	// The triggering caller goes away mid-flight; the store must not see
	// its cancellation and the joined caller must still get the batch.
	cancelFirst()
	close(release)
	wg.Wait()

	assert.NoError(t, storeCtxErr)
	require.Len(t, joined, 1)
	assert.Equal(t, "o1", joined[0].ID)
}

func TestOrderMissReturnsNil(t *testing.T) {
	st := &fakeOrderStore{
		getTenantOrder: func(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error) {
			return store.Doc{}, false, nil
		},
	}
	svc := NewOrderService(st)

	assert.Nil(t, svc.Order(context.Background(), "user-1", "missing"))
	assert.Nil(t, svc.Order(context.Background(), "", "o1"))
	assert.Nil(t, svc.Order(context.Background(), "user-1", ""))
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{})

	err := svc.SetStatus(context.Background(), "user-1", "o1", "on-the-moon", nil)

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatusWritesStatusAndTimestamp(t *testing.T) {
	var gotUpdates map[string]interface{}
	courierTouched := false
	st := &fakeOrderStore{
		updateTenantOrder: func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
			gotUpdates = updates
			return nil
		},
		updateCourier: func(ctx context.Context, courierID string, updates map[string]interface{}) error {
			courierTouched = true
			return nil
		},
	}

	err := NewOrderService(st).SetStatus(context.Background(), "user-1", "o1", models.StatusInProgress, nil)

	require.NoError(t, err)
	assert.Equal(t, "in-progress", gotUpdates["status"])
	assert.True(t, store.IsServerTimestamp(gotUpdates["updatedAt"]))
	assert.NotContains(t, gotUpdates, "deliveryDetails")
	assert.False(t, courierTouched)
}

func TestSetStatusCompletionCreditsCourier(t *testing.T) {
	var orderUpdates map[string]interface{}
	var creditedCourier string
	var courierUpdates map[string]interface{}
	st := &fakeOrderStore{
		updateTenantOrder: func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
			orderUpdates = updates
			return nil
		},
		updateCourier: func(ctx context.Context, courierID string, updates map[string]interface{}) error {
			creditedCourier = courierID
			courierUpdates = updates
			return nil
		},
	}

	delivery := &models.OrderDeliveryData{
		ReceivedBy:      "Karim",
		AmountCollected: 42.5,
		DeliveredBy:     "c1",
		DeliverymanName: "Hassan",
	}
	err := NewOrderService(st).SetStatus(context.Background(), "user-1", "o1", models.StatusCompleted, delivery)

	require.NoError(t, err)
	details, ok := orderUpdates["deliveryDetails"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Karim", details["receivedBy"])
	assert.True(t, store.IsServerTimestamp(details["deliveredAt"]))

	assert.Equal(t, "c1", creditedCourier)
	by, ok := store.IncrementBy(courierUpdates["deliveriesCompleted"])
	require.True(t, ok)
	assert.Equal(t, int64(1), by)
}

func TestSetStatusCompletionWithoutCourierSkipsCredit(t *testing.T) {
	courierTouched := false
	st := &fakeOrderStore{
		updateTenantOrder: func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
			return nil
		},
		updateCourier: func(ctx context.Context, courierID string, updates map[string]interface{}) error {
			courierTouched = true
			return nil
		},
	}

	err := NewOrderService(st).SetStatus(context.Background(), "user-1", "o1", models.StatusCompleted, &models.OrderDeliveryData{ReceivedBy: "Karim"})

	require.NoError(t, err)
	assert.False(t, courierTouched)
}

func TestSetStatusPropagatesWriteFailure(t *testing.T) {
	boom := errors.New("deadline exceeded")
	st := &fakeOrderStore{
		updateTenantOrder: func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
			return boom
		},
	}

	err := NewOrderService(st).SetStatus(context.Background(), "user-1", "o1", models.StatusCancelled, nil)

	assert.ErrorIs(t, err, boom)
}

func TestAdvanceStatusGuardsTransitions(t *testing.T) {
	cases := []struct {
		current string
		next    models.OrderStatus
		allowed bool
	}{
		{"pending", models.StatusInProgress, true},
		{"pending", models.StatusCancelled, true},
		{"pending", models.StatusCompleted, false},
		{"in-progress", models.StatusCompleted, true},
		{"in-progress", models.StatusCancelled, true},
		{"in-progress", models.StatusPending, false},
		{"completed", models.StatusCancelled, false},
		{"cancelled", models.StatusInProgress, false},
	}

	for _, tc := range cases {
		st := &fakeOrderStore{
			getTenantOrder: func(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error) {
				return store.Doc{ID: orderID, Tenant: tenantID, Data: map[string]interface{}{"status": tc.current}}, true, nil
			},
			updateTenantOrder: func(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
				return nil
			},
			updateCourier: func(ctx context.Context, courierID string, updates map[string]interface{}) error {
				return nil
			},
		}

		err := NewOrderService(st).AdvanceStatus(context.Background(), "user-1", "o1", tc.next, nil)

		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.current, tc.next)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.current, tc.next)
		}
	}
}

func TestAdvanceStatusMissingOrder(t *testing.T) {
	st := &fakeOrderStore{
		getTenantOrder: func(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error) {
			return store.Doc{}, false, nil
		},
	}

	err := NewOrderService(st).AdvanceStatus(context.Background(), "user-1", "missing", models.StatusInProgress, nil)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}
