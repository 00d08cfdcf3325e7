package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")
)

// OrderStore defines the database methods the order service needs.
// Satisfied by *store.Client; narrow interface for testability.
type OrderStore interface {
	AllOrders(ctx context.Context) ([]store.Doc, error)
	ListTenants(ctx context.Context) ([]string, error)
	TenantOrders(ctx context.Context, tenantID string) ([]store.Doc, error)
	GetTenantOrder(ctx context.Context, tenantID, orderID string) (store.Doc, bool, error)
	UpdateTenantOrder(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error
	UpdateCourier(ctx context.Context, courierID string, updates map[string]interface{}) error
}

// OrderService aggregates orders across every tenant and applies status
// transitions. Reads degrade to empty results; writes propagate errors.
type OrderService struct {
	store OrderStore
	group singleflight.Group
}

func NewOrderService(st OrderStore) *OrderService {
	return &OrderService{store: st}
}

// fetchTimeout bounds the shared aggregate fetch independently of any one
// caller's deadline.
const fetchTimeout = 100 * time.Second

// Orders returns every order across all tenants, newest first. Concurrent
// callers share a single store round-trip. It never fails: a total fetch
// failure is logged and surfaces as an empty slice.
func (s *OrderService) Orders(ctx context.Context) []models.Order {
	v, _, _ := s.group.Do("orders", func() (interface{}, error) {
		// The flight is shared: detach it from the triggering caller so
		// that caller cancelling does not starve everyone joined to it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return s.fetchOrders(fetchCtx), nil
	})
	orders, _ := v.([]models.Order)
	return orders
}

func (s *OrderService) fetchOrders(ctx context.Context) []models.Order {
	docs, err := s.store.AllOrders(ctx)
	if err != nil {
		// The collection-group query needs a composite index; fall back to
		// walking the tenants one by one.
		log.Printf("[Orders] cross-tenant query failed, falling back to per-tenant fetch: %v", err)
		return s.ordersByTenant(ctx)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, NormalizeOrder(d))
	}
	log.Printf("[Orders] %d orders retrieved", len(orders))
	return orders
}

// ordersByTenant is the fallback strategy: enumerate tenants, fetch each
// tenant's orders, and sort the union by creation time descending. One
// tenant failing costs only that tenant's orders, not the whole batch.
func (s *OrderService) ordersByTenant(ctx context.Context) []models.Order {
	tenants, err := s.store.ListTenants(ctx)
	if err != nil {
		log.Printf("[Orders] listing tenants failed: %v", err)
		return []models.Order{}
	}

	orders := []models.Order{}
	for _, tenantID := range tenants {
		docs, err := s.store.TenantOrders(ctx, tenantID)
		if err != nil {
			log.Printf("[Orders] fetching orders for tenant %s failed: %v", tenantID, err)
			continue
		}
		for _, d := range docs {
			if d.Tenant == "" {
				d.Tenant = tenantID
			}
			orders = append(orders, NormalizeOrder(d))
		}
	}

	// The primary path relies on the store's ordering; here we merged
	// per-tenant batches and must sort explicitly.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	log.Printf("[Orders] %d orders retrieved (fallback)", len(orders))
	return orders
}

// Order fetches one order by (tenant id, order id). Returns nil on miss.
func (s *OrderService) Order(ctx context.Context, tenantID, orderID string) *models.Order {
	if tenantID == "" || orderID == "" {
		log.Printf("[Order] missing tenant or order id")
		return nil
	}
	doc, ok, err := s.store.GetTenantOrder(ctx, tenantID, orderID)
	if err != nil {
		log.Printf("[Order] fetching %s/%s failed: %v", tenantID, orderID, err)
		return nil
	}
	if !ok {
		return nil
	}
	if doc.Tenant == "" {
		doc.Tenant = tenantID
	}
	order := NormalizeOrder(doc)
	return &order
}

// SetStatus writes the new status and a refreshed update timestamp to the
// order, unconditionally: any of the four statuses is accepted from any
// current state (admin override). Completing with a delivery payload also
// stores the payload on the order, with the delivery timestamp assigned by
// the store, and credits the courier's deliveriesCompleted counter.
//
// Unlike the read paths, write failures are returned to the caller: a
// swallowed error here would leave the UI showing a status the store never
// recorded.
func (s *OrderService) SetStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus, delivery *models.OrderDeliveryData) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updates := map[string]interface{}{
		"status":    string(status),
		"updatedAt": store.ServerTimestamp,
	}

	completing := status == models.StatusCompleted && delivery != nil
	if completing {
		updates["deliveryDetails"] = map[string]interface{}{
			"receivedBy":         delivery.ReceivedBy,
			"notes":              delivery.Notes,
			"amountCollected":    delivery.AmountCollected,
			"signatureUrl":       delivery.SignatureURL,
			"proofOfDeliveryUrl": delivery.ProofOfDeliveryURL,
			"deliveredAt":        store.ServerTimestamp,
			"deliveredBy":        delivery.DeliveredBy,
			"deliverymanName":    delivery.DeliverymanName,
		}
	}

	if err := s.store.UpdateTenantOrder(ctx, tenantID, orderID, updates); err != nil {
		return fmt.Errorf("update order %s/%s: %w", tenantID, orderID, err)
	}

	if completing && delivery.DeliveredBy != "" {
		err := s.store.UpdateCourier(ctx, delivery.DeliveredBy, map[string]interface{}{
			"deliveriesCompleted": store.Increment(1),
			"updatedAt":           store.ServerTimestamp,
		})
		if err != nil {
			return fmt.Errorf("credit courier %s: %w", delivery.DeliveredBy, err)
		}
	}
	return nil
}

// AdvanceStatus applies a guarded transition: pending may move to
// in-progress or cancelled, in-progress to completed or cancelled, and
// terminal states never move. Use SetStatus for raw overrides.
func (s *OrderService) AdvanceStatus(ctx context.Context, tenantID, orderID string, status models.OrderStatus, delivery *models.OrderDeliveryData) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	doc, ok, err := s.store.GetTenantOrder(ctx, tenantID, orderID)
	if err != nil {
		return fmt.Errorf("get order %s/%s: %w", tenantID, orderID, err)
	}
	if !ok {
		return ErrOrderNotFound
	}
	current := NormalizeOrder(doc).Status
	if !canTransition(current, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}
	return s.SetStatus(ctx, tenantID, orderID, status, delivery)
}

func canTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusInProgress || to == models.StatusCancelled
	case models.StatusInProgress:
		return to == models.StatusCompleted || to == models.StatusCancelled
	}
	return false
}
