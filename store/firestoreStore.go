package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client wraps the Firestore client behind plain document operations.
// Construct it once in main and pass it to the services.
type Client struct {
	fs *firestore.Client
}

func New(fs *firestore.Client) *Client {
	return &Client{fs: fs}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.fs.Close()
}

// ListDocs returns every document in a top-level collection.
func (c *Client) ListDocs(ctx context.Context, coll string) ([]Doc, error) {
	return drain(c.fs.Collection(coll).Documents(ctx))
}

// GetDoc fetches a single document. A missing document is not an error: the
// second return value reports existence.
func (c *Client) GetDoc(ctx context.Context, coll, id string) (Doc, bool, error) {
	snap, err := c.fs.Collection(coll).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Doc{}, false, nil
	}
	if err != nil {
		return Doc{}, false, fmt.Errorf("get %s/%s: %w", coll, id, err)
	}
	return fromSnapshot(snap), true, nil
}

// AddDoc creates a document with a store-assigned id and returns the id.
func (c *Client) AddDoc(ctx context.Context, coll string, data map[string]interface{}) (string, error) {
	ref := c.fs.Collection(coll).NewDoc()
	if _, err := ref.Set(ctx, data); err != nil {
		return "", fmt.Errorf("create %s: %w", coll, err)
	}
	return ref.ID, nil
}

// UpdateDoc applies a partial update; only the listed fields change.
func (c *Client) UpdateDoc(ctx context.Context, coll, id string, updates map[string]interface{}) error {
	if _, err := c.fs.Collection(coll).Doc(id).Update(ctx, toUpdates(updates)); err != nil {
		return fmt.Errorf("update %s/%s: %w", coll, id, err)
	}
	return nil
}

// DeleteDoc removes a document.
func (c *Client) DeleteDoc(ctx context.Context, coll, id string) error {
	if _, err := c.fs.Collection(coll).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", coll, id, err)
	}
	return nil
}

// QueryDocs returns the documents in coll whose field equals value.
func (c *Client) QueryDocs(ctx context.Context, coll, field string, value interface{}) ([]Doc, error) {
	return drain(c.fs.Collection(coll).Where(field, "==", value).Documents(ctx))
}

// UpdateCourier applies a partial update to a courier record.
func (c *Client) UpdateCourier(ctx context.Context, courierID string, updates map[string]interface{}) error {
	return c.UpdateDoc(ctx, CollCouriers, courierID, updates)
}

// AllOrders runs the cross-tenant collection-group query, newest first.
// It fails when the store lacks the composite index for the ordering; the
// caller is expected to fall back to per-tenant enumeration.
func (c *Client) AllOrders(ctx context.Context) ([]Doc, error) {
	it := c.fs.CollectionGroup(CollOrders).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return drain(it)
}

// ListTenants returns the ids of every user document.
func (c *Client) ListTenants(ctx context.Context) ([]string, error) {
	refs, err := c.fs.Collection(CollUsers).DocumentRefs(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

// TenantOrders returns one tenant's orders, unordered.
func (c *Client) TenantOrders(ctx context.Context, tenantID string) ([]Doc, error) {
	it := c.orderRef(tenantID).Documents(ctx)
	return drain(it)
}

// GetTenantOrder fetches a single order by (tenant id, order id).
func (c *Client) GetTenantOrder(ctx context.Context, tenantID, orderID string) (Doc, bool, error) {
	snap, err := c.orderRef(tenantID).Doc(orderID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Doc{}, false, nil
	}
	if err != nil {
		return Doc{}, false, fmt.Errorf("get order %s/%s: %w", tenantID, orderID, err)
	}
	return fromSnapshot(snap), true, nil
}

// UpdateTenantOrder applies a partial update to a single order.
func (c *Client) UpdateTenantOrder(ctx context.Context, tenantID, orderID string, updates map[string]interface{}) error {
	if _, err := c.orderRef(tenantID).Doc(orderID).Update(ctx, toUpdates(updates)); err != nil {
		return fmt.Errorf("update order %s/%s: %w", tenantID, orderID, err)
	}
	return nil
}

func (c *Client) orderRef(tenantID string) *firestore.CollectionRef {
	return c.fs.Collection(CollUsers).Doc(tenantID).Collection(CollOrders)
}

func drain(it *firestore.DocumentIterator) ([]Doc, error) {
	defer it.Stop()

	var docs []Doc
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, fromSnapshot(snap))
	}
}

func fromSnapshot(snap *firestore.DocumentSnapshot) Doc {
	doc := Doc{ID: snap.Ref.ID, Data: snap.Data()}
	// Orders live in users/{id}/orders; the grand-parent document is the
	// owning tenant. Top-level documents have none.
	if parent := snap.Ref.Parent.Parent; parent != nil {
		doc.Tenant = parent.ID
	}
	return doc
}

func toUpdates(updates map[string]interface{}) []firestore.Update {
	out := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		out = append(out, firestore.Update{Path: path, Value: translateValue(value)})
	}
	return out
}

// translateValue resolves the package's update sentinels into their
// Firestore counterparts, recursing into nested maps (delivery details carry
// a server-assigned deliveredAt).
func translateValue(v interface{}) interface{} {
	if IsServerTimestamp(v) {
		return firestore.ServerTimestamp
	}
	if by, ok := IncrementBy(v); ok {
		return firestore.Increment(by)
	}
	if m, ok := v.(map[string]interface{}); ok {
		nested := make(map[string]interface{}, len(m))
		for k, nv := range m {
			nested[k] = translateValue(nv)
		}
		return nested
	}
	return v
}
