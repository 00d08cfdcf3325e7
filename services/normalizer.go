package services

import (
	"time"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

// Normalizers turn raw documents into fully-populated records. They are pure
// and total: malformed or missing fields become their documented defaults,
// never an error. Everything downstream of this file can assume every field
// is present.

// NormalizeOrder fills in an order from a raw document. The owning tenant is
// taken from the sub-collection parent, then from a userId field in the body,
// then the sentinel "unknown".
func NormalizeOrder(d store.Doc) models.Order {
	data := d.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	userID := d.Tenant
	if userID == "" {
		userID = asString(data["userId"])
	}
	if userID == "" {
		userID = "unknown"
	}

	// Coordinates count only when both components are numeric.
	coords := models.Coordinates{}
	if c, ok := data["coordinates"].(map[string]interface{}); ok {
		lat, latOK := asNumber(c["latitude"])
		lng, lngOK := asNumber(c["longitude"])
		if latOK && lngOK {
			coords = models.Coordinates{Latitude: lat, Longitude: lng}
		}
	}

	items := []models.OrderItem{}
	if rawItems, ok := data["items"].([]interface{}); ok {
		for _, raw := range rawItems {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			item := models.OrderItem{
				ID:       asString(m["id"]),
				Name:     asString(m["name"]),
				Quantity: 1,
			}
			if q, ok := asNumber(m["quantity"]); ok {
				item.Quantity = int(q)
			}
			if p, ok := asNumber(m["price"]); ok {
				item.Price = p
			}
			items = append(items, item)
		}
	}

	status := models.OrderStatus(asString(data["status"]))
	if status == "" {
		status = models.StatusPending
	}

	createdAt := asTime(data["createdAt"])
	updatedAt := asTime(data["updatedAt"])
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	total := 0.0
	if t, ok := asNumber(data["total"]); ok {
		total = t
	}

	return models.Order{
		ID:              d.ID,
		UserID:          userID,
		DriverID:        asString(data["driverId"]),
		CustomerName:    asString(data["customerName"]),
		CustomerPhone:   asString(data["customerPhone"]),
		Address:         asString(data["address"]),
		Coordinates:     coords,
		Status:          status,
		Total:           total,
		ETA:             asString(data["eta"]),
		Distance:        asString(data["distance"]),
		Note:            asString(data["note"]),
		Items:           items,
		DeliveryDetails: normalizeDelivery(data["deliveryDetails"]),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func normalizeDelivery(v interface{}) *models.OrderDeliveryData {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	delivery := models.OrderDeliveryData{
		ReceivedBy:         asString(m["receivedBy"]),
		Notes:              asString(m["notes"]),
		SignatureURL:       asString(m["signatureUrl"]),
		ProofOfDeliveryURL: asString(m["proofOfDeliveryUrl"]),
		DeliveredAt:        asTime(m["deliveredAt"]),
		DeliveredBy:        asString(m["deliveredBy"]),
		DeliverymanName:    asString(m["deliverymanName"]),
	}
	if amount, ok := asNumber(m["amountCollected"]); ok {
		delivery.AmountCollected = amount
	}
	return &delivery
}

// NormalizeCuisine fills in a cuisine from a raw document.
func NormalizeCuisine(d store.Doc) models.Cuisine {
	data := d.Data
	if data == nil {
		data = map[string]interface{}{}
	}
	return models.Cuisine{
		ID:              d.ID,
		Name:            asString(data["name"]),
		Image:           asString(data["image"]),
		Description:     asString(data["description"]),
		LongDescription: asString(data["longDescription"]),
		RestaurantCount: asInt(data["restaurantCount"]),
		CreatedAt:       asTime(data["createdAt"]),
		UpdatedAt:       asTime(data["updatedAt"]),
	}
}

// NormalizeCategory fills in a category from a raw document. The owning
// cuisine id stays nil when absent or empty.
func NormalizeCategory(d store.Doc) models.Category {
	data := d.Data
	if data == nil {
		data = map[string]interface{}{}
	}
	category := models.Category{
		ID:          d.ID,
		Name:        asString(data["name"]),
		Image:       asString(data["image"]),
		Description: asString(data["description"]),
		ItemCount:   asInt(data["itemCount"]),
		CreatedAt:   asTime(data["createdAt"]),
		UpdatedAt:   asTime(data["updatedAt"]),
	}
	if id := asString(data["cuisineId"]); id != "" {
		category.CuisineID = &id
	}
	return category
}

// NormalizeProduct fills in a product from a raw document.
func NormalizeProduct(d store.Doc) models.Product {
	data := d.Data
	if data == nil {
		data = map[string]interface{}{}
	}
	product := models.Product{
		ID:          d.ID,
		Name:        asString(data["name"]),
		Description: asString(data["description"]),
		Image:       asString(data["image"]),
		Category:    asString(data["category"]),
		SubCategory: asString(data["subCategory"]),
		IsVeg:       asBool(data["isVeg"]),
		IsAvailable: asBool(data["isAvailable"]),
		CuisineID:   asString(data["cuisineId"]),
		ReviewCount: asInt(data["reviewCount"]),
		Variations:  normalizeOptions(data["variations"]),
		Addons:      normalizeOptions(data["addons"]),
		CreatedAt:   asTime(data["createdAt"]),
		UpdatedAt:   asTime(data["updatedAt"]),
	}
	if price, ok := asNumber(data["price"]); ok {
		product.Price = price
	}
	if rating, ok := asNumber(data["rating"]); ok {
		product.Rating = rating
	}
	if discount, ok := asNumber(data["discountPrice"]); ok {
		product.DiscountPrice = &discount
	}
	return product
}

func normalizeOptions(v interface{}) []models.ProductOption {
	options := []models.ProductOption{}
	raw, ok := v.([]interface{})
	if !ok {
		return options
	}
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		option := models.ProductOption{
			ID:   asString(m["id"]),
			Name: asString(m["name"]),
		}
		if price, ok := asNumber(m["price"]); ok {
			option.Price = price
		}
		options = append(options, option)
	}
	return options
}

// NormalizeCourier fills in a courier from a raw document.
func NormalizeCourier(d store.Doc) models.Courier {
	data := d.Data
	if data == nil {
		data = map[string]interface{}{}
	}
	return models.Courier{
		ID:                  d.ID,
		Name:                asString(data["name"]),
		Phone:               asString(data["phone"]),
		DeliveriesCompleted: asInt(data["deliveriesCompleted"]),
		CreatedAt:           asTime(data["createdAt"]),
		UpdatedAt:           asTime(data["updatedAt"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v interface{}) int {
	n, _ := asNumber(v)
	return int(n)
}

// asTime coerces the store's timestamp representations to a time.Time:
// native timestamps decode to time.Time, older clients wrote RFC 3339
// strings or epoch seconds. Anything else is the zero time.
func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case float64:
		return time.Unix(int64(t), 0).UTC()
	case int64:
		return time.Unix(t, 0).UTC()
	}
	return time.Time{}
}
