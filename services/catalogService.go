package services

import (
	"context"
	"log"
	"time"

	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

// CatalogStore defines the document operations the catalog needs.
// Satisfied by *store.Client; narrow interface for testability.
type CatalogStore interface {
	ListDocs(ctx context.Context, coll string) ([]store.Doc, error)
	GetDoc(ctx context.Context, coll, id string) (store.Doc, bool, error)
	AddDoc(ctx context.Context, coll string, data map[string]interface{}) (string, error)
	UpdateDoc(ctx context.Context, coll, id string, updates map[string]interface{}) error
	DeleteDoc(ctx context.Context, coll, id string) error
	QueryDocs(ctx context.Context, coll, field string, value interface{}) ([]store.Doc, error)
}

// ImageUploader resolves an image reference to a hosted URL. References that
// are already remote pass through unchanged.
type ImageUploader interface {
	Upload(ctx context.Context, ref, folder string) (string, error)
}

// CatalogService covers cuisines, categories, and products: CRUD plus the
// relation lookups between them. Lookups never fail: a miss is a nil or
// empty result with a logged diagnostic.
type CatalogService struct {
	store    CatalogStore
	uploader ImageUploader
}

func NewCatalogService(st CatalogStore, uploader ImageUploader) *CatalogService {
	return &CatalogService{store: st, uploader: uploader}
}

// --- Cuisines ---

type CuisineInput struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	Image           string `json:"image"`
}

type CuisineUpdate struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	LongDescription *string `json:"long_description"`
	Image           *string `json:"image"`
}

func (s *CatalogService) Cuisines(ctx context.Context) []models.Cuisine {
	docs, err := s.store.ListDocs(ctx, store.CollCuisines)
	if err != nil {
		log.Printf("[Cuisines] listing failed: %v", err)
		return []models.Cuisine{}
	}
	cuisines := make([]models.Cuisine, 0, len(docs))
	for _, d := range docs {
		cuisines = append(cuisines, NormalizeCuisine(d))
	}
	return cuisines
}

func (s *CatalogService) CuisineByID(ctx context.Context, cuisineID string) *models.Cuisine {
	if cuisineID == "" {
		log.Printf("[CuisineByID] empty cuisine id")
		return nil
	}
	doc, ok, err := s.store.GetDoc(ctx, store.CollCuisines, cuisineID)
	if err != nil {
		log.Printf("[CuisineByID] fetching %s failed: %v", cuisineID, err)
		return nil
	}
	if !ok {
		return nil
	}
	cuisine := NormalizeCuisine(doc)
	return &cuisine
}

func (s *CatalogService) AddCuisine(ctx context.Context, in CuisineInput) (string, error) {
	image, err := s.resolveImage(ctx, in.Image, "cuisines")
	if err != nil {
		return "", err
	}
	now := time.Now()
	return s.store.AddDoc(ctx, store.CollCuisines, map[string]interface{}{
		"name":            in.Name,
		"description":     in.Description,
		"longDescription": in.LongDescription,
		"image":           image,
		"restaurantCount": 0,
		"createdAt":       now,
		"updatedAt":       now,
	})
}

func (s *CatalogService) UpdateCuisine(ctx context.Context, cuisineID string, in CuisineUpdate) error {
	updates := map[string]interface{}{"updatedAt": time.Now()}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.LongDescription != nil {
		updates["longDescription"] = *in.LongDescription
	}
	if in.Image != nil {
		image, err := s.resolveImage(ctx, *in.Image, "cuisines")
		if err != nil {
			return err
		}
		updates["image"] = image
	}
	return s.store.UpdateDoc(ctx, store.CollCuisines, cuisineID, updates)
}

func (s *CatalogService) DeleteCuisine(ctx context.Context, cuisineID string) error {
	return s.store.DeleteDoc(ctx, store.CollCuisines, cuisineID)
}

// --- Categories ---

type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CuisineID   string `json:"cuisine_id" validate:"required"`
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CuisineID   *string `json:"cuisine_id"`
}

func (s *CatalogService) Categories(ctx context.Context) []models.Category {
	docs, err := s.store.ListDocs(ctx, store.CollCategories)
	if err != nil {
		log.Printf("[Categories] listing failed: %v", err)
		return []models.Category{}
	}
	categories := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, NormalizeCategory(d))
	}
	return categories
}

func (s *CatalogService) CategoryByID(ctx context.Context, categoryID string) *models.Category {
	if categoryID == "" {
		log.Printf("[CategoryByID] empty category id")
		return nil
	}
	doc, ok, err := s.store.GetDoc(ctx, store.CollCategories, categoryID)
	if err != nil {
		log.Printf("[CategoryByID] fetching %s failed: %v", categoryID, err)
		return nil
	}
	if !ok {
		return nil
	}
	category := NormalizeCategory(doc)
	return &category
}

func (s *CatalogService) AddCategory(ctx context.Context, in CategoryInput) (string, error) {
	image, err := s.resolveImage(ctx, in.Image, "categories")
	if err != nil {
		return "", err
	}
	now := time.Now()
	return s.store.AddDoc(ctx, store.CollCategories, map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"image":       image,
		"cuisineId":   in.CuisineID,
		"itemCount":   0,
		"createdAt":   now,
		"updatedAt":   now,
	})
}

func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID string, in CategoryUpdate) error {
	updates := map[string]interface{}{"updatedAt": time.Now()}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CuisineID != nil {
		updates["cuisineId"] = *in.CuisineID
	}
	if in.Image != nil {
		image, err := s.resolveImage(ctx, *in.Image, "categories")
		if err != nil {
			return err
		}
		updates["image"] = image
	}
	return s.store.UpdateDoc(ctx, store.CollCategories, categoryID, updates)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.store.DeleteDoc(ctx, store.CollCategories, categoryID)
}

// CuisineFromCategory resolves a category's owning cuisine. Nil when the
// category is missing, has no cuisine attached, or the cuisine is gone.
func (s *CatalogService) CuisineFromCategory(ctx context.Context, categoryID string) *models.Cuisine {
	category := s.CategoryByID(ctx, categoryID)
	if category == nil || category.CuisineID == nil {
		log.Printf("[CuisineFromCategory] no cuisine attached to category %s", categoryID)
		return nil
	}
	return s.CuisineByID(ctx, *category.CuisineID)
}

// --- Products ---

type ProductInput struct {
	Name          string                 `json:"name" validate:"required,min=2,max=100"`
	Price         float64                `json:"price" validate:"gte=0"`
	DiscountPrice *float64               `json:"discount_price"`
	Description   string                 `json:"description"`
	Image         string                 `json:"image" validate:"required"`
	Category      string                 `json:"category"`
	SubCategory   string                 `json:"sub_category"`
	IsVeg         bool                   `json:"is_veg"`
	IsAvailable   bool                   `json:"is_available"`
	CuisineID     string                 `json:"cuisine_id" validate:"required"`
	Variations    []models.ProductOption `json:"variations"`
	Addons        []models.ProductOption `json:"addons"`
}

type ProductUpdate struct {
	Name          *string                `json:"name"`
	Price         *float64               `json:"price"`
	DiscountPrice *float64               `json:"discount_price"`
	Description   *string                `json:"description"`
	Image         *string                `json:"image"`
	Category      *string                `json:"category"`
	SubCategory   *string                `json:"sub_category"`
	IsVeg         *bool                  `json:"is_veg"`
	IsAvailable   *bool                  `json:"is_available"`
	CuisineID     *string                `json:"cuisine_id"`
	Variations    []models.ProductOption `json:"variations"`
	Addons        []models.ProductOption `json:"addons"`
}

func (s *CatalogService) ProductByID(ctx context.Context, productID string) *models.Product {
	if productID == "" {
		log.Printf("[ProductByID] empty product id")
		return nil
	}
	doc, ok, err := s.store.GetDoc(ctx, store.CollProducts, productID)
	if err != nil {
		log.Printf("[ProductByID] fetching %s failed: %v", productID, err)
		return nil
	}
	if !ok {
		return nil
	}
	product := NormalizeProduct(doc)
	return &product
}

// ProductsByCuisine returns every product whose cuisineId matches.
func (s *CatalogService) ProductsByCuisine(ctx context.Context, cuisineID string) []models.Product {
	if cuisineID == "" {
		log.Printf("[ProductsByCuisine] empty cuisine id")
		return []models.Product{}
	}
	docs, err := s.store.QueryDocs(ctx, store.CollProducts, "cuisineId", cuisineID)
	if err != nil {
		log.Printf("[ProductsByCuisine] query for %s failed: %v", cuisineID, err)
		return []models.Product{}
	}
	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, NormalizeProduct(d))
	}
	return products
}

// ProductsByCategory resolves the category's cuisine, fetches that cuisine's
// products, and keeps the ones whose category name matches. Products carry
// the category name rather than its id, so this assumes category names are
// unique within a cuisine.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) []models.Product {
	category := s.CategoryByID(ctx, categoryID)
	if category == nil || category.CuisineID == nil {
		log.Printf("[ProductsByCategory] no cuisine attached to category %s", categoryID)
		return []models.Product{}
	}
	all := s.ProductsByCuisine(ctx, *category.CuisineID)
	products := []models.Product{}
	for _, p := range all {
		if p.Category == category.Name {
			products = append(products, p)
		}
	}
	return products
}

func (s *CatalogService) AddProduct(ctx context.Context, in ProductInput) (string, error) {
	image, err := s.resolveImage(ctx, in.Image, "products")
	if err != nil {
		return "", err
	}
	variations := in.Variations
	if variations == nil {
		variations = []models.ProductOption{}
	}
	addons := in.Addons
	if addons == nil {
		addons = []models.ProductOption{}
	}
	now := time.Now()
	data := map[string]interface{}{
		"name":        in.Name,
		"price":       in.Price,
		"description": in.Description,
		"image":       image,
		"rating":      0,
		"reviewCount": 0,
		"category":    in.Category,
		"subCategory": in.SubCategory,
		"isVeg":       in.IsVeg,
		"isAvailable": in.IsAvailable,
		"cuisineId":   in.CuisineID,
		"variations":  variations,
		"addons":      addons,
		"createdAt":   now,
		"updatedAt":   now,
	}
	if in.DiscountPrice != nil {
		data["discountPrice"] = *in.DiscountPrice
	}
	return s.store.AddDoc(ctx, store.CollProducts, data)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, in ProductUpdate) error {
	updates := map[string]interface{}{"updatedAt": time.Now()}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.DiscountPrice != nil {
		updates["discountPrice"] = *in.DiscountPrice
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.SubCategory != nil {
		updates["subCategory"] = *in.SubCategory
	}
	if in.IsVeg != nil {
		updates["isVeg"] = *in.IsVeg
	}
	if in.IsAvailable != nil {
		updates["isAvailable"] = *in.IsAvailable
	}
	if in.CuisineID != nil {
		updates["cuisineId"] = *in.CuisineID
	}
	if in.Variations != nil {
		updates["variations"] = in.Variations
	}
	if in.Addons != nil {
		updates["addons"] = in.Addons
	}
	if in.Image != nil {
		image, err := s.resolveImage(ctx, *in.Image, "products")
		if err != nil {
			return err
		}
		updates["image"] = image
	}
	return s.store.UpdateDoc(ctx, store.CollProducts, productID, updates)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	return s.store.DeleteDoc(ctx, store.CollProducts, productID)
}

// resolveImage pushes a local reference through the uploader. Remote URLs
// come back unchanged; empty references stay empty.
func (s *CatalogService) resolveImage(ctx context.Context, ref, folder string) (string, error) {
	if ref == "" {
		return "", nil
	}
	return s.uploader.Upload(ctx, ref, folder)
}
