package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/store"
)

// CatalogService translates filter parameters into product queries. There is
// no ranking beyond the recognized sort keys.
type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// Search lists products matching the raw query parameters.
func (s *CatalogService) Search(ctx context.Context, params url.Values) ([]models.Product, error) {
	query, err := buildProductQuery(params)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, Internal("error fetching products", err)
	}
	return products, nil
}

// Get returns one product by id.
func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, Internal("error fetching product", err)
	}
	return product, nil
}

// Similar returns up to five products sharing the gender and category of the
// given product, excluding the product itself.
func (s *CatalogService) Similar(ctx context.Context, id primitive.ObjectID) ([]models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	similar, err := s.products.FindSimilar(ctx, product, 5)
	if err != nil {
		return nil, Internal("error fetching similar products", err)
	}
	return similar, nil
}

// Create adds a catalog entry, stamped with the owning admin. The SKU must be
// unique.
func (s *CatalogService) Create(ctx context.Context, req models.CreateProductRequest, owner primitive.ObjectID) (*models.Product, error) {
	if _, err := s.products.FindBySKU(ctx, req.SKU); err == nil {
		return nil, Conflict("Product with SKU %s already exists", req.SKU)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("error checking SKU", err)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		SKU:           req.SKU,
		Category:      req.Category,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		Collections:   req.Collections,
		Material:      req.Material,
		Gender:        req.Gender,
		Images:        req.Images,
		IsFeatured:    req.IsFeatured,
		IsPublished:   req.IsPublished,
		Tags:          req.Tags,
		User:          owner,
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, Internal("error creating product", err)
	}
	product.ID = id
	return product, nil
}

// Update applies the non-nil fields of the request.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, Internal("error updating product", err)
	}
	return product, nil
}

// Delete removes a product. Historical carts and orders keep their snapshots.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound("Product not found")
		}
		return Internal("error deleting product", err)
	}
	return nil
}

// buildProductQuery normalizes the raw query parameters. Multi-valued filters
// accept repeated keys or comma-separated strings; "all" on collection or
// category means no filter.
func buildProductQuery(params url.Values) (models.ProductQuery, error) {
	query := models.ProductQuery{
		Gender: params.Get("gender"),
		Search: params.Get("search"),
		SortBy: params.Get("sortBy"),
	}

	if v := params.Get("collection"); v != "" && !strings.EqualFold(v, "all") {
		query.Collection = v
	}
	if v := params.Get("category"); v != "" && !strings.EqualFold(v, "all") {
		query.Category = v
	}

	query.Sizes = normalizeListParam(params["size"])
	query.Colors = normalizeListParam(params["color"])
	query.Materials = normalizeListParam(params["material"])
	query.Brands = normalizeListParam(params["brand"])

	var err error
	if query.MinPrice, err = parsePriceParam(params.Get("minPrice"), "minPrice"); err != nil {
		return query, err
	}
	if query.MaxPrice, err = parsePriceParam(params.Get("maxPrice"), "maxPrice"); err != nil {
		return query, err
	}
	return query, nil
}

// normalizeListParam flattens repeated keys and comma-separated values into
// one trimmed list.
func normalizeListParam(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parsePriceParam(value, name string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, Invalid("%s must be a number", name)
	}
	return &price, nil
}
