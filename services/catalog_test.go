package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
)

func TestBuildProductQueryNormalizesLists(t *testing.T) {
	params := url.Values{}
	params.Set("size", "S, M ,L")
	params.Add("color", "Red")
	params.Add("color", "Blue,Green")
	params.Set("material", " cotton ,")

	query, err := buildProductQuery(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "M", "L"}, query.Sizes)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, query.Colors)
	assert.Equal(t, []string{"cotton"}, query.Materials)
}

func TestBuildProductQueryAllMeansNoFilter(t *testing.T) {
	params := url.Values{}
	params.Set("collection", "All")
	params.Set("category", "all")

	query, err := buildProductQuery(params)
	require.NoError(t, err)
	assert.Empty(t, query.Collection)
	assert.Empty(t, query.Category)

	params.Set("collection", "Summer")
	params.Set("category", "Shirts")
	query, err = buildProductQuery(params)
	require.NoError(t, err)
	assert.Equal(t, "Summer", query.Collection)
	assert.Equal(t, "Shirts", query.Category)
}

func TestBuildProductQueryPriceBounds(t *testing.T) {
	params := url.Values{}
	params.Set("minPrice", "10.5")
	params.Set("maxPrice", "99")

	query, err := buildProductQuery(params)
	require.NoError(t, err)
	require.NotNil(t, query.MinPrice)
	require.NotNil(t, query.MaxPrice)
	assert.Equal(t, 10.5, *query.MinPrice)
	assert.Equal(t, 99.0, *query.MaxPrice)
}

func TestBuildProductQueryRejectsBadPrice(t *testing.T) {
	params := url.Values{}
	params.Set("minPrice", "cheap")

	_, err := buildProductQuery(params)
	require.Error(t, err)
	assert.Equal(t, KindInvalid, KindOf(err))
}

func TestBuildProductQueryPassThrough(t *testing.T) {
	params := url.Values{}
	params.Set("gender", "Women")
	params.Set("search", "linen")
	params.Set("sortBy", models.SortPriceDesc)

	query, err := buildProductQuery(params)
	require.NoError(t, err)
	assert.Equal(t, "Women", query.Gender)
	assert.Equal(t, "linen", query.Search)
	assert.Equal(t, models.SortPriceDesc, query.SortBy)
}

func TestCatalogCreateRejectsDuplicateSKU(t *testing.T) {
	products := newFakeProductStore()
	svc := NewCatalogService(products)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	req := models.CreateProductRequest{
		Name: "Linen Shirt", Description: "Breathable", Price: 20, SKU: "SKU-1",
		Category: "Shirts", Sizes: []string{"M"}, Colors: []string{"Red"},
		Collections: "Summer", Gender: "Men",
		Images: []models.ProductImage{{URL: "https://img.example.com/1.jpg"}},
	}
	created, err := svc.Create(ctx, req, owner)
	require.NoError(t, err)
	assert.Equal(t, owner, created.User)
	assert.False(t, created.ID.IsZero())

	_, err = svc.Create(ctx, req, owner)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestCatalogGetUnknownProduct(t *testing.T) {
	svc := NewCatalogService(newFakeProductStore())

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCatalogSimilarSharesGenderAndCategory(t *testing.T) {
	products := newFakeProductStore()
	ref := models.Product{Name: "Linen Shirt", Gender: "Men", Category: "Shirts"}
	refID := products.add(ref)
	products.add(models.Product{Name: "Oxford Shirt", Gender: "Men", Category: "Shirts"})
	products.add(models.Product{Name: "Summer Dress", Gender: "Women", Category: "Dresses"})

	similar, err := NewCatalogService(products).Similar(context.Background(), refID)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "Oxford Shirt", similar[0].Name)
}
