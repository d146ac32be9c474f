package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"brandm-backend/models"
)

func TestProductFilterEmpty(t *testing.T) {
	assert.Empty(t, productFilter(models.ProductQuery{}))
}

func TestProductFilterMembershipPredicates(t *testing.T) {
	filter := productFilter(models.ProductQuery{
		Collection: "Summer",
		Category:   "Shirts",
		Sizes:      []string{"S", "M"},
		Colors:     []string{"Red"},
		Materials:  []string{"cotton"},
		Brands:     []string{"acme"},
		Gender:     "Men",
	})

	assert.Equal(t, "Summer", filter["collections"])
	assert.Equal(t, "Shirts", filter["category"])
	assert.Equal(t, bson.M{"$in": []string{"S", "M"}}, filter["sizes"])
	assert.Equal(t, bson.M{"$in": []string{"Red"}}, filter["colors"])
	assert.Equal(t, bson.M{"$in": []string{"cotton"}}, filter["material"])
	assert.Equal(t, bson.M{"$in": []string{"acme"}}, filter["brand"])
	assert.Equal(t, "Men", filter["gender"])
}

func TestProductFilterPriceBounds(t *testing.T) {
	min, max := 10.0, 50.0

	filter := productFilter(models.ProductQuery{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["price"])

	filter = productFilter(models.ProductQuery{MinPrice: &min})
	assert.Equal(t, bson.M{"$gte": 10.0}, filter["price"])

	filter = productFilter(models.ProductQuery{MaxPrice: &max})
	assert.Equal(t, bson.M{"$lte": 50.0}, filter["price"])
}

func TestProductFilterSearchMatchesNameOrDescription(t *testing.T) {
	filter := productFilter(models.ProductQuery{Search: "linen"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "linen", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"description": bson.M{"$regex": "linen", "$options": "i"}}, or[1])
}

func TestProductSortKeys(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, productSort(models.ProductQuery{SortBy: models.SortPriceAsc}))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, productSort(models.ProductQuery{SortBy: models.SortPriceDesc}))
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, productSort(models.ProductQuery{SortBy: models.SortPopularity}))
	assert.Nil(t, productSort(models.ProductQuery{SortBy: "newest"}))
	assert.Nil(t, productSort(models.ProductQuery{}))
}

func TestProductUpdateDocOnlySetsProvidedFields(t *testing.T) {
	name := "Linen Shirt v2"
	price := 25.0
	published := true

	set := productUpdateDoc(models.UpdateProductRequest{
		Name:        &name,
		Price:       &price,
		IsPublished: &published,
	})
	assert.Equal(t, bson.M{"name": "Linen Shirt v2", "price": 25.0, "isPublished": true}, set)

	assert.Empty(t, productUpdateDoc(models.UpdateProductRequest{}))
}

func TestUserUpdateDocOnlySetsProvidedFields(t *testing.T) {
	email := "new@example.com"
	role := models.RoleAdmin

	set := userUpdateDoc(models.UpdateUserRequest{Email: &email, Role: &role})
	assert.Equal(t, bson.M{"email": "new@example.com", "role": "admin"}, set)

	assert.Empty(t, userUpdateDoc(models.UpdateUserRequest{}))
}
