package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brandm-backend/models"
)

// ProductStore persists catalog entries.
type ProductStore struct {
	collection *mongo.Collection
}

func (s *ProductStore) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *ProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *ProductStore) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := s.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&product); err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *ProductStore) Search(ctx context.Context, query models.ProductQuery) ([]models.Product, error) {
	findOptions := options.Find()
	if sort := productSort(query); sort != nil {
		findOptions.SetSort(sort)
	}

	cursor, err := s.collection.Find(ctx, productFilter(query), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) FindSimilar(ctx context.Context, product *models.Product, limit int64) ([]models.Product, error) {
	filter := bson.M{
		"_id":      bson.M{"$ne": product.ID},
		"gender":   product.Gender,
		"category": product.Category,
	}
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Update(ctx context.Context, id primitive.ObjectID, upd models.UpdateProductRequest) (*models.Product, error) {
	set := productUpdateDoc(upd)
	set["updatedAt"] = time.Now()
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// productFilter translates a normalized catalog query into a document filter.
// Multi-valued filters become membership predicates; price bounds are
// inclusive; search matches name or description case-insensitively.
func productFilter(query models.ProductQuery) bson.M {
	filter := bson.M{}

	if query.Collection != "" {
		filter["collections"] = query.Collection
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if len(query.Sizes) > 0 {
		filter["sizes"] = bson.M{"$in": query.Sizes}
	}
	if len(query.Colors) > 0 {
		filter["colors"] = bson.M{"$in": query.Colors}
	}
	if len(query.Materials) > 0 {
		filter["material"] = bson.M{"$in": query.Materials}
	}
	if len(query.Brands) > 0 {
		filter["brand"] = bson.M{"$in": query.Brands}
	}
	if query.Gender != "" {
		filter["gender"] = query.Gender
	}

	if query.MinPrice != nil || query.MaxPrice != nil {
		price := bson.M{}
		if query.MinPrice != nil {
			price["$gte"] = *query.MinPrice
		}
		if query.MaxPrice != nil {
			price["$lte"] = *query.MaxPrice
		}
		filter["price"] = price
	}

	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	return filter
}

// productSort maps the recognized sort keys; anything else keeps natural
// order.
func productSort(query models.ProductQuery) bson.D {
	switch query.SortBy {
	case models.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case models.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case models.SortPopularity:
		return bson.D{{Key: "rating", Value: -1}}
	default:
		return nil
	}
}

// productUpdateDoc maps the non-nil request fields onto a $set document.
func productUpdateDoc(upd models.UpdateProductRequest) bson.M {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.DiscountPrice != nil {
		set["discountPrice"] = *upd.DiscountPrice
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.SKU != nil {
		set["sku"] = *upd.SKU
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Sizes != nil {
		set["sizes"] = *upd.Sizes
	}
	if upd.Colors != nil {
		set["colors"] = *upd.Colors
	}
	if upd.Collections != nil {
		set["collections"] = *upd.Collections
	}
	if upd.Material != nil {
		set["material"] = *upd.Material
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.IsFeatured != nil {
		set["isFeatured"] = *upd.IsFeatured
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.NumReviews != nil {
		set["numReviews"] = *upd.NumReviews
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	return set
}
