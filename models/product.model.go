package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImage is an ordered catalog image.
type ProductImage struct {
	URL string `bson:"url" json:"url" validate:"required,url"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// Product is a catalog entry. Line items copy name/image/price at add time, so
// later edits here never rewrite historical carts or orders.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	DiscountPrice float64            `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Stock         int                `bson:"stock" json:"stock"`
	SKU           string             `bson:"sku" json:"sku"`
	Category      string             `bson:"category" json:"category"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors" json:"colors"`
	Collections   string             `bson:"collections" json:"collections"`
	Material      string             `bson:"material,omitempty" json:"material,omitempty"`
	Gender        string             `bson:"gender" json:"gender"` // Men, Women, Unisex
	Images        []ProductImage     `bson:"images" json:"images"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	IsPublished   bool               `bson:"isPublished" json:"isPublished"`
	Rating        float64            `bson:"rating" json:"rating"`
	NumReviews    int                `bson:"numReviews" json:"numReviews"`
	Tags          []string           `bson:"tags" json:"tags"`
	User          primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateProductRequest is the admin create payload.
type CreateProductRequest struct {
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description" validate:"required"`
	Price         float64        `json:"price" validate:"required,gt=0"`
	DiscountPrice float64        `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Stock         int            `json:"stock" validate:"gte=0"`
	SKU           string         `json:"sku" validate:"required"`
	Category      string         `json:"category" validate:"required"`
	Sizes         []string       `json:"sizes" validate:"required,min=1"`
	Colors        []string       `json:"colors" validate:"required,min=1"`
	Collections   string         `json:"collections" validate:"required"`
	Material      string         `json:"material,omitempty"`
	Gender        string         `json:"gender" validate:"required,oneof=Men Women Unisex"`
	Images        []ProductImage `json:"images" validate:"required,min=1,dive"`
	IsFeatured    bool           `json:"isFeatured,omitempty"`
	IsPublished   bool           `json:"isPublished,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
}

// UpdateProductRequest carries optional fields; nil means "leave unchanged".
type UpdateProductRequest struct {
	Name          *string         `json:"name,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Price         *float64        `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountPrice *float64        `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Stock         *int            `json:"stock,omitempty" validate:"omitempty,gte=0"`
	SKU           *string         `json:"sku,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Sizes         *[]string       `json:"sizes,omitempty"`
	Colors        *[]string       `json:"colors,omitempty"`
	Collections   *string         `json:"collections,omitempty"`
	Material      *string         `json:"material,omitempty"`
	Gender        *string         `json:"gender,omitempty" validate:"omitempty,oneof=Men Women Unisex"`
	Images        *[]ProductImage `json:"images,omitempty" validate:"omitempty,dive"`
	IsFeatured    *bool           `json:"isFeatured,omitempty"`
	IsPublished   *bool           `json:"isPublished,omitempty"`
	Rating        *float64        `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	NumReviews    *int            `json:"numReviews,omitempty" validate:"omitempty,gte=0"`
	Tags          *[]string       `json:"tags,omitempty"`
}

// Sort keys recognized by catalog queries. Anything else leaves natural order.
const (
	SortPriceAsc   = "priceAsc"
	SortPriceDesc  = "priceDesc"
	SortPopularity = "popularity"
)

// ProductQuery is the normalized form of the catalog filter parameters.
// Multi-valued filters are already split and trimmed; nil price bounds mean
// "unbounded".
type ProductQuery struct {
	Collection string
	Category   string
	Sizes      []string
	Colors     []string
	Materials  []string
	Brands     []string
	Gender     string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	SortBy     string
}
