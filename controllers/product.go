package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"brandm-backend/models"
	"brandm-backend/services"
	"brandm-backend/utils"
)

// ProductController handles catalog requests
type ProductController struct {
	catalog *services.CatalogService
}

// NewProductController creates a new ProductController
func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// ListProducts returns the catalog filtered by the request's query parameters
func (pc *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.catalog.Search(ctx, r.URL.Query())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by id
func (pc *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := pc.catalog.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// SimilarProducts returns products sharing the reference product's gender and
// category
func (pc *ProductController) SimilarProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := pc.catalog.Similar(ctx, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	owner, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := pc.catalog.Create(ctx, req, owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	product, err := pc.catalog.Update(ctx, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct handles removing a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := pc.catalog.Delete(ctx, id); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product removed"})
}
