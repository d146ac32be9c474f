package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/models"
	"brandm-backend/store"
)

// CartService maintains one active cart per user. Every mutation recomputes
// the persisted total.
type CartService struct {
	carts    CartStore
	products ProductStore
}

func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the owner's cart, creating an empty one on first access.
func (s *CartService) Get(ctx context.Context, owner primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, Internal("error fetching cart", err)
	}

	cart = &models.Cart{Owner: owner, Items: []models.CartItem{}, TotalAmount: 0}
	if err := s.carts.Insert(ctx, cart); err != nil {
		return nil, Internal("error creating cart", err)
	}
	return cart, nil
}

// Add puts quantity of a (product, size, color) variant into the cart. An
// existing line accumulates quantity; a new line snapshots the product's
// current name, first image and price.
func (s *CartService) Add(ctx context.Context, owner primitive.ObjectID, req models.AddToCartRequest) (*models.Cart, error) {
	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		return nil, Invalid("Invalid product id")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, Internal("error fetching product", err)
	}

	cart, err := s.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItem(productID, req.Size, req.Color); i >= 0 {
		cart.Items[i].Quantity += req.Quantity
	} else {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0].URL
		}
		cart.Items = append(cart.Items, models.CartItem{
			Product:  productID,
			Name:     product.Name,
			Image:    image,
			Price:    product.Price,
			Size:     req.Size,
			Color:    req.Color,
			Quantity: req.Quantity,
		})
	}

	cart.RecalculateTotal()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, Internal("error updating cart", err)
	}
	return cart, nil
}

// UpdateItem sets the quantity of an existing line. Quantities below one are
// rejected without mutating the cart.
func (s *CartService) UpdateItem(ctx context.Context, owner primitive.ObjectID, req models.UpdateCartRequest) (*models.Cart, error) {
	cart, i, err := s.findLine(ctx, owner, req)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		return nil, Invalid("Quantity must be greater than 0")
	}

	cart.Items[i].Quantity = req.Quantity
	cart.RecalculateTotal()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, Internal("error updating cart", err)
	}
	return cart, nil
}

// RemoveItem deletes an existing line.
func (s *CartService) RemoveItem(ctx context.Context, owner primitive.ObjectID, req models.UpdateCartRequest) (*models.Cart, error) {
	cart, i, err := s.findLine(ctx, owner, req)
	if err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	cart.RecalculateTotal()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, Internal("error updating cart", err)
	}
	return cart, nil
}

func (s *CartService) findLine(ctx context.Context, owner primitive.ObjectID, req models.UpdateCartRequest) (*models.Cart, int, error) {
	productID, err := primitive.ObjectIDFromHex(req.Product)
	if err != nil {
		return nil, 0, Invalid("Invalid product id")
	}

	cart, err := s.Get(ctx, owner)
	if err != nil {
		return nil, 0, err
	}

	i := cart.FindItem(productID, req.Size, req.Color)
	if i < 0 {
		return nil, 0, NotFound("Item not found in cart")
	}
	return cart, i, nil
}
