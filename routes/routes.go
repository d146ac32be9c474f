package routes

import (
	"github.com/gorilla/mux"

	"brandm-backend/controllers"
	"brandm-backend/middleware"
	"brandm-backend/utils"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Products    *controllers.ProductController
	Cart        *controllers.CartController
	Checkout    *controllers.CheckoutController
	Orders      *controllers.OrderController
	AdminOrders *controllers.AdminOrderController
	Users       *controllers.UserController
	Upload      *controllers.UploadController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, tokens *utils.TokenIssuer, c Controllers) {
	router.Use(middleware.RequestID)
	auth := middleware.Auth(tokens)

	// Public routes
	router.HandleFunc("/auth/register", c.Auth.Register).Methods("POST")
	router.HandleFunc("/auth/login", c.Auth.Login).Methods("POST")

	router.HandleFunc("/products", c.Products.ListProducts).Methods("GET")
	router.HandleFunc("/products/similar/{id}", c.Products.SimilarProducts).Methods("GET")
	router.HandleFunc("/products/{id}", c.Products.GetProduct).Methods("GET")

	// Authenticated user routes
	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(auth)
	cart.HandleFunc("", c.Cart.GetCart).Methods("GET")
	cart.HandleFunc("", c.Cart.AddToCart).Methods("POST")
	cart.HandleFunc("", c.Cart.UpdateCartItem).Methods("PUT")
	cart.HandleFunc("", c.Cart.RemoveFromCart).Methods("DELETE")

	checkout := router.PathPrefix("/checkout").Subrouter()
	checkout.Use(auth)
	checkout.HandleFunc("/create-checkout-session", c.Checkout.CreateCheckout).Methods("POST")
	checkout.HandleFunc("/verify-payment", c.Checkout.VerifyPayment).Methods("POST")

	order := router.PathPrefix("/order").Subrouter()
	order.Use(auth)
	order.HandleFunc("/my-orders", c.Orders.MyOrders).Methods("GET")
	order.HandleFunc("/{id}", c.Orders.OrderDetails).Methods("GET")

	me := router.PathPrefix("/users/me").Subrouter()
	me.Use(auth)
	me.HandleFunc("", c.Users.Me).Methods("GET")
	me.HandleFunc("", c.Users.UpdateMe).Methods("PATCH")

	// Admin routes
	checkoutAdmin := router.PathPrefix("/checkout").Subrouter()
	checkoutAdmin.Use(auth, middleware.AdminOnly)
	checkoutAdmin.HandleFunc("/{id}", c.Checkout.UpdateCheckout).Methods("PATCH")
	checkoutAdmin.HandleFunc("/{id}/finalize", c.Checkout.FinalizeCheckout).Methods("POST")

	productAdmin := router.PathPrefix("/products").Subrouter()
	productAdmin.Use(auth, middleware.AdminOnly)
	productAdmin.HandleFunc("", c.Products.CreateProduct).Methods("POST")
	productAdmin.HandleFunc("/{id}", c.Products.UpdateProduct).Methods("PATCH")
	productAdmin.HandleFunc("/{id}", c.Products.DeleteProduct).Methods("DELETE")

	adminOrders := router.PathPrefix("/admin/admin-orders").Subrouter()
	adminOrders.Use(auth, middleware.AdminOnly)
	adminOrders.HandleFunc("", c.AdminOrders.ListOrders).Methods("GET")
	adminOrders.HandleFunc("/{id}", c.AdminOrders.UpdateOrderStatus).Methods("PATCH")
	adminOrders.HandleFunc("/{id}", c.AdminOrders.DeleteOrder).Methods("DELETE")

	users := router.PathPrefix("/users").Subrouter()
	users.Use(auth, middleware.AdminOnly)
	users.HandleFunc("", c.Users.ListUsers).Methods("GET")
	users.HandleFunc("", c.Users.CreateUser).Methods("POST")
	users.HandleFunc("/{id}", c.Users.GetUser).Methods("GET")
	users.HandleFunc("/{id}", c.Users.UpdateUser).Methods("PATCH")
	users.HandleFunc("/{id}", c.Users.DeleteUser).Methods("DELETE")

	upload := router.PathPrefix("/upload").Subrouter()
	upload.Use(auth, middleware.AdminOnly)
	upload.HandleFunc("/product-image", c.Upload.UploadProductImage).Methods("POST")
	upload.HandleFunc("/product-images", c.Upload.UploadProductImages).Methods("POST")
	upload.HandleFunc("/image/{publicId}", c.Upload.DeleteImage).Methods("DELETE")
}
