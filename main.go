package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"brandm-backend/config"
	"brandm-backend/controllers"
	"brandm-backend/media"
	"brandm-backend/payment"
	"brandm-backend/routes"
	"brandm-backend/services"
	"brandm-backend/store"
	"brandm-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := store.New(client, cfg.MongoDatabase)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	var uploader media.Uploader
	if cfg.CloudinaryCloudName != "" {
		uploader, err = media.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
	} else {
		log.Println("Cloudinary credentials not set. Image uploads are disabled.")
	}

	var mailer services.Mailer
	if cfg.PostmarkServerToken != "" {
		mailer = utils.NewEmailService(cfg.PostmarkServerToken, cfg.EmailSender)
	} else {
		log.Println("Postmark token not set. Order confirmation emails are disabled.")
	}

	authService := services.NewAuthService(db.Users, tokens)
	catalogService := services.NewCatalogService(db.Products)
	cartService := services.NewCartService(db.Carts, db.Products)
	checkoutService := services.NewCheckoutService(db.Checkouts, db.Orders, db.Carts, gateway, mailer, cfg.FrontendURL)
	orderService := services.NewOrderService(db.Orders)
	adminOrderService := services.NewAdminOrderService(db.Orders, db.Users)
	userService := services.NewUserService(db.Users)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, tokens, routes.Controllers{
		Auth:        controllers.NewAuthController(authService),
		Products:    controllers.NewProductController(catalogService),
		Cart:        controllers.NewCartController(cartService),
		Checkout:    controllers.NewCheckoutController(checkoutService),
		Orders:      controllers.NewOrderController(orderService),
		AdminOrders: controllers.NewAdminOrderController(adminOrderService),
		Users:       controllers.NewUserController(userService),
		Upload:      controllers.NewUploadController(uploader),
	})

	handler := handlers.RecoveryHandler()(
		handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Request-ID"}),
		)(handlers.LoggingHandler(os.Stdout, router)),
	)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
