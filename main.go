package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Shahriar1638/Biznest-sub001/configs"
	adminController "github.com/Shahriar1638/Biznest-sub001/controllers/admin"
	cartController "github.com/Shahriar1638/Biznest-sub001/controllers/cart"
	checkoutController "github.com/Shahriar1638/Biznest-sub001/controllers/checkout"
	productController "github.com/Shahriar1638/Biznest-sub001/controllers/products"
	supportController "github.com/Shahriar1638/Biznest-sub001/controllers/support"
	userController "github.com/Shahriar1638/Biznest-sub001/controllers/user"
	"github.com/Shahriar1638/Biznest-sub001/middlewares"
	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/routes"
	"github.com/Shahriar1638/Biznest-sub001/services"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		panic(err)
	}
	log := configs.NewLogger(cfg.LogLevel)

	mongoClient, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Msg("connected to MongoDB")

	redisClient, err := configs.ConnectRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	users := stores.NewMongoUserStore(configs.GetCollection(mongoClient, cfg, "users"))
	products := stores.NewMongoProductStore(configs.GetCollection(mongoClient, cfg, "products"))
	carts := stores.NewMongoCartStore(configs.GetCollection(mongoClient, cfg, "carts"))
	payments := stores.NewMongoPaymentStore(configs.GetCollection(mongoClient, cfg, "payments"))
	contacts := stores.NewMongoContactStore(configs.GetCollection(mongoClient, cfg, "contacts"))
	sessions := stores.NewRedisSessionStore(redisClient)

	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	cartService := services.NewCartService(users, products, carts,
		services.DuplicatePolicy(cfg.CartDuplicatePolicy), log)
	checkoutService := services.NewCheckoutService(users, products, carts, payments,
		gateway, cfg.ShippingFlatRate, cfg.Currency, log)
	moderationService := services.NewModerationService(products, users, log)
	supportService := services.NewSupportService(contacts, log)

	auth := middlewares.Auth(cfg.JWTSecret, sessions)
	adminOnly := middlewares.RequireRole(users, models.RoleAdmin)
	customerOnly := middlewares.RequireRole(users, models.RoleCustomer)
	sellerOnly := middlewares.RequireRole(users, models.RoleSeller)

	app := fiber.New()
	app.Use(recover.New())

	routes.UserRoute(app, auth, customerOnly, &userController.Controller{
		Users:     users,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Log:       log,
	})
	routes.ProductsRoute(app, auth, customerOnly, sellerOnly, &productController.Controller{
		Products: products,
		Log:      log,
	})
	routes.CartRoutes(app, auth, customerOnly, &cartController.Controller{
		Cart: cartService,
	})
	routes.CheckoutRoutes(app, auth, customerOnly, &checkoutController.Controller{
		Checkout: checkoutService,
		KeyId:    cfg.RazorpayKeyID,
	})
	routes.AdminRoutes(app, auth, adminOnly, &adminController.Controller{
		Moderation: moderationService,
		Users:      users,
		Log:        log,
	})
	routes.SupportRoutes(app, auth, adminOnly, &supportController.Controller{
		Support: supportService,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting HTTP server")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
