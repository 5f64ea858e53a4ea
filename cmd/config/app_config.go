package config

import (
	"KhajaGhar-Backend/internal/api/handlers"
	"KhajaGhar-Backend/internal/api/routes"
	"KhajaGhar-Backend/internal/middleware"
	"KhajaGhar-Backend/internal/utils"
	"KhajaGhar-Backend/internal/utils/storage"
	"KhajaGhar-Backend/pkg/cart"
	"KhajaGhar-Backend/pkg/jwt"
	"KhajaGhar-Backend/pkg/menu"
	"KhajaGhar-Backend/pkg/order"
	"KhajaGhar-Backend/pkg/payment"
	"KhajaGhar-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kathmandu",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	cartService := cart.NewCartService(cartRepository, menuRepository)
	paymentService := payment.NewPaymentService()
	orderService := order.NewOrderService(orderRepository, cartService, userService, paymentService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		MenuHandler:  menuHandler,
		CartHandler:  cartHandler,
		OrderHandler: orderHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
