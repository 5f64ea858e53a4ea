package routes

import (
	"KhajaGhar-Backend/internal/api/handlers"
	"KhajaGhar-Backend/internal/middleware"
	"KhajaGhar-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	MenuHandler  handlers.MenuHandler
	CartHandler  handlers.CartHandler
	OrderHandler handlers.OrderHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menu()
	c.Cart()
	c.Orders()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")

	menu.Get("", c.MenuHandler.GetMenuItems)

	// Admin-only catalog management; registered before GET /:id so "image"
	// is not captured as an item id.
	admin := menu.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.OnlyAdmin())
	admin.Post("", c.MenuHandler.AddMenuItem)
	admin.Post("/image", c.MenuHandler.UploadMenuImage)
	admin.Put("/:id", c.MenuHandler.UpdateMenuItem)
	admin.Delete("/:id", c.MenuHandler.DeleteMenuItem)

	menu.Get("/:id", c.MenuHandler.GetMenuItemDetails)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Post("", c.CartHandler.AddItem)
	cart.Get("/summary", c.CartHandler.GetSummary)
	cart.Get("", c.CartHandler.GetCart)
	cart.Patch("/:id", c.CartHandler.UpdateQuantity)
	cart.Delete("", c.CartHandler.Clear)
	cart.Delete("/:id", c.CartHandler.RemoveLine)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Post("", c.OrderHandler.PlaceOrder)
	orders.Get("", c.OrderHandler.GetOrders)
	orders.Get("/:id", c.OrderHandler.GetOrderDetails)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.OrderHandler.MidtransWebhookHandler)
}
