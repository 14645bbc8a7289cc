package routes

import (
	"legacy/admin"
	"legacy/controllers"
	"legacy/middleware"

	"github.com/gofiber/fiber/v2"
)

type Controllers struct {
	Products *controllers.ProductController
	Content  *controllers.ContentController
	Orders   *controllers.OrderController
	Users    *controllers.UserController
	Auth     *controllers.AuthController
	Gate     *admin.Gate
}

func RegisterRoutes(app *fiber.App, ctl Controllers) {

	app.Get("/api/health", controllers.Health)

	// storefront
	app.Get("/api/products", ctl.Products.GetProducts)
	app.Get("/api/products/:id", ctl.Products.GetProductByID)
	app.Get("/api/categories", ctl.Products.GetCategories)
	app.Get("/api/about", ctl.Content.GetAbout)
	app.Get("/api/rules", ctl.Content.GetRules)
	app.Get("/api/social", ctl.Content.GetSocial)

	// orders
	app.Post("/api/orders", ctl.Orders.CreateOrder)
	app.Get("/api/orders", ctl.Orders.GetUserOrders)

	// profiles
	app.Get("/api/users/:id", ctl.Users.GetUserProfile)
	app.Put("/api/users/:id", ctl.Users.UpdateUserProfile)

	// admin
	app.Post("/api/login", ctl.Auth.Login)

	adm := app.Group("/api/admin", middleware.AdminGate(ctl.Gate))
	adm.Post("/logout", ctl.Auth.Logout)
	adm.Post("/products", ctl.Products.AddProduct)
	adm.Put("/products/:id", ctl.Products.UpdateProduct)
	adm.Delete("/products/:id", ctl.Products.DeleteProduct)
	adm.Put("/about", ctl.Content.SaveAbout)
	adm.Put("/rules", ctl.Content.SaveRules)
	adm.Put("/social", ctl.Content.SaveSocial)
	adm.Post("/upload", controllers.UploadImage)
	adm.Delete("/upload/*", controllers.DeleteImage)

	// client-visible pages: the site shell handles routing itself
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/home", fiber.StatusFound)
	})
	for _, page := range []string{"/home", "/products", "/about", "/admin"} {
		app.Get(page, func(c *fiber.Ctx) error {
			return c.SendFile("./static/index.html")
		})
	}
}
