package main

import (
	"log"
	"os"
	"strings"

	"legacy/admin"
	"legacy/catalog"
	"legacy/condb"
	"legacy/content"
	"legacy/controllers"
	"legacy/routes"
	"legacy/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	allow := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(allow) == "" {
		allow = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	app.Static("/static", "./static")

	// nil database is fine: the store degrades and the site serves defaults
	gw := store.New(condb.Connect())

	gate := admin.NewGate(os.Getenv("ADMIN_PASSWORD"))
	if os.Getenv("ADMIN_PASSWORD") == "" {
		log.Println("ADMIN_PASSWORD not set, admin login disabled")
	}

	routes.RegisterRoutes(app, routes.Controllers{
		Products: &controllers.ProductController{Catalog: catalog.NewService(gw), Store: gw},
		Content:  &controllers.ContentController{Content: content.NewService(gw)},
		Orders:   &controllers.OrderController{Store: gw},
		Users:    &controllers.UserController{Store: gw},
		Auth:     &controllers.AuthController{Gate: gate},
		Gate:     gate,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
