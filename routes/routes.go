package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"vecino-activo/handler"
	"vecino-activo/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.ChatHandler
	*handler.EventHandler
	*handler.ServiceHandler
	*handler.PostHandler
	*handler.AlertHandler
	*handler.NeighborhoodHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api")

	app.Post("/auth/register", rc.AuthHandler.Register)
	app.Post("/auth/login", rc.AuthHandler.Login)

	app.Get("/services", rc.ServiceHandler.List)
	app.Get("/services/:id", rc.ServiceHandler.Get)

	app.Get("/events", rc.EventHandler.List)
	app.Get("/events/:id", rc.EventHandler.Get)
	app.Get("/events/:id/attendees", rc.EventHandler.Attendees)

	app.Get("/posts", rc.PostHandler.List)

	app.Get("/alerts", rc.AlertHandler.List)

	app.Get("/neighborhoods", rc.NeighborhoodHandler.List)
	app.Get("/neighborhoods/:id", rc.NeighborhoodHandler.Get)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUser)

	app.Get("/chat/rooms", rc.ChatHandler.ListRooms)
	app.Post("/chat/rooms", rc.ChatHandler.CreateRoom)
	app.Get("/chat/rooms/:id/messages", rc.ChatHandler.ListMessages)
	app.Post("/chat/rooms/:id/messages", rc.ChatHandler.PostMessage)

	app.Post("/services", rc.ServiceHandler.Create)

	app.Post("/events", rc.EventHandler.Create)
	app.Post("/events/:id/attend", rc.EventHandler.Attend)
	app.Delete("/events/:id/attend", rc.EventHandler.Unattend)

	app.Post("/posts", rc.PostHandler.Create)

	app.Post("/alerts", rc.AlertHandler.Create)
	app.Post("/alerts/:id/resolve", rc.AlertHandler.Resolve)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
