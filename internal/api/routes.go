package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	users := app.Group("/users")
	users.Post("/register", handler.Register)
	users.Post("/login", handler.Login)
	users.Post("/logout", handler.AuthRequired, handler.Logout)
	users.Get("/profile", handler.AuthRequired, handler.Profile)
	users.Get("/check-auth", handler.CheckAuth)
	users.Get("/csrf", handler.CSRFToken)

	records := app.Group("/records", handler.AuthRequired)
	records.Get("", handler.ListRecords)
	records.Post("", handler.UpsertRecord)
	// Fixed paths are registered before the :id wildcard on purpose.
	records.Get("/home-stats", handler.HomeStats)
	records.Get("/ranking", handler.Ranking)
	records.Get("/:id", handler.GetRecord)
	records.Put("/:id", handler.UpdateRecord)
	records.Delete("/:id", handler.DeleteRecord)
}
