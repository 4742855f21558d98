package router

import (
	"restaurant_manager/constants"
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	users := v1.Group("/users", logger.New())
	users.Get("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), handler.GetUsers)
	users.Post("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), validate.CreateUser(), handler.CreateUser)
	users.Put("/:userId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), validate.UpdateUser("userId"), handler.UpdateUser)
	users.Delete("/:userId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), validate.GetById("userId"), handler.DeleteUser)

	// Guests browse the menu from the QR landing page, so reads are public.
	menu := v1.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)
	menu.Get("/:itemId", validate.GetById("itemId"), handler.GetMenuItemById)
	menu.Post("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:itemId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.UpdateMenuItem("itemId"), handler.UpdateMenuItem)
	menu.Delete("/:itemId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.GetById("itemId"), handler.DeleteMenuItem)
	menu.Patch("/:itemId/availability", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.GetById("itemId"), handler.ToggleMenuItemAvailability)

	tables := v1.Group("/tables", logger.New())
	tables.Get("/", middleware.Protected(), handler.GetTables)
	tables.Get("/stats/daily", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), handler.GetDailyTableStats)
	tables.Get("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.GetTableById)
	tables.Post("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.CreateTable(), handler.CreateTable)
	tables.Put("/:tableId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.UpdateTable("tableId"), handler.UpdateTable)
	tables.Delete("/:tableId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN), validate.GetById("tableId"), handler.DeleteTable)
	tables.Patch("/:tableId/assign-waiter", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.AssignWaiter("tableId"), handler.AssignWaiter)
	tables.Post("/:tableId/report-issue", middleware.Protected(), validate.ReportIssue("tableId"), handler.ReportIssue)
	tables.Patch("/maintenance/:entryId/resolve", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), validate.ResolveIssue("entryId"), handler.ResolveIssue)
	tables.Patch("/:tableId/clear", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER, constants.ROLE_WAITER, constants.ROLE_CASHIER), validate.GetById("tableId"), handler.ClearTable)
	tables.Post("/:tableId/reservations", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER, constants.ROLE_STAFF), validate.CreateReservation("tableId"), handler.CreateReservation)
	tables.Delete("/reservations/:reservationId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER, constants.ROLE_STAFF), validate.GetById("reservationId"), handler.CancelReservation)

	orders := v1.Group("/orders", logger.New())
	orders.Post("/", validate.CreateOrder(), handler.CreateOrder)
	orders.Get("/code/:code", handler.GetOrderByCode)
	orders.Get("/", middleware.Protected(), handler.GetOrders)
	orders.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	orders.Patch("/:orderId/status", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_KITCHEN, constants.ROLE_WAITER, constants.ROLE_CASHIER), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)

	billing := v1.Group("/billing", logger.New())
	billing.Get("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_CASHIER), handler.GetBills)
	billing.Get("/table/:tableId", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_CASHIER, constants.ROLE_WAITER), validate.GetById("tableId"), handler.GetTableBill)
	billing.Post("/table/:tableId/pay", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_CASHIER), validate.PayTable("tableId"), handler.PayTable)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Post("/", validate.CreateFeedback(), handler.CreateFeedback)
	feedback.Get("/", middleware.Protected(), middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_MANAGER), handler.GetFeedback)

	v1.Get("/ws", middleware.MaybeAuthenticated(), middleware.WebsocketUpgrade(), websocket.New(handler.ServeWebsocket))
}
