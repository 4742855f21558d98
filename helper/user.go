package helper

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser returns the authenticated account stored by
// middleware.Protected, or nil on public routes.
func CurrentUser(c *fiber.Ctx) *model.User {
	u := c.Locals("user")
	if u == nil {
		return nil
	}
	user, ok := u.(*model.User)
	if !ok {
		return nil
	}
	return user
}
