package middleware

import (
	"errors"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected resolves the bearer credential to an active account and stores
// it in Locals. The deactivation check runs on every request, not only at
// token issuance.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		claims, ok := jwtToken.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid claims"))
		}
		userIdFloat, ok := claims["userId"].(float64)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid userId in payload"))
		}

		var user model.User
		if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		if !user.IsActive {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE, errors.New("account deactivated"))
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// RequireRoles gates a route on the role list; the superadmin bypass inside
// helper.Authorize applies before the list is consulted.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := helper.CurrentUser(c)
		if user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED, errors.New("not authenticated"))
		}
		if !helper.Authorize(user, roles...) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("role "+user.Role+" is not in the allowed set"))
		}
		return c.Next()
	}
}

// MaybeAuthenticated resolves a credential when one is presented but lets
// anonymous requests through. The realtime endpoint uses it: guests connect
// without an account, staff connect with one.
func MaybeAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return c.Next()
		}
		claims, ok := jwtToken.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}
		userIdFloat, ok := claims["userId"].(float64)
		if !ok {
			return c.Next()
		}

		var user model.User
		if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
			return c.Next()
		}
		if !user.IsActive {
			return c.Next()
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// WebsocketUpgrade rejects plain HTTP requests on the realtime endpoint.
func WebsocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
