package handler

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	user, err := helper.GetUserByUsername(loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("password does not match username"))
	}

	// Deactivated accounts never authenticate, even with valid credentials.
	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ACCOUNT_NOT_ACTIVE, errors.New("account deactivated"))
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": fiber.Map{
			"id":           user.ID,
			"username":     user.Username,
			"role":         user.Role,
			"firstName":    user.FirstName,
			"lastName":     user.LastName,
			"isSuperAdmin": user.IsSuperAdmin,
		},
		"token": token,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("refresh token not found"))
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid token claims"))
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid userId in payload"))
	}
	username, ok := claims["username"].(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("invalid username in payload"))
	}

	user, err := helper.GetUserByUsername(username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil || user.ID != uint(userIdFloat) || !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("account unavailable"))
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newAccessToken,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    newRefreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Refresh success",
		"token":   newAccessToken,
	})
}

func Me(c *fiber.Ctx) error {
	user := helper.CurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED, errors.New("not authenticated"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
