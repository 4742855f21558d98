package validate

import (
	"errors"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateMenuItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("itemId", itemId)
		c.Locals("updateInput", input)
		return c.Next()
	}
}
