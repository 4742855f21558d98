package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFeedbackInput
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
