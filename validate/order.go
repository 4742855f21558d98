package validate

import (
	"errors"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_DATA, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_DATA, err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.STATUS_REQUIRED, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.STATUS_REQUIRED, err)
		}
		if !model.ValidOrderStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, errors.New("status "+input.Status))
		}

		c.Locals("orderId", orderId)
		c.Locals("statusInput", input)
		return c.Next()
	}
}

func PayTable(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.PayTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_METHOD, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_METHOD, err)
		}

		c.Locals("tableId", tableId)
		c.Locals("payInput", input)
		return c.Next()
	}
}
