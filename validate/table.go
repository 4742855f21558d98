package validate

import (
	"errors"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
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

func UpdateTable(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("tableId", tableId)
		c.Locals("updateInput", input)
		return c.Next()
	}
}

func AssignWaiter(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.AssignWaiterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("tableId", tableId)
		c.Locals("assignInput", input)
		return c.Next()
	}
}

func ReportIssue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.ReportIssueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("tableId", tableId)
		c.Locals("issueInput", input)
		return c.Next()
	}
}

func ResolveIssue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entryId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Notes are optional, so an empty body is fine.
		var input model.ResolveIssueInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
			}
			if err := validate.Struct(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
			}
		}

		c.Locals("entryId", entryId)
		c.Locals("resolveInput", input)
		return c.Next()
	}
}

func CreateReservation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tableId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
		}
		start, err := time.Parse(time.RFC3339, input.StartTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "startTime must be RFC3339", err)
		}
		end, err := time.Parse(time.RFC3339, input.EndTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endTime must be RFC3339", err)
		}
		if !end.After(start) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endTime must be after startTime", errors.New("empty window"))
		}

		c.Locals("tableId", tableId)
		c.Locals("reservationInput", model.Reservation{
			Date:            date,
			StartTime:       start,
			EndTime:         end,
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			CustomerEmail:   input.CustomerEmail,
			GuestCount:      input.GuestCount,
			Status:          constants.RESERVATION_CONFIRMED,
			SpecialRequests: input.SpecialRequests,
		})
		return c.Next()
	}
}
