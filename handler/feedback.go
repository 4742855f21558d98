package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback is public: guests submit straight from the post-meal page.
func CreateFeedback(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateFeedbackInput)

	feedback := model.Feedback{
		TableNumber: input.TableNumber,
		Name:        input.Name,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

func GetFeedback(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Feedback{})

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, pagination.Limit, pagination.Page)
	var feedback []model.Feedback
	if err := db.Order("created_at DESC").Find(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       feedback,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}
