package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMenu(c *fiber.Ctx) error {
	filter := new(model.FilterMenu)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.MenuItem{})
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.IsAvailable != nil {
		db = db.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var items model.MenuItems
	if err := db.Order("category, name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetMenuItemById(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	input := c.Locals("createInput").(model.CreateMenuItemInput)

	item := model.MenuItem{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		Category:        input.Category,
		Image:           input.Image,
		SpicyLevel:      input.SpicyLevel,
		IsAvailable:     true,
		PreparationTime: input.PreparationTime,
		CreatedBy:       &actor.ID,
	}
	if input.IsVegetarian != nil {
		item.IsVegetarian = *input.IsVegetarian
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastGlobal(constants.EVENT_MENU_UPDATE, fiber.Map{"action": "create", "item": item})

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	itemId := c.Locals("itemId").(int)
	input := c.Locals("updateInput").(model.UpdateMenuItemInput)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.IsVegetarian != nil {
		item.IsVegetarian = *input.IsVegetarian
	}
	if input.SpicyLevel != nil {
		item.SpicyLevel = *input.SpicyLevel
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.PreparationTime != nil {
		item.PreparationTime = *input.PreparationTime
	}
	item.LastModifiedBy = &actor.ID

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastGlobal(constants.EVENT_MENU_UPDATE, fiber.Map{"action": "update", "item": item})

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastGlobal(constants.EVENT_MENU_UPDATE, fiber.Map{"action": "delete", "itemId": item.ID})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Menu item deleted"})
}

func ToggleMenuItemAvailability(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	itemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	item.IsAvailable = !item.IsAvailable
	item.LastModifiedBy = &actor.ID
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastGlobal(constants.EVENT_MENU_UPDATE, fiber.Map{"action": "availability-change", "item": item})

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
