package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder is the guest flow: scan the table QR, pick items, place the
// order. Item resolution is all-or-nothing; prices and names are snapshotted
// so later menu edits never change this bill.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateOrderInput)

	var table model.Table
	if err := database.DB.Where("table_number = ?", input.TableNumber).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	items, err := helper.SnapshotOrderItems(input.Items, func(menuItemId uint) *model.MenuItem {
		var menuItem model.MenuItem
		if err := database.DB.First(&menuItem, menuItemId).Error; err != nil {
			return nil
		}
		return &menuItem
	})
	if err != nil {
		var notFound helper.ErrMenuItemNotFound
		if errors.As(err, &notFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MENU_ITEM_UNAVAILABLE, err)
	}

	order := model.Order{
		PublicCode: helper.NewOrderCode(),
		TableID:    table.ID,
		Items:      items,
		Status:     constants.ORDER_PENDING,
	}

	if err := database.DB.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// First order on a free table occupies it.
	if table.Occupy(order.ID) {
		if err := database.DB.Save(&table).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	for _, role := range []string{constants.ROLE_KITCHEN, constants.ROLE_WAITER, constants.ROLE_CASHIER, constants.ROLE_ADMIN} {
		hub.BroadcastToRole(role, constants.EVENT_ORDER_NEW, order)
	}
	hub.BroadcastToTable(table.ID, constants.EVENT_ORDER_NEW, order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Locals("orderId").(int)
	input := c.Locals("statusInput").(model.UpdateOrderStatusInput)

	var order model.Order
	if err := database.DB.Preload("Items").Preload("Table").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !order.CanTransition(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_STATUS_REGRESS,
			errors.New(order.Status+" -> "+input.Status))
	}

	order.Status = input.Status
	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastGlobal(constants.EVENT_ORDER_UPDATE, order)
	hub.BroadcastToTable(order.TableID, constants.EVENT_ORDER_UPDATE, order)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderById(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Preload("Items").Preload("Table").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var order model.Order
	if err := database.DB.Preload("Items").Preload("Table").Where("public_code = ?", code).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrders(c *fiber.Ctx) error {
	filter := new(model.FilterOrder)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.TableId != nil {
		db = db.Where("table_id = ?", *filter.TableId)
	}
	if filter.Paid != nil {
		db = db.Where("paid = ?", *filter.Paid)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders model.Orders
	if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}
