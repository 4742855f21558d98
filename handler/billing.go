package handler

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTableBill previews the bill for every unpaid order on the table.
// Nothing is persisted; the cashier confirms with PayTable.
func GetTableBill(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var orders model.Orders
	if err := database.DB.Preload("Items").
		Where("table_id = ? AND paid = ?", table.ID, false).
		Order("created_at").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(orders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_UNPAID_ORDERS, errors.New("nothing to bill"))
	}

	var items []model.OrderItem
	for _, order := range orders {
		items = append(items, order.Items...)
	}
	totals := helper.CalculateBill(items, 0)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tableId": table.ID,
		"orders":  orders,
		"totals":  totals,
	})
}

// PayTable settles every unpaid order on the table in one stroke: the
// orders flip to paid, a bill snapshot is persisted and the table is
// released back to available.
func PayTable(c *fiber.Ctx) error {
	tableId := c.Locals("tableId").(int)
	input := c.Locals("payInput").(model.PayTableInput)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var orders model.Orders
	if err := database.DB.Preload("Items").
		Where("table_id = ? AND paid = ?", table.ID, false).
		Order("created_at").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(orders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_UNPAID_ORDERS, errors.New("nothing to bill"))
	}

	var items []model.OrderItem
	for _, order := range orders {
		items = append(items, order.Items...)
	}
	totals := helper.CalculateBill(items, input.Discount)

	now := time.Now()
	for i := range orders {
		orders[i].Paid = true
		orders[i].PaidAt = &now
		orders[i].PaymentMethod = input.Method
		if err := database.DB.Save(&orders[i]).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	bill := model.Bill{
		TableID:       table.ID,
		Orders:        orders,
		Subtotal:      totals.Subtotal,
		ServiceCharge: totals.ServiceCharge,
		GST:           totals.GST,
		Discount:      totals.Discount,
		GrandTotal:    totals.GrandTotal,
		PaymentMethod: input.Method,
		Paid:          true,
	}
	if err := database.DB.Create(&bill).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	table.Clear(now)
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payload := fiber.Map{"tableId": table.ID, "billId": bill.ID, "method": input.Method, "grandTotal": bill.GrandTotal}
	hub.BroadcastToTable(table.ID, constants.EVENT_BILL_PAID, payload)
	for _, role := range []string{constants.ROLE_CASHIER, constants.ROLE_WAITER, constants.ROLE_ADMIN} {
		hub.BroadcastToRole(role, constants.EVENT_BILL_PAID, payload)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

func GetBills(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Bill{})

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, pagination.Limit, pagination.Page)
	var bills model.Bills
	if err := db.Preload("Orders").Order("created_at DESC").Find(&bills).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bills,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}
