package handler

import (
	"errors"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTables(c *fiber.Ctx) error {
	filter := new(model.FilterTable)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Table{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Section != nil {
		db = db.Where("section = ?", *filter.Section)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var tables model.Tables
	if err := db.Preload("Waiter").Preload("CurrentOrder.Items").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       tables,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetTableById(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.
		Preload("Waiter").
		Preload("CurrentOrder.Items").
		Preload("Reservations").
		Preload("MaintenanceLog").
		First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateTableInput)

	var count int64
	database.DB.Model(&model.Table{}).Where("table_number = ?", input.TableNumber).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, errors.New("table number taken"))
	}

	table := model.Table{
		TableNumber:   input.TableNumber,
		Capacity:      input.Capacity,
		Status:        constants.TABLE_AVAILABLE,
		Section:       input.Section,
		CurrentGuests: input.CurrentGuests,
		IsActive:      true,
	}
	if table.Section == "" {
		table.Section = constants.SECTION_INDOOR
	}

	if err := table.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.GUESTS_EXCEED_CAPACITY, err)
	}

	baseUrl := config.ConfigDefault("FRONTEND_URL", "http://localhost:5173")
	qr, err := utils.GenerateTableQR(table.TableNumber, baseUrl)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	table.QRCode = qr

	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_CREATED, table)

	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func UpdateTable(c *fiber.Ctx) error {
	tableId := c.Locals("tableId").(int)
	input := c.Locals("updateInput").(model.UpdateTableInput)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	// A changed table number invalidates the printed QR payload.
	if input.TableNumber != nil && *input.TableNumber != table.TableNumber {
		var count int64
		database.DB.Model(&model.Table{}).Where("table_number = ? AND id <> ?", *input.TableNumber, table.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_NUMBER_EXISTS, errors.New("table number taken"))
		}
		table.TableNumber = *input.TableNumber

		baseUrl := config.ConfigDefault("FRONTEND_URL", "http://localhost:5173")
		qr, err := utils.GenerateTableQR(table.TableNumber, baseUrl)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		table.QRCode = qr
	}

	if input.Capacity != nil {
		table.Capacity = *input.Capacity
	}
	if input.Status != nil {
		table.Status = *input.Status
	}
	if input.Section != nil {
		table.Section = *input.Section
	}
	if input.CurrentGuests != nil {
		table.CurrentGuests = *input.CurrentGuests
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}

	if err := table.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.GUESTS_EXCEED_CAPACITY, err)
	}

	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_UPDATED, table)

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	if table.Status == constants.TABLE_OCCUPIED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_OCCUPIED_DELETE, errors.New("table is occupied"))
	}

	if err := database.DB.Delete(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_DELETED, fiber.Map{"tableId": table.ID})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Table deleted"})
}

func AssignWaiter(c *fiber.Ctx) error {
	tableId := c.Locals("tableId").(int)
	input := c.Locals("assignInput").(model.AssignWaiterInput)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var waiter model.User
	if err := database.DB.First(&waiter, input.WaiterId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	table.AssignedWaiter = &waiter.ID
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	table.Waiter = &waiter

	hub.BroadcastToRole(constants.ROLE_WAITER, constants.EVENT_WAITER_ASSIGNED, table)
	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_WAITER_ASSIGNED, table)

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func ReportIssue(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	tableId := c.Locals("tableId").(int)
	input := c.Locals("issueInput").(model.ReportIssueInput)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var reporterId *uint
	if actor != nil {
		reporterId = &actor.ID
	}

	entry := model.MaintenanceEntry{
		TableID:    table.ID,
		Issue:      input.Issue,
		Status:     constants.ISSUE_REPORTED,
		ReportedBy: reporterId,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	table.Status = constants.TABLE_MAINTENANCE
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payload := fiber.Map{
		"tableNumber": table.TableNumber,
		"issue":       input.Issue,
	}
	if actor != nil {
		payload["reportedBy"] = actor.Username
	}
	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_ISSUE, payload)

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func ResolveIssue(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	entryId := c.Locals("entryId").(int)
	input := c.Locals("resolveInput").(model.ResolveIssueInput)

	var entry model.MaintenanceEntry
	if err := database.DB.First(&entry, entryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ISSUE_NOT_FOUND, err)
	}

	now := time.Now()
	entry.Status = constants.ISSUE_RESOLVED
	entry.ResolvedAt = &now
	entry.Notes = input.Notes
	if actor != nil {
		entry.ResolvedBy = &actor.ID
	}
	if err := database.DB.Save(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// The table leaves maintenance once no open issues remain.
	var open int64
	database.DB.Model(&model.MaintenanceEntry{}).
		Where("table_id = ? AND status <> ?", entry.TableID, constants.ISSUE_RESOLVED).
		Count(&open)
	if open == 0 {
		var table model.Table
		if err := database.DB.First(&table, entry.TableID).Error; err == nil && table.Status == constants.TABLE_MAINTENANCE {
			table.Status = constants.TABLE_AVAILABLE
			if err := database.DB.Save(&table).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_UPDATED, table)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func ClearTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	table.Clear(time.Now())
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	hub.BroadcastToRole(constants.ROLE_ADMIN, constants.EVENT_TABLE_UPDATED, table)

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CreateReservation(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	tableId := c.Locals("tableId").(int)
	reservation := c.Locals("reservationInput").(model.Reservation)

	var table model.Table
	if err := database.DB.Preload("Reservations").First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	if reservation.GuestCount > table.Capacity {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.GUESTS_EXCEED_CAPACITY, errors.New("party larger than table capacity"))
	}
	if !table.IsAvailableAt(reservation.Date, reservation.StartTime, reservation.EndTime) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.RESERVATION_CONFLICT, errors.New("window overlaps a confirmed reservation"))
	}

	reservation.TableID = table.ID
	if actor != nil {
		reservation.CreatedBy = &actor.ID
	}

	if err := database.DB.Create(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

func CancelReservation(c *fiber.Ctx) error {
	reservationId := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, reservationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
	}

	reservation.Status = constants.RESERVATION_CANCELLED
	if err := database.DB.Save(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func GetDailyTableStats(c *fiber.Ctx) error {
	// Local midnight, matching the window the nightly counter reset uses.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type dailyStats struct {
		TotalOrders int64 `json:"totalOrders"`
		BusyTables  int64 `json:"busyTables"`
	}
	var stats dailyStats

	if err := database.DB.Model(&model.Table{}).
		Where("last_order_time >= ?", today).
		Select("COALESCE(SUM(total_orders_today), 0)").
		Scan(&stats.TotalOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	database.DB.Model(&model.Table{}).Where("status = ?", constants.TABLE_OCCUPIED).Count(&stats.BusyTables)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
