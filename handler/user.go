package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// adminTierRole reports whether role is shielded from non-superadmin admins.
func adminTierRole(role string) bool {
	return role == constants.ROLE_ADMIN || role == constants.ROLE_SUPERADMIN
}

func GetUsers(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)

	filter := new(model.FilterUser)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.User{})

	// Admins cannot see admin or superadmin accounts.
	if !actor.IsSuperAdmin && actor.Role == constants.ROLE_ADMIN {
		db = db.Where("role NOT IN ?", []string{constants.ROLE_ADMIN, constants.ROLE_SUPERADMIN})
	}
	if filter.Role != nil {
		db = db.Where("role = ?", *filter.Role)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.SearchKey != "" {
		db = db.Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var users model.Users
	if err := db.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateUser(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	input := c.Locals("createInput").(model.CreateUserInput)

	if !actor.IsSuperAdmin && adminTierRole(input.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_TIER_SHIELDED, errors.New("role "+input.Role))
	}

	var count int64
	database.DB.Model(&model.User{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_EXISTS, errors.New("username taken"))
	}
	database.DB.Model(&model.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email taken"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := model.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Role:      input.Role,
		IsActive:  true,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedBy: &actor.ID,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func UpdateUser(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	userId := c.Locals("userId").(int)
	input := c.Locals("updateInput").(model.UpdateUserInput)

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	if !actor.IsSuperAdmin && adminTierRole(user.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_TIER_SHIELDED, errors.New("target role "+user.Role))
	}
	if input.Role != nil && !actor.IsSuperAdmin && adminTierRole(*input.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_TIER_SHIELDED, errors.New("requested role "+*input.Role))
	}

	if input.Username != nil {
		var count int64
		database.DB.Model(&model.User{}).Where("username = ? AND id <> ?", *input.Username, user.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_EXISTS, errors.New("username taken"))
		}
		user.Username = *input.Username
	}
	if input.Email != nil {
		var count int64
		database.DB.Model(&model.User{}).Where("email = ? AND id <> ?", *input.Email, user.ID).Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email taken"))
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := helper.HashPassword(*input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
		}
		user.Password = hashed
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func DeleteUser(c *fiber.Ctx) error {
	actor := helper.CurrentUser(c)
	userId := c.Locals("inputId").(int)

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	if !actor.IsSuperAdmin && adminTierRole(user.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ADMIN_TIER_SHIELDED, errors.New("target role "+user.Role))
	}

	// Waiters still assigned to tables must be unassigned or deactivated
	// first; deletion would orphan the assignment.
	var assigned int64
	database.DB.Model(&model.Table{}).Where("assigned_waiter = ?", user.ID).Count(&assigned)
	if assigned > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USER_ASSIGNED_TO_TABLE, errors.New("unassign the user first"))
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "User deleted"})
}
