package model

type User struct {
	DTO
	Username     string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:staff" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"isActive"`
	IsSuperAdmin bool   `gorm:"not null;default:false" json:"isSuperAdmin"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CreatedBy    *uint  `json:"createdBy,omitempty"`
}

type Users []User

type CreateUserInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Role      string `json:"role" validate:"required,oneof=superadmin admin manager staff waiter kitchen cashier"`
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
	LastName  string `json:"lastName" validate:"omitempty,max=50"`
}

type UpdateUserInput struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=superadmin admin manager staff waiter kitchen cashier"`
	IsActive  *bool   `json:"isActive,omitempty"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
}

type FilterUser struct {
	Pagination
	SearchKey string  `json:"searchKey" query:"searchKey"`
	Role      *string `json:"role" query:"role"`
	IsActive  *bool   `json:"isActive" query:"isActive"`
}
