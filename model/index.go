package model

import "time"

type TokenClaim struct {
	UserId   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit" query:"limit"`
	Page  *int `json:"page" query:"page"`
}
