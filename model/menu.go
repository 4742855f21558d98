package model

type MenuItem struct {
	DTO
	Name            string  `gorm:"not null" json:"name"`
	Description     string  `json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	Category        string  `gorm:"not null;index" json:"category"`
	Image           string  `json:"image"`
	IsVegetarian    bool    `gorm:"not null;default:false" json:"isVegetarian"`
	SpicyLevel      int     `gorm:"not null;default:0" json:"spicyLevel"`
	IsAvailable     bool    `gorm:"not null;default:true" json:"isAvailable"`
	PreparationTime int     `json:"preparationTime"`
	CreatedBy       *uint   `json:"createdBy,omitempty"`
	LastModifiedBy  *uint   `json:"lastModifiedBy,omitempty"`
}

type MenuItems []MenuItem

type CreateMenuItemInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"omitempty,max=500"`
	Price           float64 `json:"price" validate:"required,gte=0"`
	Category        string  `json:"category" validate:"required,oneof=starters soups main-course breads rice desserts beverages"`
	Image           string  `json:"image" validate:"omitempty,url"`
	IsVegetarian    *bool   `json:"isVegetarian"`
	SpicyLevel      int     `json:"spicyLevel" validate:"omitempty,min=0,max=3"`
	PreparationTime int     `json:"preparationTime" validate:"omitempty,min=1"`
}

type UpdateMenuItemInput struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,oneof=starters soups main-course breads rice desserts beverages"`
	Image           *string  `json:"image,omitempty" validate:"omitempty,url"`
	IsVegetarian    *bool    `json:"isVegetarian,omitempty"`
	SpicyLevel      *int     `json:"spicyLevel,omitempty" validate:"omitempty,min=0,max=3"`
	IsAvailable     *bool    `json:"isAvailable,omitempty"`
	PreparationTime *int     `json:"preparationTime,omitempty" validate:"omitempty,min=1"`
}

type FilterMenu struct {
	Pagination
	Category    *string `json:"category" query:"category"`
	IsAvailable *bool   `json:"isAvailable" query:"isAvailable"`
	SearchKey   string  `json:"searchKey" query:"searchKey"`
}
