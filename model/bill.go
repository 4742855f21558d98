package model

type Bill struct {
	DTO
	TableID       uint    `gorm:"index;not null" json:"tableId"`
	Table         *Table  `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Orders        []Order `gorm:"many2many:bill_orders" json:"orders"`
	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	ServiceCharge float64 `gorm:"not null" json:"serviceCharge"`
	GST           float64 `gorm:"not null" json:"gst"`
	Discount      float64 `gorm:"not null;default:0" json:"discount"`
	GrandTotal    float64 `gorm:"not null" json:"grandTotal"`
	PaymentMethod string  `gorm:"not null;default:cash" json:"paymentMethod"`
	Paid          bool    `gorm:"not null;default:false" json:"paid"`
}

type Bills []Bill

type PayTableInput struct {
	Method   string  `json:"method" validate:"required,oneof=cash card upi wallet"`
	Discount float64 `json:"discount" validate:"omitempty,gte=0"`
}
