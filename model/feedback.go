package model

type Feedback struct {
	DTO
	TableNumber string `json:"tableNumber"`
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

type CreateFeedbackInput struct {
	TableNumber string `json:"tableNumber" validate:"omitempty,max=10"`
	Name        string `json:"name" validate:"omitempty,max=100"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"omitempty,max=1000"`
}
