package models

// Customer is a CRM contact. Email is unique; Phone is optional and
// validated at the service layer before a row is written.
type Customer struct {
	BaseModel
	Name   string  `json:"name"`
	Email  string  `gorm:"uniqueIndex" json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}
