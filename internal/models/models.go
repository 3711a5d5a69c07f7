package models

type Order struct {
	ID             uint        `gorm:"primaryKey;autoIncrement"    json:"id"`
	ChatID         int64       `gorm:"index"                       json:"chat_id"`
	Username       string      `json:"username,omitempty"`
	Customer       string      `json:"customer,omitempty"`
	Subtotal       int64       `gorm:"not null"                    json:"subtotal"`
	DiscountType   string      `gorm:"not null;default:flat"       json:"discount_type"`
	DiscountValue  int64       `gorm:"not null;default:0"          json:"discount_value"`
	DiscountAmount int64       `gorm:"not null;default:0"          json:"discount_amount"`
	TotalDue       int64       `gorm:"not null"                    json:"total_due"`
	AmountPaid     int64       `gorm:"not null"                    json:"amount_paid"`
	ChangeDue      int64       `gorm:"not null"                    json:"change_due"`
	CreatedAt      int64       `gorm:"index;not null"              json:"created_at"`
	Items          []OrderItem `gorm:"foreignKey:OrderID"          json:"items"`
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID   uint   `gorm:"index;not null"              json:"order_id"`
	MenuID    string `gorm:"not null"                    json:"menu_id"`
	Name      string `gorm:"not null"                    json:"name"`
	Quantity  int    `gorm:"not null;check:quantity>0"   json:"quantity"`
	UnitPrice int64  `gorm:"not null"                    json:"unit_price"`
	LineTotal int64  `gorm:"not null"                    json:"line_total"`
}
