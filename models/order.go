package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Token       string      `gorm:"uniqueIndex;not null" json:"token"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Discount    float64     `json:"discount"`
	Total       int         `json:"total"`
	TotalAmount int         `json:"totalAmount"`
	Date        time.Time   `gorm:"index" json:"date"`
}

type OrderItem struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID uint    `gorm:"index" json:"-"`
	Name    string  `gorm:"not null" json:"name"`
	Qty     int     `gorm:"not null" json:"qty"`
	Price   float64 `gorm:"not null" json:"price"`
}
