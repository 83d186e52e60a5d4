package models

import "time"

// OrderStatus represents the lifecycle states of an order. Transitions are
// deliberately not validated: handlers set whatever status their operation
// calls for, matching the historical behavior of this API.
type OrderStatus string

const (
	StatusCreated    OrderStatus = "created"
	StatusPaid       OrderStatus = "paid"
	StatusCooking    OrderStatus = "cooking"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCanceled   OrderStatus = "canceled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusCreated:    true,
	StatusPaid:       true,
	StatusCooking:    true,
	StatusDelivering: true,
	StatusDelivered:  true,
	StatusCanceled:   true,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	return orderStatuses[s]
}

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'created'"`
	Total       float64     `json:"total"`
	CourierID   *uint       `json:"courier_id,omitempty"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
}

type OrderItem struct {
	ID       uint  `json:"id" gorm:"primaryKey"`
	OrderID  uint  `json:"order_id" gorm:"not null"`
	DishID   uint  `json:"dish_id" gorm:"not null"`
	Quantity int   `json:"quantity" gorm:"default:1"`
	// PriceAtOrder is meant to freeze the dish price at purchase time. The
	// creation path does not populate it; the column is kept for the schema.
	PriceAtOrder float64 `json:"price_at_order"`
}
