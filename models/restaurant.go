package models

type Restaurant struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"uniqueIndex;not null"`
	Description string  `json:"description,omitempty"`
	LocationLat float64 `json:"location_lat"`
	LocationLon float64 `json:"location_lon"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	Dishes      []Dish  `json:"dishes,omitempty" gorm:"foreignKey:RestaurantID"`
}

type Dish struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"not null"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price" gorm:"not null"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null"`
}
