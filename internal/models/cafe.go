package models

// Cafe represents a single physical cafe location. Cafes sharing the same
// name form a chain.
type Cafe struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"not null;index" binding:"required,propername"`
	City    string  `json:"city" gorm:"not null" binding:"required,city"`
	Address string  `json:"address" gorm:"size:255;not null;uniqueIndex" binding:"required,max=255,propername"`
	Email   string  `json:"email" gorm:"not null" binding:"required,cafeemail"`
	Phone   string  `json:"phone,omitempty" binding:"omitempty,phone"`
	Pizzas  []Pizza `json:"-" gorm:"foreignKey:CafeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Cafe) TableName() string {
	return "cafe"
}
