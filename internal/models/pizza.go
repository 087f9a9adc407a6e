package models

// Pizza represents a pizza sold by exactly one cafe.
// Names are unique within a cafe.
type Pizza struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null;uniqueIndex:idx_pizza_cafe_name" binding:"required,propername"`
	Price       float64 `json:"price" gorm:"not null" binding:"min=5,max=50"`
	Size        string  `json:"size" gorm:"size:10;not null" binding:"required,max=10"`
	Ingredients string  `json:"ingredients" gorm:"size:89;not null" binding:"required,max=89"`
	CafeID      uint    `json:"-" gorm:"not null;index;uniqueIndex:idx_pizza_cafe_name"`
}

func (Pizza) TableName() string {
	return "pizza"
}
