package model

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"column:name;type:varchar(100);not null"`
	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	IsPublic bool   `gorm:"column:is_public;default:true"`
	IsActive bool   `gorm:"column:is_active;default:true"`

	// Swap statistics, written only by the swap request controller.
	TotalSwapCount     int `gorm:"column:total_swap_count;not null;default:0"`
	CompletedSwapCount int `gorm:"column:completed_swap_count;not null;default:0"`

	// Aggregate rating, written only by the rating aggregator.
	AverageRating float64 `gorm:"column:average_rating;not null;default:0"`
	RatingCount   int     `gorm:"column:rating_count;not null;default:0"`
}

func (User) TableName() string {
	return "users"
}

// EligibleRecipient reports whether the user may receive new swap requests.
func (u *User) EligibleRecipient() bool {
	return u.IsActive && u.IsPublic
}
