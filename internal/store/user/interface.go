package user

import (
	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, user *model.User) (*model.User, error)
	GetByID(tx *gorm.DB, id uint) (*model.User, error)

	// IncrementSwapCounts bumps total_swap_count and completed_swap_count
	// by one for every given user. Issued inside the same transaction as
	// the completion status write.
	IncrementSwapCounts(tx *gorm.DB, userIDs []uint) error

	// UpdateRatingStats overwrites the aggregate rating fields. Only the
	// rating aggregator calls this.
	UpdateRatingStats(tx *gorm.DB, userID uint, averageRating float64, ratingCount int) error
}
