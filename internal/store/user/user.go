package user

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, user *model.User) (*model.User, error) {
	return user, tx.Create(user).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	err := tx.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) IncrementSwapCounts(tx *gorm.DB, userIDs []uint) error {
	err := tx.Model(&model.User{}).
		Where("id IN ?", userIDs).
		Updates(map[string]interface{}{
			"total_swap_count":     gorm.Expr("total_swap_count + 1"),
			"completed_swap_count": gorm.Expr("completed_swap_count + 1"),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment swap counts")
	}
	return nil
}

func (s *Store) UpdateRatingStats(tx *gorm.DB, userID uint, averageRating float64, ratingCount int) error {
	err := tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"rating_count":   ratingCount,
		}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to update rating stats for user %d", userID)
	}
	return nil
}
