package swaprequest

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/consts"
	"github.com/skillswap/swap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error) {
	return swapRequest, tx.Create(swapRequest).Error
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.SwapRequest, error) {
	var swapRequest model.SwapRequest
	err := tx.First(&swapRequest, id).Error
	if err != nil {
		return nil, err
	}
	return &swapRequest, nil
}

func (s *Store) HasPendingBetween(tx *gorm.DB, initiatorID, recipientID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.SwapRequest{}).
		Where("initiator_id = ? AND recipient_id = ? AND status = ?",
			initiatorID, recipientID, model.SwapRequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count pending swap requests")
	}
	return count > 0, nil
}

func (s *Store) List(tx *gorm.DB, filter ListFilter) ([]model.SwapRequest, int64, error) {
	query := tx.Model(&model.SwapRequest{})

	switch filter.Type {
	case "incoming":
		query = query.Where("recipient_id = ?", filter.UserID)
	case "outgoing":
		query = query.Where("initiator_id = ?", filter.UserID)
	default:
		query = query.Where("initiator_id = ? OR recipient_id = ?", filter.UserID, filter.UserID)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count swap requests")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}

	var swapRequests []model.SwapRequest
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&swapRequests).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list swap requests")
	}
	return swapRequests, total, nil
}

func (s *Store) TransitionStatus(tx *gorm.DB, id uint, from, to model.SwapRequestStatus, updates map[string]interface{}) (bool, error) {
	values := map[string]interface{}{
		"status": to,
	}
	for k, v := range updates {
		values[k] = v
	}

	result := tx.Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to transition swap request %d to %s", id, to)
	}
	return result.RowsAffected == 1, nil
}

func (s *Store) SubmitRatingSlot(tx *gorm.DB, id uint, side model.RatingSide, score int, comment string, submittedAt time.Time) (bool, error) {
	var values map[string]interface{}
	var guard string

	switch side {
	case model.RatingSideA:
		guard = "rating_a_submitted = ?"
		values = map[string]interface{}{
			"rating_a_score":        score,
			"rating_a_comment":      comment,
			"rating_a_submitted":    true,
			"rating_a_submitted_at": submittedAt,
			"rating_status":         model.RatingStatusWaitingBoth,
		}
	case model.RatingSideB:
		guard = "rating_b_submitted = ?"
		values = map[string]interface{}{
			"rating_b_score":        score,
			"rating_b_comment":      comment,
			"rating_b_submitted":    true,
			"rating_b_submitted_at": submittedAt,
			"rating_status":         model.RatingStatusWaitingBoth,
		}
	default:
		return false, errors.Errorf("unknown rating side %q", side)
	}

	result := tx.Model(&model.SwapRequest{}).
		Where("id = ? AND status = ? AND "+guard, id, model.SwapRequestStatusCompleted, false).
		Updates(values)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to submit rating slot %s for swap request %d", side, id)
	}
	return result.RowsAffected == 1, nil
}

func (s *Store) MarkRatingsRevealed(tx *gorm.DB, id uint, visibleAt time.Time) (bool, error) {
	result := tx.Model(&model.SwapRequest{}).
		Where("id = ? AND rating_a_submitted = ? AND rating_b_submitted = ? AND ratings_visible_at IS NULL",
			id, true, true).
		Updates(map[string]interface{}{
			"rating_status":      model.RatingStatusBothSubmitted,
			"ratings_visible_at": visibleAt,
		})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to reveal ratings for swap request %d", id)
	}
	return result.RowsAffected == 1, nil
}

func (s *Store) ListRevealed(tx *gorm.DB, userID uint) ([]model.SwapRequest, error) {
	var swapRequests []model.SwapRequest
	err := tx.
		Where("status = ? AND rating_status = ?",
			model.SwapRequestStatusCompleted, model.RatingStatusBothSubmitted).
		Where("initiator_id = ? OR recipient_id = ?", userID, userID).
		Find(&swapRequests).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list revealed swap requests for user %d", userID)
	}
	return swapRequests, nil
}

func (s *Store) CancelExpired(tx *gorm.DB, now time.Time, responseMessage string) (int64, error) {
	result := tx.Model(&model.SwapRequest{}).
		Where("status = ? AND expires_at < ?", model.SwapRequestStatusPending, now).
		Updates(map[string]interface{}{
			"status":           model.SwapRequestStatusCancelled,
			"response_message": responseMessage,
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to cancel expired swap requests")
	}
	return result.RowsAffected, nil
}
