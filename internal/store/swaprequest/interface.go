package swaprequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/model"
)

// ListFilter narrows List to one direction of a user's swap requests and
// optionally to one status.
type ListFilter struct {
	UserID   uint
	Type     string // "incoming", "outgoing" or "all"
	Status   model.SwapRequestStatus
	Page     int
	PageSize int
}

type IStore interface {
	Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error)
	GetByID(tx *gorm.DB, id uint) (*model.SwapRequest, error)
	HasPendingBetween(tx *gorm.DB, initiatorID, recipientID uint) (bool, error)
	List(tx *gorm.DB, filter ListFilter) ([]model.SwapRequest, int64, error)

	// TransitionStatus applies a compare-and-swap on the status column:
	// the row is updated only when its current status equals from. It
	// reports whether the swap won.
	TransitionStatus(tx *gorm.DB, id uint, from, to model.SwapRequestStatus, updates map[string]interface{}) (bool, error)

	// SubmitRatingSlot writes one side's rating slot and raises that
	// side's submission flag, guarded so a side can never submit twice.
	SubmitRatingSlot(tx *gorm.DB, id uint, side model.RatingSide, score int, comment string, submittedAt time.Time) (bool, error)

	// MarkRatingsRevealed flips the request to both_submitted and stamps
	// ratings_visible_at, guarded so the reveal happens exactly once.
	MarkRatingsRevealed(tx *gorm.DB, id uint, visibleAt time.Time) (bool, error)

	// ListRevealed returns every completed, both-submitted request the
	// user is a party of. Input to the rating aggregator.
	ListRevealed(tx *gorm.DB, userID uint) ([]model.SwapRequest, error)

	// CancelExpired cancels pending requests whose expiry has passed and
	// returns how many rows were touched.
	CancelExpired(tx *gorm.DB, now time.Time, responseMessage string) (int64, error)
}
