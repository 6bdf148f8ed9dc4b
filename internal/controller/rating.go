package controller

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/consts"
	"github.com/skillswap/swap-backend/internal/model"
	"github.com/skillswap/swap-backend/internal/store"
)

// SubmitRating runs the dual-blind protocol for one side. The slot write
// and the reveal check share one transaction: concurrent submissions on the
// same request serialize on the row, so the later committer always observes
// both flags and performs the reveal exactly once.
func (c *Controller) SubmitRating(requestID, actorID uint, score int, comment string) (*model.SwapRequest, error) {
	if score < consts.MinRatingScore || score > consts.MaxRatingScore {
		return nil, ErrScoreOutOfRange
	}
	if len(comment) > consts.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	swapRequest, err := c.getSwapRequest(requestID)
	if err != nil {
		return nil, err
	}
	side, ok := swapRequest.Side(actorID)
	if !ok {
		return nil, ErrNotParticipant
	}
	if swapRequest.Status != model.SwapRequestStatusCompleted {
		return nil, ErrNotCompletedYet
	}
	if swapRequest.SideSubmitted(side) {
		return nil, ErrRatingAlreadySubmitted
	}

	var revealed bool
	err = store.DoInTx(c.db, func(tx *gorm.DB) error {
		now := time.Now()
		won, txErr := c.store.SwapRequest.SubmitRatingSlot(tx, requestID, side, score, comment, now)
		if txErr != nil {
			return txErr
		}
		if !won {
			// The guard re-checks status and the submission flag, so the
			// slot was taken by an earlier call from the same side.
			return ErrRatingAlreadySubmitted
		}

		revealed, txErr = c.store.SwapRequest.MarkRatingsRevealed(tx, requestID, now)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	if revealed {
		// The reveal is committed at this point; aggregation is a
		// derived write, so a failure here is recovered by the next
		// recompute rather than by failing the submission.
		for _, userID := range []uint{swapRequest.InitiatorID, swapRequest.RecipientID} {
			if aggErr := c.RecomputeUserRating(userID); aggErr != nil {
				c.logger.Error("[SubmitRating][RecomputeUserRating]", map[string]string{
					"error":   aggErr.Error(),
					"user_id": strconv.FormatUint(uint64(userID), 10),
				})
			}
		}
	}

	return c.getSwapRequest(requestID)
}
