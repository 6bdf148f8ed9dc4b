package controller

import (
	"errors"

	"gorm.io/gorm"
)

// RecomputeUserRating rebuilds the user's aggregate rating by re-scanning
// every revealed rating they received. A full recompute rather than a
// running mean: swap histories are small and the result is a pure function
// of swap request data, so re-running it is always safe.
func (c *Controller) RecomputeUserRating(userID uint) error {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	revealed, err := c.store.SwapRequest.ListRevealed(c.db, userID)
	if err != nil {
		return err
	}

	sum := 0
	count := 0
	for i := range revealed {
		if score := revealed[i].ReceivedScore(userID); score != nil {
			sum += *score
			count++
		}
	}

	average := 0.0
	if count > 0 {
		average = float64(sum) / float64(count)
	}

	return c.store.User.UpdateRatingStats(c.db, userID, average, count)
}
