package controller

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/consts"
	"github.com/skillswap/swap-backend/internal/model"
	"github.com/skillswap/swap-backend/internal/store"
	"github.com/skillswap/swap-backend/internal/store/swaprequest"
)

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

func (c *Controller) CreateSwapRequest(input CreateSwapRequestInput) (*model.SwapRequest, error) {
	offered := normalizeSkill(input.OfferedSkill)
	requested := normalizeSkill(input.RequestedSkill)

	if offered == "" || requested == "" {
		return nil, ErrEmptySkill
	}
	if len(offered) > consts.MaxSkillLength || len(requested) > consts.MaxSkillLength {
		return nil, ErrSkillTooLong
	}
	if len(input.Message) > consts.MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	if input.InitiatorID == input.RecipientID {
		return nil, ErrSelfSwapRequest
	}

	recipient, err := c.store.User.GetByID(c.db, input.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !recipient.EligibleRecipient() {
		return nil, ErrRecipientIneligible
	}

	exists, err := c.store.SwapRequest.HasPendingBetween(c.db, input.InitiatorID, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePendingRequest
	}

	swapRequest := &model.SwapRequest{
		InitiatorID:    input.InitiatorID,
		RecipientID:    input.RecipientID,
		OfferedSkill:   offered,
		RequestedSkill: requested,
		Message:        input.Message,
		Status:         model.SwapRequestStatusPending,
		RatingStatus:   model.RatingStatusNotAvailable,
		ExpiresAt:      time.Now().Add(consts.PendingRequestTTL),
	}

	created, err := c.store.SwapRequest.Create(c.db, swapRequest)
	if err != nil {
		// The partial unique index on (initiator, recipient, pending)
		// closes the race between the duplicate check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePendingRequest
		}
		c.logger.Error("[CreateSwapRequest][Create]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return created, nil
}

func (c *Controller) RespondToSwapRequest(requestID, actorID uint, decision Decision, responseMessage string) (*model.SwapRequest, error) {
	var to model.SwapRequestStatus
	switch decision {
	case DecisionAccept:
		to = model.SwapRequestStatusAccepted
	case DecisionReject:
		to = model.SwapRequestStatusRejected
	default:
		return nil, ErrInvalidDecision
	}
	if len(responseMessage) > consts.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	for attempt := 0; attempt < consts.MaxTransitionRetries; attempt++ {
		swapRequest, err := c.getSwapRequest(requestID)
		if err != nil {
			return nil, err
		}
		if swapRequest.RecipientID != actorID {
			return nil, ErrNotRecipient
		}
		if swapRequest.Status != model.SwapRequestStatusPending {
			return nil, ErrNoLongerPending
		}

		won, err := c.store.SwapRequest.TransitionStatus(c.db, requestID,
			model.SwapRequestStatusPending, to,
			map[string]interface{}{
				"response_message": responseMessage,
				"responded_at":     time.Now(),
			})
		if err != nil {
			return nil, err
		}
		if won {
			return c.getSwapRequest(requestID)
		}
		// Lost the status swap against a concurrent caller; re-read and
		// re-validate, which normally surfaces ErrNoLongerPending.
	}
	return nil, ErrNoLongerPending
}

func (c *Controller) CancelSwapRequest(requestID, actorID uint) (*model.SwapRequest, error) {
	for attempt := 0; attempt < consts.MaxTransitionRetries; attempt++ {
		swapRequest, err := c.getSwapRequest(requestID)
		if err != nil {
			return nil, err
		}
		if swapRequest.InitiatorID != actorID {
			return nil, ErrNotInitiator
		}
		if swapRequest.Status != model.SwapRequestStatusPending {
			return nil, ErrNoLongerPending
		}

		won, err := c.store.SwapRequest.TransitionStatus(c.db, requestID,
			model.SwapRequestStatusPending, model.SwapRequestStatusCancelled, nil)
		if err != nil {
			return nil, err
		}
		if won {
			return c.getSwapRequest(requestID)
		}
	}
	return nil, ErrNoLongerPending
}

func (c *Controller) CompleteSwapRequest(requestID, actorID uint) (*model.SwapRequest, error) {
	for attempt := 0; attempt < consts.MaxTransitionRetries; attempt++ {
		swapRequest, err := c.getSwapRequest(requestID)
		if err != nil {
			return nil, err
		}
		if !swapRequest.IsParty(actorID) {
			return nil, ErrNotParticipant
		}
		if swapRequest.Status != model.SwapRequestStatusAccepted {
			return nil, ErrNotAcceptedYet
		}

		var won bool
		err = store.DoInTx(c.db, func(tx *gorm.DB) error {
			var txErr error
			won, txErr = c.store.SwapRequest.TransitionStatus(tx, requestID,
				model.SwapRequestStatusAccepted, model.SwapRequestStatusCompleted,
				map[string]interface{}{
					"completed_at": time.Now(),
				})
			if txErr != nil || !won {
				return txErr
			}
			// Counter writes ride the same transaction as the status
			// write so a crash cannot separate them.
			return c.store.User.IncrementSwapCounts(tx,
				[]uint{swapRequest.InitiatorID, swapRequest.RecipientID})
		})
		if err != nil {
			return nil, err
		}
		if won {
			return c.getSwapRequest(requestID)
		}
	}
	return nil, ErrNotAcceptedYet
}

func (c *Controller) GetSwapRequest(requestID, actorID uint) (*model.SwapRequest, error) {
	swapRequest, err := c.getSwapRequest(requestID)
	if err != nil {
		return nil, err
	}
	if !swapRequest.IsParty(actorID) {
		return nil, ErrNotParticipant
	}
	return swapRequest, nil
}

func (c *Controller) ListSwapRequests(filter swaprequest.ListFilter) ([]model.SwapRequest, int64, error) {
	return c.store.SwapRequest.List(c.db, filter)
}

func (c *Controller) ExpirePendingRequests() (int64, error) {
	return c.store.SwapRequest.CancelExpired(c.db, time.Now(), "request expired")
}

func (c *Controller) getSwapRequest(requestID uint) (*model.SwapRequest, error) {
	swapRequest, err := c.store.SwapRequest.GetByID(c.db, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapRequestNotFound
		}
		return nil, err
	}
	return swapRequest, nil
}
