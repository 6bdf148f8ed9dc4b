package controller

import (
	"github.com/skillswap/swap-backend/internal/model"
	"github.com/skillswap/swap-backend/internal/store/swaprequest"
)

type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

type CreateSwapRequestInput struct {
	InitiatorID    uint
	RecipientID    uint
	OfferedSkill   string
	RequestedSkill string
	Message        string
}

type IController interface {
	// CreateSwapRequest opens a new pending request from the initiator to
	// the recipient.
	CreateSwapRequest(input CreateSwapRequestInput) (*model.SwapRequest, error)

	// RespondToSwapRequest lets the recipient accept or reject a pending
	// request.
	RespondToSwapRequest(requestID, actorID uint, decision Decision, responseMessage string) (*model.SwapRequest, error)

	// CancelSwapRequest lets the initiator withdraw a pending request.
	CancelSwapRequest(requestID, actorID uint) (*model.SwapRequest, error)

	// CompleteSwapRequest marks an accepted request as completed and bumps
	// both parties' swap counters.
	CompleteSwapRequest(requestID, actorID uint) (*model.SwapRequest, error)

	// SubmitRating stores one party's blind rating of the other. When the
	// second rating lands, both become visible and both users' aggregate
	// ratings are recomputed.
	SubmitRating(requestID, actorID uint, score int, comment string) (*model.SwapRequest, error)

	// GetSwapRequest returns a request the actor is a party of.
	GetSwapRequest(requestID, actorID uint) (*model.SwapRequest, error)

	// ListSwapRequests pages through the actor's requests.
	ListSwapRequests(filter swaprequest.ListFilter) ([]model.SwapRequest, int64, error)

	// RecomputeUserRating rebuilds a user's aggregate rating from all
	// revealed ratings. Idempotent; re-running is the recovery path.
	RecomputeUserRating(userID uint) error

	// ExpirePendingRequests cancels pending requests past their expiry.
	ExpirePendingRequests() (int64, error)
}
