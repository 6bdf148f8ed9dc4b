package view

import (
	"time"

	"github.com/skillswap/swap-backend/internal/model"
)

// RatingSlot is one side's rating as exposed to a given viewer. Submitted
// is always accurate; Score and Comment are present only when the viewer is
// entitled to see them.
type RatingSlot struct {
	Submitted   bool       `json:"submitted"`
	Score       *int       `json:"score,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

type SwapRequest struct {
	ID             uint   `json:"id"`
	InitiatorID    uint   `json:"initiator_id"`
	RecipientID    uint   `json:"recipient_id"`
	OfferedSkill   string `json:"offered_skill"`
	RequestedSkill string `json:"requested_skill"`
	Message        string `json:"message,omitempty"`

	Status          model.SwapRequestStatus `json:"status"`
	ResponseMessage string                  `json:"response_message,omitempty"`
	RespondedAt     *time.Time              `json:"responded_at,omitempty"`
	CompletedAt     *time.Time              `json:"completed_at,omitempty"`
	ExpiresAt       time.Time               `json:"expires_at"`
	CreatedAt       time.Time               `json:"created_at"`

	RatingStatus     model.RatingStatus `json:"rating_status"`
	RatingsVisibleAt *time.Time         `json:"ratings_visible_at,omitempty"`
	RatingByMe       *RatingSlot        `json:"rating_by_me,omitempty"`
	RatingByOther    *RatingSlot        `json:"rating_by_other,omitempty"`
}

// ToSwapRequest renders a swap request for one viewer. A party always sees
// their own submitted rating; the other side's rating stays blind until
// both have submitted.
func ToSwapRequest(r *model.SwapRequest, viewerID uint) SwapRequest {
	out := SwapRequest{
		ID:               r.ID,
		InitiatorID:      r.InitiatorID,
		RecipientID:      r.RecipientID,
		OfferedSkill:     r.OfferedSkill,
		RequestedSkill:   r.RequestedSkill,
		Message:          r.Message,
		Status:           r.Status,
		ResponseMessage:  r.ResponseMessage,
		RespondedAt:      r.RespondedAt,
		CompletedAt:      r.CompletedAt,
		ExpiresAt:        r.ExpiresAt,
		CreatedAt:        r.CreatedAt,
		RatingStatus:     r.RatingStatus,
		RatingsVisibleAt: r.RatingsVisibleAt,
	}

	viewerSide, isParty := r.Side(viewerID)
	if !isParty {
		return out
	}

	out.RatingByMe = ratingSlot(r, viewerSide, true)
	out.RatingByOther = ratingSlot(r, viewerSide.Opposite(), r.RatingsRevealed())
	return out
}

// ToSwapRequests renders a page of requests for one viewer.
func ToSwapRequests(requests []model.SwapRequest, viewerID uint) []SwapRequest {
	out := make([]SwapRequest, 0, len(requests))
	for i := range requests {
		out = append(out, ToSwapRequest(&requests[i], viewerID))
	}
	return out
}

func ratingSlot(r *model.SwapRequest, side model.RatingSide, entitled bool) *RatingSlot {
	slot := &RatingSlot{Submitted: r.SideSubmitted(side)}
	if !slot.Submitted || !entitled {
		return slot
	}

	if side == model.RatingSideA {
		slot.Score = r.RatingAScore
		slot.Comment = r.RatingAComment
		slot.SubmittedAt = r.RatingASubmittedAt
	} else {
		slot.Score = r.RatingBScore
		slot.Comment = r.RatingBComment
		slot.SubmittedAt = r.RatingBSubmittedAt
	}
	return slot
}

// SwapRequestPage is the paginated listing payload.
type SwapRequestPage struct {
	Requests      []SwapRequest `json:"requests"`
	TotalRequests int64         `json:"total_requests"`
	TotalPages    int64         `json:"total_pages"`
	CurrentPage   int           `json:"current_page"`
}
