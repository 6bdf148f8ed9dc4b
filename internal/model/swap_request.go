package model

import (
	"time"

	"gorm.io/gorm"
)

type SwapRequestStatus string

const (
	SwapRequestStatusPending   SwapRequestStatus = "pending"
	SwapRequestStatusAccepted  SwapRequestStatus = "accepted"
	SwapRequestStatusRejected  SwapRequestStatus = "rejected"
	SwapRequestStatusCancelled SwapRequestStatus = "cancelled"
	SwapRequestStatusCompleted SwapRequestStatus = "completed"
)

// Terminal reports whether no further status transition is possible.
// A completed request still accepts rating submissions.
func (s SwapRequestStatus) Terminal() bool {
	switch s {
	case SwapRequestStatusRejected, SwapRequestStatusCancelled, SwapRequestStatusCompleted:
		return true
	}
	return false
}

type RatingStatus string

const (
	RatingStatusNotAvailable  RatingStatus = "not_available"
	RatingStatusWaitingBoth   RatingStatus = "waiting_both"
	RatingStatusBothSubmitted RatingStatus = "both_submitted"
)

// RatingSide addresses one of the two independent rating slots on a swap
// request. Side A belongs to the initiator, side B to the recipient.
type RatingSide string

const (
	RatingSideA RatingSide = "a"
	RatingSideB RatingSide = "b"
)

func (s RatingSide) Opposite() RatingSide {
	if s == RatingSideA {
		return RatingSideB
	}
	return RatingSideA
}

type SwapRequest struct {
	gorm.Model
	InitiatorID uint `gorm:"column:initiator_id;not null;index:idx_swap_requests_initiator"`
	RecipientID uint `gorm:"column:recipient_id;not null;index:idx_swap_requests_recipient"`

	OfferedSkill   string `gorm:"column:offered_skill;type:varchar(50);not null"`
	RequestedSkill string `gorm:"column:requested_skill;type:varchar(50);not null"`
	Message        string `gorm:"column:message;type:varchar(500);not null;default:''"`

	Status SwapRequestStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index:idx_swap_requests_status"`

	ResponseMessage string     `gorm:"column:response_message;type:varchar(500);not null;default:''"`
	RespondedAt     *time.Time `gorm:"column:responded_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	ExpiresAt       time.Time  `gorm:"column:expires_at;not null"`

	// Dual-blind rating slots. Each side writes only its own slot, once.
	RatingStatus       RatingStatus `gorm:"column:rating_status;type:varchar(20);not null;default:'not_available'"`
	RatingASubmitted   bool         `gorm:"column:rating_a_submitted;not null;default:false"`
	RatingBSubmitted   bool         `gorm:"column:rating_b_submitted;not null;default:false"`
	RatingAScore       *int         `gorm:"column:rating_a_score"`
	RatingAComment     string       `gorm:"column:rating_a_comment;type:varchar(500);not null;default:''"`
	RatingASubmittedAt *time.Time   `gorm:"column:rating_a_submitted_at"`
	RatingBScore       *int         `gorm:"column:rating_b_score"`
	RatingBComment     string       `gorm:"column:rating_b_comment;type:varchar(500);not null;default:''"`
	RatingBSubmittedAt *time.Time   `gorm:"column:rating_b_submitted_at"`
	RatingsVisibleAt   *time.Time   `gorm:"column:ratings_visible_at"`
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}

// Side resolves a user to their rating side. The second return value is
// false when the user is not a party to the request.
func (r *SwapRequest) Side(userID uint) (RatingSide, bool) {
	switch userID {
	case r.InitiatorID:
		return RatingSideA, true
	case r.RecipientID:
		return RatingSideB, true
	}
	return "", false
}

func (r *SwapRequest) IsParty(userID uint) bool {
	_, ok := r.Side(userID)
	return ok
}

// PartyOnSide returns the user occupying the given side.
func (r *SwapRequest) PartyOnSide(side RatingSide) uint {
	if side == RatingSideA {
		return r.InitiatorID
	}
	return r.RecipientID
}

func (r *SwapRequest) SideSubmitted(side RatingSide) bool {
	if side == RatingSideA {
		return r.RatingASubmitted
	}
	return r.RatingBSubmitted
}

// SideScore returns the score stored in the given side's slot, or nil when
// that side has not submitted.
func (r *SwapRequest) SideScore(side RatingSide) *int {
	if side == RatingSideA {
		return r.RatingAScore
	}
	return r.RatingBScore
}

// ReceivedScore returns the score the opposing side gave to the given
// party, or nil when the opposing slot is empty.
func (r *SwapRequest) ReceivedScore(userID uint) *int {
	side, ok := r.Side(userID)
	if !ok {
		return nil
	}
	return r.SideScore(side.Opposite())
}

func (r *SwapRequest) RatingsRevealed() bool {
	return r.RatingStatus == RatingStatusBothSubmitted
}
