package controller

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Error is a business-rule violation. Every failure of the swap request
// core is one of these; none are transient, so callers never retry them.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) HTTPStatus() int {
	switch e.Code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrSwapRequestNotFound = newError(ErrCodeNotFound, "swap request not found")
	ErrUserNotFound        = newError(ErrCodeNotFound, "user not found")

	ErrNotRecipient   = newError(ErrCodeForbidden, "only the recipient can respond to this request")
	ErrNotInitiator   = newError(ErrCodeForbidden, "only the initiator can cancel this request")
	ErrNotParticipant = newError(ErrCodeForbidden, "you are not a participant in this swap")

	ErrDuplicatePendingRequest = newError(ErrCodeConflict, "you already have a pending request with this user")
	ErrNoLongerPending         = newError(ErrCodeConflict, "request is no longer pending")
	ErrNotAcceptedYet          = newError(ErrCodeConflict, "request must be accepted before completion")
	ErrNotCompletedYet         = newError(ErrCodeConflict, "swap must be completed before leaving a rating")
	ErrRatingAlreadySubmitted  = newError(ErrCodeConflict, "you have already submitted a rating for this swap")

	ErrSelfSwapRequest      = newError(ErrCodeInvalidArgument, "cannot send a swap request to yourself")
	ErrEmptySkill           = newError(ErrCodeInvalidArgument, "offered and requested skills are required")
	ErrSkillTooLong         = newError(ErrCodeInvalidArgument, "skill names must be at most 50 characters")
	ErrMessageTooLong       = newError(ErrCodeInvalidArgument, "messages must be at most 500 characters")
	ErrRecipientIneligible  = newError(ErrCodeInvalidArgument, "recipient cannot receive swap requests")
	ErrInvalidDecision      = newError(ErrCodeInvalidArgument, "decision must be accept or reject")
	ErrScoreOutOfRange      = newError(ErrCodeInvalidArgument, "score must be between 1 and 5")
)

func IsNotFound(err error) bool {
	var ctrlErr *Error
	return errors.As(err, &ctrlErr) && ctrlErr.Code == ErrCodeNotFound
}

func IsConflict(err error) bool {
	var ctrlErr *Error
	return errors.As(err, &ctrlErr) && ctrlErr.Code == ErrCodeConflict
}
