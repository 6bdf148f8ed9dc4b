package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillswap/swap-backend/internal/model"
	"github.com/skillswap/swap-backend/internal/store"
	"github.com/skillswap/swap-backend/internal/store/swaprequest"
	"github.com/skillswap/swap-backend/internal/types/environments"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
)

type testEnv struct {
	db    *gorm.DB
	store *store.Store
	ctrl  IController
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.SwapRequest{}))

	s := store.New()
	return &testEnv{
		db:    db,
		store: s,
		ctrl: New(db, s, logger.New(environments.Test), &config.AppConfig{
			Environment: environments.Test,
		}),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string) *model.User {
	t.Helper()

	u := &model.User{Name: "user", Email: email, IsPublic: true, IsActive: true}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

// seedPair returns an initiator and a recipient.
func (e *testEnv) seedPair(t *testing.T) (*model.User, *model.User) {
	t.Helper()
	return e.seedUser(t, "alice@example.com"), e.seedUser(t, "bob@example.com")
}

func (e *testEnv) createRequest(t *testing.T, initiatorID, recipientID uint) *model.SwapRequest {
	t.Helper()

	swapRequest, err := e.ctrl.CreateSwapRequest(CreateSwapRequestInput{
		InitiatorID:    initiatorID,
		RecipientID:    recipientID,
		OfferedSkill:   "Guitar",
		RequestedSkill: "Spanish",
		Message:        "let's trade lessons",
	})
	require.NoError(t, err)
	return swapRequest
}

func (e *testEnv) acceptedRequest(t *testing.T, initiatorID, recipientID uint) *model.SwapRequest {
	t.Helper()

	swapRequest := e.createRequest(t, initiatorID, recipientID)
	accepted, err := e.ctrl.RespondToSwapRequest(swapRequest.ID, recipientID, DecisionAccept, "")
	require.NoError(t, err)
	return accepted
}

func (e *testEnv) completedRequest(t *testing.T, initiatorID, recipientID uint) *model.SwapRequest {
	t.Helper()

	swapRequest := e.acceptedRequest(t, initiatorID, recipientID)
	completed, err := e.ctrl.CompleteSwapRequest(swapRequest.ID, initiatorID)
	require.NoError(t, err)
	return completed
}

func TestCreateSwapRequest(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)

	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	assert.Equal(t, model.SwapRequestStatusPending, swapRequest.Status)
	assert.Equal(t, model.RatingStatusNotAvailable, swapRequest.RatingStatus)
	// Skills are normalized on the way in.
	assert.Equal(t, "guitar", swapRequest.OfferedSkill)
	assert.Equal(t, "spanish", swapRequest.RequestedSkill)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), swapRequest.ExpiresAt, time.Minute)
	assert.Nil(t, swapRequest.RespondedAt)
	assert.Nil(t, swapRequest.CompletedAt)
}

func TestCreateSwapRequest_Validation(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)

	tests := []struct {
		name    string
		input   CreateSwapRequestInput
		wantErr error
	}{
		{
			name: "empty offered skill",
			input: CreateSwapRequestInput{
				InitiatorID: alice.ID, RecipientID: bob.ID,
				OfferedSkill: "   ", RequestedSkill: "spanish",
			},
			wantErr: ErrEmptySkill,
		},
		{
			name: "skill too long",
			input: CreateSwapRequestInput{
				InitiatorID: alice.ID, RecipientID: bob.ID,
				OfferedSkill: strings.Repeat("x", 51), RequestedSkill: "spanish",
			},
			wantErr: ErrSkillTooLong,
		},
		{
			name: "message too long",
			input: CreateSwapRequestInput{
				InitiatorID: alice.ID, RecipientID: bob.ID,
				OfferedSkill: "guitar", RequestedSkill: "spanish",
				Message: strings.Repeat("x", 501),
			},
			wantErr: ErrMessageTooLong,
		},
		{
			name: "self request",
			input: CreateSwapRequestInput{
				InitiatorID: alice.ID, RecipientID: alice.ID,
				OfferedSkill: "guitar", RequestedSkill: "spanish",
			},
			wantErr: ErrSelfSwapRequest,
		},
		{
			name: "unknown recipient",
			input: CreateSwapRequestInput{
				InitiatorID: alice.ID, RecipientID: 9999,
				OfferedSkill: "guitar", RequestedSkill: "spanish",
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ctrl.CreateSwapRequest(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateSwapRequest_IneligibleRecipient(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice@example.com")

	hidden := &model.User{Name: "hidden", Email: "hidden@example.com", IsPublic: false, IsActive: true}
	require.NoError(t, env.db.Create(hidden).Error)

	_, err := env.ctrl.CreateSwapRequest(CreateSwapRequestInput{
		InitiatorID: alice.ID, RecipientID: hidden.ID,
		OfferedSkill: "guitar", RequestedSkill: "spanish",
	})
	assert.ErrorIs(t, err, ErrRecipientIneligible)
}

func TestCreateSwapRequest_DuplicatePending(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	env.createRequest(t, alice.ID, bob.ID)

	_, err := env.ctrl.CreateSwapRequest(CreateSwapRequestInput{
		InitiatorID: alice.ID, RecipientID: bob.ID,
		OfferedSkill: "cooking", RequestedSkill: "painting",
	})
	assert.ErrorIs(t, err, ErrDuplicatePendingRequest)

	// The reverse direction is a different pair.
	_, err = env.ctrl.CreateSwapRequest(CreateSwapRequestInput{
		InitiatorID: bob.ID, RecipientID: alice.ID,
		OfferedSkill: "spanish", RequestedSkill: "guitar",
	})
	assert.NoError(t, err)
}

func TestRespondToSwapRequest_Accept(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	got, err := env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, DecisionAccept, "see you monday")
	require.NoError(t, err)

	assert.Equal(t, model.SwapRequestStatusAccepted, got.Status)
	assert.Equal(t, "see you monday", got.ResponseMessage)
	assert.NotNil(t, got.RespondedAt)
}

func TestRespondToSwapRequest_Reject(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	got, err := env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, DecisionReject, "")
	require.NoError(t, err)
	assert.Equal(t, model.SwapRequestStatusRejected, got.Status)
	assert.NotNil(t, got.RespondedAt)
}

func TestRespondToSwapRequest_Failures(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	// Only the recipient may respond, the initiator included.
	_, err := env.ctrl.RespondToSwapRequest(swapRequest.ID, alice.ID, DecisionAccept, "")
	assert.ErrorIs(t, err, ErrNotRecipient)

	_, err = env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, Decision("maybe"), "")
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = env.ctrl.RespondToSwapRequest(9999, bob.ID, DecisionAccept, "")
	assert.ErrorIs(t, err, ErrSwapRequestNotFound)

	_, err = env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, DecisionAccept, "")
	require.NoError(t, err)

	// Transitions are not idempotent: a second respond is a conflict.
	_, err = env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, DecisionAccept, "")
	assert.ErrorIs(t, err, ErrNoLongerPending)
}

func TestCancelSwapRequest(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	_, err := env.ctrl.CancelSwapRequest(swapRequest.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotInitiator)

	got, err := env.ctrl.CancelSwapRequest(swapRequest.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwapRequestStatusCancelled, got.Status)
	// Cancellation is not a response.
	assert.Nil(t, got.RespondedAt)

	_, err = env.ctrl.CancelSwapRequest(swapRequest.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNoLongerPending)
}

func TestCancelSwapRequest_AfterAccept(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.acceptedRequest(t, alice.ID, bob.ID)

	_, err := env.ctrl.CancelSwapRequest(swapRequest.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNoLongerPending)
}

func TestCompleteSwapRequest(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.acceptedRequest(t, alice.ID, bob.ID)

	got, err := env.ctrl.CompleteSwapRequest(swapRequest.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwapRequestStatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	// Both parties' counters move in the same transaction as the status.
	for _, userID := range []uint{alice.ID, bob.ID} {
		u, err := env.store.User.GetByID(env.db, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, u.TotalSwapCount)
		assert.Equal(t, 1, u.CompletedSwapCount)
	}
}

func TestCompleteSwapRequest_Failures(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	carol := env.seedUser(t, "carol@example.com")
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	// Pending, not accepted.
	_, err := env.ctrl.CompleteSwapRequest(swapRequest.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotAcceptedYet)

	_, err = env.ctrl.RespondToSwapRequest(swapRequest.ID, bob.ID, DecisionAccept, "")
	require.NoError(t, err)

	_, err = env.ctrl.CompleteSwapRequest(swapRequest.ID, carol.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = env.ctrl.CompleteSwapRequest(swapRequest.ID, alice.ID)
	require.NoError(t, err)

	// Completing twice must not bump the counters again.
	_, err = env.ctrl.CompleteSwapRequest(swapRequest.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotAcceptedYet)

	u, err := env.store.User.GetByID(env.db, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, u.CompletedSwapCount)
}

func TestGetSwapRequest(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	carol := env.seedUser(t, "carol@example.com")
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	got, err := env.ctrl.GetSwapRequest(swapRequest.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, swapRequest.ID, got.ID)

	_, err = env.ctrl.GetSwapRequest(swapRequest.ID, carol.ID)
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = env.ctrl.GetSwapRequest(9999, alice.ID)
	assert.ErrorIs(t, err, ErrSwapRequestNotFound)
}

func TestListSwapRequests(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	env.createRequest(t, alice.ID, bob.ID)

	got, total, err := env.ctrl.ListSwapRequests(swaprequest.ListFilter{
		UserID: alice.ID, Type: "outgoing",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, got, 1)
}

func TestExpirePendingRequests(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.seedPair(t)
	swapRequest := env.createRequest(t, alice.ID, bob.ID)

	// Nothing has expired yet.
	count, err := env.ctrl.ExpirePendingRequests()
	require.NoError(t, err)
	assert.Zero(t, count)

	err = env.db.Model(&model.SwapRequest{}).
		Where("id = ?", swapRequest.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error
	require.NoError(t, err)

	count, err = env.ctrl.ExpirePendingRequests()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	got, err := env.store.SwapRequest.GetByID(env.db, swapRequest.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SwapRequestStatusCancelled, got.Status)
	assert.Equal(t, "request expired", got.ResponseMessage)
	assert.Nil(t, got.RespondedAt)
}
