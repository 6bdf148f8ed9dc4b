package consts

import "time"

const (
	// Bounds on user supplied strings, mirrored by the schema.
	MaxSkillLength   = 50
	MaxMessageLength = 500

	// Valid rating score range.
	MinRatingScore = 1
	MaxRatingScore = 5

	// Pending requests expire this long after creation.
	PendingRequestTTL = 7 * 24 * time.Hour

	// How many times a state transition is retried internally after losing
	// a compare-and-swap race before the conflict is surfaced.
	MaxTransitionRetries = 3

	// List pagination defaults.
	DefaultPageSize = 10
	MaxPageSize     = 50

	// Gin context key under which the gateway middleware stores the
	// authenticated caller's user id.
	ActorContextKey = "actor_id"
)
