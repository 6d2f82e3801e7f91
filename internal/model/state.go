package model

// Phase is the mutually exclusive lifecycle tag of a search session.
// Exactly one phase holds at any time; Result and ErrorReason presence
// follow from it.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// SearchState is the full observable state of a search session.
// Result is non-nil iff Phase is PhaseSuccess; ErrorReason is non-empty iff
// Phase is PhaseError. Attempt is the sequence number of the most recently
// initiated search and SearchID its correlation ID.
type SearchState struct {
	QueryText   string        `json:"query_text"`
	Phase       Phase         `json:"phase"`
	Result      *SearchResult `json:"result,omitempty"`
	ErrorReason string        `json:"error_reason,omitempty"`
	SearchID    string        `json:"search_id,omitempty"`
	Attempt     uint64        `json:"attempt"`
}
