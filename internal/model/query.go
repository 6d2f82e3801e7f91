package model

// SearchRequest represents a search submission from the presentation layer
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k,omitempty"`
}

// SearchResponse acknowledges an accepted search submission
type SearchResponse struct {
	Accepted bool   `json:"accepted"`
	SearchID string `json:"search_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

// QueryServiceRequest is the wire request to the remote query service
type QueryServiceRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// QueryServiceResponse is the wire response from the remote query service.
// Success false means the service processed the request but could not answer
// it; Error detail beyond the flag is best-effort and only logged.
type QueryServiceResponse struct {
	Success    bool              `json:"success"`
	Response   string            `json:"response"`
	Error      string            `json:"error,omitempty"`
	Properties []PropertyPayload `json:"properties"`
}

// Result builds the normalized SearchResult from a successful response.
// A missing answer normalizes to "" and a missing property list to an
// empty slice, so presentation never sees partial data.
func (r *QueryServiceResponse) Result() *SearchResult {
	return &SearchResult{
		AnswerText: r.Response,
		Records:    NormalizeProperties(r.Properties),
	}
}
