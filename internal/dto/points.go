package dto

// AwardPointsRequest is the request body for one participation action.
// Affordance and SessionID are only meaningful for first-discovery actions.
type AwardPointsRequest struct {
	Action     string `json:"action"`
	Affordance string `json:"affordance,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
}

// AwardPointsResponse reports the ledger after the award.
type AwardPointsResponse struct {
	Action        string `json:"action"`
	PointsAwarded int    `json:"points_awarded"`
	NewTotal      int    `json:"new_total"`
	Rank          int    `json:"rank"`
}

// ScoreboardEntry is one row of the site scoreboard.
type ScoreboardEntry struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
}

// ScoreboardResponse is the ranked scoreboard of a site.
type ScoreboardResponse struct {
	Entries []ScoreboardEntry `json:"entries"`
}
