package dto

// PersonProfileResponse is the authenticated person's own view.
type PersonProfileResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	CurrentLevel        int    `json:"current_level"`
	ParticipationPoints int    `json:"participation_points"`
	Rank                int    `json:"rank"`
	NeedsSelfAssessment bool   `json:"needs_self_assessment"`
}

// GateStatusResponse tells the client whether the onboarding gate applies.
type GateStatusResponse struct {
	Required     bool `json:"required"`
	CurrentLevel int  `json:"current_level"`
}

// SelfAssessmentRequest is the request body for declaring a starting level.
type SelfAssessmentRequest struct {
	Level int `json:"level"`
}

// SelfAssessmentResponse confirms the stored level. Warning is set when the
// person explicitly kept level 0 and the gate will re-appear next session.
type SelfAssessmentResponse struct {
	CurrentLevel int    `json:"current_level"`
	Warning      string `json:"warning,omitempty"`
}
