package domain

import "time"

// Person is an employee enrolled in a site's training program.
type Person struct {
	ID                  string
	SiteID              string
	Email               string
	Name                string
	CurrentLevel        int // 0 = not yet assessed, 1..20 validated
	ParticipationPoints int
	Language            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NeedsSelfAssessment reports whether the onboarding gate must be shown.
func (p *Person) NeedsSelfAssessment() bool {
	return p.CurrentLevel == 0
}

// RankedPerson is a person's position on a site scoreboard. Rank is 1-based,
// ordered by points descending with ascending person ID as tie-break.
type RankedPerson struct {
	PersonID            string
	Name                string
	ParticipationPoints int
	Rank                int
}
