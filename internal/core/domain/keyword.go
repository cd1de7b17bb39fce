package domain

import "time"

// Intent classifies what the searcher is trying to do. It is assigned
// upstream when the keyword is harvested and read-only inside the engine.
type Intent string

const (
	IntentTransactional Intent = "TRANSACTIONAL"
	IntentCommercial    Intent = "COMMERCIAL"
	IntentNavigational  Intent = "NAVIGATIONAL"
	IntentInformational Intent = "INFORMATIONAL"
)

// KeywordStatus is the lifecycle state of a candidate keyword.
type KeywordStatus string

const (
	KeywordCandidate KeywordStatus = "candidate"
	KeywordAssigned  KeywordStatus = "assigned"
	// KeywordArchived keywords are permanently out of the biddable pool.
	KeywordArchived KeywordStatus = "archived"
)

// CandidateKeyword is a keyword judged worth evaluating for paid
// acquisition, not yet bid on. AssignedSiteID is nil until the hygiene
// stage assigns it; EstimatedCPC is in the base currency.
type CandidateKeyword struct {
	ID             int64
	Text           string
	MonthlyVolume  int
	EstimatedCPC   float64
	Intent         Intent
	Location       string
	AssignedSiteID *int64
	Priority       float64
	Status         KeywordStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
