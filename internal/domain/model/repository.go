package model

// Repository identifies a GitHub repository reachable through a team.
// ID is the numeric API identifier; the same repository listed by several
// teams carries the same ID, which is what deduplication keys on.
type Repository struct {
	ID       int64
	FullName string
}
