package model

// Team is an organization team as listed by the GitHub API.
type Team struct {
	Slug string
	Name string
}
