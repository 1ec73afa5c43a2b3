package model

// Contact is a directory entry resolved for a GitHub login.
type Contact struct {
	Name  string
	Email string
}
