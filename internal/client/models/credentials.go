package models

// Credentials is the transient email/password pair entered at login.
// It is never persisted; instances live only for the duration of one
// login attempt.
type Credentials struct {
	Email    string
	Password string
}
