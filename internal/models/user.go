package models

// User represents an account that can sign in to the training dashboard.
// Users are owned by the backing store; the application only reads them.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
