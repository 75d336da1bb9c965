package models

// Credentials is the request body of the signup and signin endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
