package models

// Credentials is the body accepted by the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
