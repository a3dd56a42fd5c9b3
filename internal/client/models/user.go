package models

// User is the backend response for login/signup. Token is the opaque bearer
// credential; it is handed straight to the credential store and never cached
// elsewhere.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// UserProfile is fetched and replaced wholesale on each successful profile
// read; it is never partially merged.
type UserProfile struct {
	ID           string  `json:"_id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Name         *string `json:"name,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// MessageResponse is the generic status envelope used by the password-reset
// endpoints and by error bodies.
type MessageResponse struct {
	Message string `json:"message"`
}
