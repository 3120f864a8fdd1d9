package dto

// RegisterRequest represents the request payload for user registration.
// The username is never client-supplied; it is generated server-side.
type RegisterRequest struct {
	FName    string `json:"fname" validate:"required,max=19"`
	LName    string `json:"lname" validate:"required,max=19"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7,max=19"`
}

// RegisterResponse carries the identity created for a new account.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileResponse is the composed profile returned by login: skill and
// interest ids resolved to catalog names, match ids to usernames.
type ProfileResponse struct {
	FName         string             `json:"fname"`
	LName         string             `json:"lname"`
	Username      string             `json:"username"`
	Email         string             `json:"email"`
	Skills        []string           `json:"skills"`
	Interests     []string           `json:"interests"`
	Matches       []string           `json:"matches"`
	Bio           string             `json:"bio"`
	Notifications []NotificationItem `json:"notifications"`
}

// NotificationItem is a notification entry in API responses.
type NotificationItem struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
