// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	PasswordRepeat string `json:"passwordRepeat" validate:"required,min=8"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// BoardRequest defines the payload for creating or renaming a board.
type BoardRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// ListRequest defines the payload for creating or renaming a list.
type ListRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// CardCreateRequest defines the payload for creating a card.
type CardCreateRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// CardUpdateRequest defines the payload for editing a card.
type CardUpdateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// CommentRequest defines the payload for commenting on a card.
type CommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
