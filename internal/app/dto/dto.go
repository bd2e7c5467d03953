package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// FieldError одно нарушенное правило валидации
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

type ValidationErrorResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// ============ Пользователи ============

type UserCredentials struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type RegisterResponse struct {
	Registered bool   `json:"registered"`
	ID         uint   `json:"id,omitempty"`
	Error      string `json:"error,omitempty"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	AuthToken string `json:"auth_token,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	ExpiresIn int    `json:"expires_in,omitempty"` // секунды
}

type UserDeletedResponse struct {
	UserDeleted bool   `json:"userDeleted"`
	Message     string `json:"message,omitempty"`
}

// ============ Колонки ============

type CreateColumnRequest struct {
	ColumnTitle string `json:"columnTitle" binding:"required,min=1,max=255"`
}

type UpdateColumnRequest struct {
	NewColumnTitle string `json:"newColumnTitle" binding:"required,min=1,max=255"`
}

type ColumnUpdatedResponse struct {
	ColumnUpdated bool `json:"columnUpdated"`
}

type ColumnDeletedResponse struct {
	ColumnDeleted bool `json:"columnDeleted"`
}

// ============ Карточки ============

type CreateCardRequest struct {
	CardTitle string `json:"cardTitle" binding:"required,min=1,max=255"`
	CardText  string `json:"cardText" binding:"required,min=1,max=255"`
}

type UpdateCardTitleRequest struct {
	NewCardTitle string `json:"newCardTitle" binding:"required,min=1,max=255"`
}

type UpdateCardTextRequest struct {
	NewCardText string `json:"newCardText" binding:"required,min=1,max=255"`
}

type CardUpdatedResponse struct {
	CardUpdated bool `json:"cardUpdated"`
}

type CardDeletedResponse struct {
	CardDeleted bool `json:"cardDeleted"`
}

type CardImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// ============ Комментарии ============

type CommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=255"`
}

type CommentUpdatedResponse struct {
	CommentUpdated bool `json:"commentUpdated"`
}

type CommentDeletedResponse struct {
	CommentDeleted bool `json:"commentDeleted"`
}
