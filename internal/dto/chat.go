package dto

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Question string `json:"question" validate:"required"`
}

// ChatResponse is the body of a successful POST /chat.
type ChatResponse struct {
	Answer string `json:"answer"`
}
