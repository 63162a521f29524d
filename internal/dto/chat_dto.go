package dto

type AskRequest struct {
	Message string `json:"message" validate:"required"`
}

type AskResponse struct {
	Reply string `json:"reply"`
}
