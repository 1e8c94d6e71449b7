package handler

import "time"

type createPetitionRequest struct {
	Title         string `json:"title" validate:"required"`
	Body          string `json:"body"  validate:"required"`
	ProcessNumber string `json:"process_number"`
}

type updatePetitionRequest struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	ProcessNumber string `json:"process_number"`
}

type petitionResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	ProcessNumber string    `json:"process_number,omitempty"`
	AuthorID      string    `json:"author_id"`
	AuthorName    string    `json:"author_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listPetitionsResponse struct {
	Data []petitionResponse `json:"data"`
}
