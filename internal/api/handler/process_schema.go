package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProcessRequest struct {
	Number  string `json:"number"  validate:"required"`
	Court   string `json:"court"   validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Status  string `json:"status"  validate:"omitempty,oneof=em_andamento suspenso arquivado"`
}

type updateProcessRequest struct {
	Number  string `json:"number"`
	Court   string `json:"court"`
	Subject string `json:"subject"`
	Status  string `json:"status" validate:"omitempty,oneof=em_andamento suspenso arquivado"`
}

// processResponse is the transport view of a process. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type processResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Court     string    `json:"court"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listProcessesResponse struct {
	Data []processResponse `json:"data"`
}
