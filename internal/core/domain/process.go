package domain

import "time"

// ProcessStatus is the lifecycle state of a legal process.
type ProcessStatus string

const (
	ProcessActive    ProcessStatus = "em_andamento"
	ProcessSuspended ProcessStatus = "suspenso"
	ProcessArchived  ProcessStatus = "arquivado"
)

// ValidProcessStatus reports whether s is one of the known lifecycle states.
func ValidProcessStatus(s ProcessStatus) bool {
	switch s {
	case ProcessActive, ProcessSuspended, ProcessArchived:
		return true
	}
	return false
}

// Process is an owner-scoped legal case record. Every operation on a process
// is restricted to the user that created it.
type Process struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Number    string        `json:"number" bson:"number"`
	Court     string        `json:"court" bson:"court"`
	Subject   string        `json:"subject" bson:"subject"`
	Status    ProcessStatus `json:"status" bson:"status"`
	OwnerID   string        `json:"owner_id" bson:"owner_id"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
