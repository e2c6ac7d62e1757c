package model

import (
	"time"

	"github.com/google/uuid"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "PENDING"
	StatusProcessing ProcessingStatus = "PROCESSING"
	StatusCompleted  ProcessingStatus = "COMPLETED"
	StatusFailed     ProcessingStatus = "FAILED"
)

// Terminal reports whether no further transitions are allowed out of s.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Contract is the stored record for one uploaded document. Data is only
// populated once Status is COMPLETED; a reprocess replaces it wholesale.
type Contract struct {
	ID                    uuid.UUID
	Filename              string
	FileSize              int64
	Status                ProcessingStatus
	ProgressPercentage    int
	ErrorMessage          *string
	Data                  *ContractData
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ProcessingStartedAt   *time.Time
	ProcessingCompletedAt *time.Time
}

// ContractStatusView is the snapshot exposed to status-polling consumers.
type ContractStatusView struct {
	ContractID            uuid.UUID        `json:"contract_id"`
	Status                ProcessingStatus `json:"status"`
	ProgressPercentage    int              `json:"progress_percentage"`
	ErrorMessage          *string          `json:"error_message,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	ProcessingStartedAt   *time.Time       `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time       `json:"processing_completed_at,omitempty"`
}

func (c *Contract) StatusView() ContractStatusView {
	return ContractStatusView{
		ContractID:            c.ID,
		Status:                c.Status,
		ProgressPercentage:    c.ProgressPercentage,
		ErrorMessage:          c.ErrorMessage,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
		ProcessingStartedAt:   c.ProcessingStartedAt,
		ProcessingCompletedAt: c.ProcessingCompletedAt,
	}
}
