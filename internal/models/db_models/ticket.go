package db_models

import (
	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type Ticket struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`

	Subject     string `gorm:"not null"`
	Description string `gorm:"not null"`
	Category    string `gorm:"size:32;default:other"`
	Priority    string `gorm:"size:16;default:low"`

	Status TicketStatus `gorm:"size:16;default:open;index"`

	// Set when the ticket moves to resolved, cleared on any other transition.
	ResolvedAt *int64

	Account Account `gorm:"foreignKey:AccountID"`
}
