package db_models

import (
	"github.com/google/uuid"
)

type NotificationTarget string

const (
	TargetAll      NotificationTarget = "all"
	TargetSpecific NotificationTarget = "specific"
)

// Notification is one materialized row per recipient. Broadcasts share
// title/message/type across rows; the read flag is per recipient and the
// only mutable field.
type Notification struct {
	BaseModel
	SenderID    uuid.UUID `gorm:"index;not null"`
	RecipientID uuid.UUID `gorm:"index;not null"`

	Title   string
	Message string
	Type    string `gorm:"default:general"`

	Read       bool               `gorm:"default:false;index"`
	TargetType NotificationTarget `gorm:"size:16;default:specific"`

	Sender    Account `gorm:"foreignKey:SenderID"`
	Recipient Account `gorm:"foreignKey:RecipientID"`
}
