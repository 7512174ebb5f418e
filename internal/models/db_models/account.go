package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	// Archived accounts keep their rows for subscription history but are
	// excluded from broadcasts and customer counts.
	RoleArchived = "archived"
)

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user;index"`
	Name         string
	Email        string `gorm:"index"`
	Phone        string
	City         string
	State        string

	AutopayEnabled    bool   `gorm:"default:false"`
	NotificationPrefs string `gorm:"default:'email,sms'"`
	ReferralCode      string `gorm:"uniqueIndex"`
	LastLoginAt       *int64
}
