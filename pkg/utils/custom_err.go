package utils

import "errors"

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTicketNotFound       = errors.New("ticket not found")

	ErrInvalidPlanDetails   = errors.New("invalid plan details")
	ErrInvalidTicketDetails = errors.New("invalid ticket details")
	ErrInvalidPassword      = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrInvalidRecipients    = errors.New("invalid recipient list")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")

	ErrUsernameTaken        = errors.New("username already exists")
	ErrDuplicateReferral    = errors.New("referral already exists for this email")
	ErrPlanHasActiveSubs    = errors.New("plan has active subscriptions")
	ErrAccountHasActiveSubs = errors.New("account has active subscriptions")

	ErrDatabaseError = errors.New("database error")
)
