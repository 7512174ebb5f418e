package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type NotificationServiceInterface interface {
	// Send fans the notification out to each resolved recipient. Delivery is
	// per row; one failed insert does not abort the rest.
	Send(ctx context.Context, senderID uuid.UUID, req request_models.SendNotificationRequest) (response_models.SendNotificationResponse, error)

	ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]response_models.NotificationResponse, error)
	MarkRead(ctx context.Context, recipientID uuid.UUID, notificationID string) error
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	accountRepo      repositories.AccountRepository
}

func NewNotificationService(
	notificationRepo repositories.INotificationRepository,
	accountRepo repositories.AccountRepository) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
	}
}

func (n *NotificationService) Send(ctx context.Context, senderID uuid.UUID, req request_models.SendNotificationRequest) (response_models.SendNotificationResponse, error) {

	recipients, err := n.resolveRecipients(ctx, req)
	if err != nil {
		return response_models.SendNotificationResponse{}, err
	}

	notificationType := req.Type
	if notificationType == "" {
		notificationType = "general"
	}

	sent := 0
	for _, recipientID := range recipients {
		notification := &db_models.Notification{
			SenderID:    senderID,
			RecipientID: recipientID,
			Title:       req.Title,
			Message:     req.Message,
			Type:        notificationType,
			TargetType:  db_models.NotificationTarget(req.TargetType),
		}

		if err := n.notificationRepo.CreateNotification(ctx, notification); err != nil {
			log.Printf("failed to deliver notification to %s: %v", recipientID, err)
			continue
		}
		sent++
	}

	return response_models.SendNotificationResponse{SentCount: sent}, nil
}

func (n *NotificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) ([]response_models.NotificationResponse, error) {

	notifications, err := n.notificationRepo.ListByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}

	return responses, nil
}

func (n *NotificationService) MarkRead(ctx context.Context, recipientID uuid.UUID, notificationID string) error {

	notification, err := n.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil || notification.RecipientID != recipientID {
		return utils.ErrNotificationNotFound
	}

	affected, err := n.notificationRepo.MarkRead(ctx, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotificationNotFound
	}

	return nil
}

func (n *NotificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	count, err := n.notificationRepo.UnreadCount(ctx, recipientID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (n *NotificationService) resolveRecipients(ctx context.Context, req request_models.SendNotificationRequest) ([]uuid.UUID, error) {

	if req.TargetType == string(db_models.TargetAll) {
		customers, err := n.accountRepo.ListCustomers(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		ids := make([]uuid.UUID, 0, len(customers))
		for i := range customers {
			ids = append(ids, customers[i].ID)
		}
		return ids, nil
	}

	if len(req.RecipientIDs) == 0 {
		return nil, utils.ErrInvalidRecipients
	}

	ids := make([]uuid.UUID, 0, len(req.RecipientIDs))
	for _, raw := range req.RecipientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, utils.ErrInvalidRecipients
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toNotificationResponse(notification *db_models.Notification) response_models.NotificationResponse {
	return response_models.NotificationResponse{
		ID:          notification.ID.String(),
		Title:       notification.Title,
		Message:     notification.Message,
		Type:        notification.Type,
		Read:        notification.Read,
		TargetType:  string(notification.TargetType),
		CreatedDate: time.Unix(notification.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
