package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comnet/internal/models/request_models"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type NotificationsController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationsController(notificationService services.NotificationServiceInterface) *NotificationsController {
	return &NotificationsController{
		notificationService: notificationService,
	}
}

// Send godoc
// @Summary Send a notification
// @Description Fan a notification out to all customers or a specific recipient list (admin only)
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.SendNotificationRequest true "Notification payload"
// @Success 200 {object} response_models.SendNotificationResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/send [post]
func (n *NotificationsController) Send(c *gin.Context) {
	senderID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, message and target_type are required")
		return
	}

	result, err := n.notificationService.Send(c.Request.Context(), senderID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Notification sent successfully")
}

// ListNotifications godoc
// @Summary List notifications
// @Description Fetch the authenticated account's notifications, newest first
// @Tags Notifications
// @Accept json
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} response_models.NotificationResponse
// @Security BearerAuth
// @Router /notifications [get]
func (n *NotificationsController) ListNotifications(c *gin.Context) {
	recipientID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"

	notifications, err := n.notificationService.ListNotifications(c.Request.Context(), recipientID, unreadOnly)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Mark one of the authenticated account's notifications as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{notificationId}/read [post]
func (n *NotificationsController) MarkRead(c *gin.Context) {
	recipientID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	notificationId := c.Param("notificationId")
	if notificationId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Notification ID is required")
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), recipientID, notificationId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// UnreadCount godoc
// @Summary Get unread notification count
// @Tags Notifications
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (n *NotificationsController) UnreadCount(c *gin.Context) {
	recipientID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	count, err := n.notificationService.UnreadCount(c.Request.Context(), recipientID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unread_count": count}, "Unread count fetched successfully")
}
