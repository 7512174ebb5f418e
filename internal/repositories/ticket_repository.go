package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type ITicketRepository interface {
	CreateTicket(ctx context.Context, ticket *db_models.Ticket) error
	GetByID(ctx context.Context, ticketID string) (*db_models.Ticket, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Ticket, error)

	// ListAll returns every ticket with its account preloaded, newest
	// first; this is the admin support queue.
	ListAll(ctx context.Context) ([]db_models.Ticket, error)

	UpdateStatus(ctx context.Context, ticketID string, status db_models.TicketStatus, resolvedAt *int64) error
}

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) ITicketRepository {
	return &TicketRepository{db: db}
}

func (t TicketRepository) CreateTicket(ctx context.Context, ticket *db_models.Ticket) error {
	return t.db.WithContext(ctx).Create(ticket).Error
}

func (t TicketRepository) GetByID(ctx context.Context, ticketID string) (*db_models.Ticket, error) {
	var ticket db_models.Ticket
	err := t.db.WithContext(ctx).First(&ticket, "id = ?", ticketID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (t TicketRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Ticket, error) {
	var tickets []db_models.Ticket
	err := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (t TicketRepository) ListAll(ctx context.Context) ([]db_models.Ticket, error) {
	var tickets []db_models.Ticket
	err := t.db.WithContext(ctx).
		Preload("Account").
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (t TicketRepository) UpdateStatus(ctx context.Context, ticketID string, status db_models.TicketStatus, resolvedAt *int64) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Ticket{}).
		Where("id = ?", ticketID).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": resolvedAt,
		}).Error
}
