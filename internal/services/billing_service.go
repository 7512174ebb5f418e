package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comnet/internal/models/db_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type BillingServiceInterface interface {
	ListPayments(ctx context.Context, accountID uuid.UUID) ([]response_models.PaymentResponse, error)
	GetRevenueSummary(ctx context.Context) (response_models.RevenueSummaryResponse, error)
}

type BillingService struct {
	paymentRepo repositories.IPaymentRepository
	subRepo     repositories.ISubscriptionRepository
	accountRepo repositories.AccountRepository
}

func NewBillingService(
	paymentRepo repositories.IPaymentRepository,
	subRepo repositories.ISubscriptionRepository,
	accountRepo repositories.AccountRepository) BillingServiceInterface {
	return &BillingService{
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		accountRepo: accountRepo,
	}
}

func (b *BillingService) ListPayments(ctx context.Context, accountID uuid.UUID) ([]response_models.PaymentResponse, error) {

	payments, err := b.paymentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, toPaymentResponse(&payments[i]))
	}

	return responses, nil
}

func (b *BillingService) GetRevenueSummary(ctx context.Context) (response_models.RevenueSummaryResponse, error) {

	revenue, err := b.paymentRepo.TotalPaid(ctx)
	if err != nil {
		return response_models.RevenueSummaryResponse{}, utils.ErrDatabaseError
	}

	activeSubs, err := b.subRepo.CountActive(ctx)
	if err != nil {
		return response_models.RevenueSummaryResponse{}, utils.ErrDatabaseError
	}

	customers, err := b.accountRepo.CountCustomers(ctx)
	if err != nil {
		return response_models.RevenueSummaryResponse{}, utils.ErrDatabaseError
	}

	return response_models.RevenueSummaryResponse{
		TotalRevenue:        revenue.StringFixed(2),
		ActiveSubscriptions: activeSubs,
		Customers:           customers,
	}, nil
}

func toPaymentResponse(payment *db_models.Payment) response_models.PaymentResponse {
	return response_models.PaymentResponse{
		ID:             payment.ID.String(),
		Amount:         payment.Amount.StringFixed(2),
		Status:         string(payment.Status),
		Method:         payment.Method,
		BillMonth:      payment.BillMonth,
		BillYear:       payment.BillYear,
		LateFee:        payment.LateFee.StringFixed(2),
		Discount:       payment.Discount.StringFixed(2),
		TaxAmount:      payment.TaxAmount.StringFixed(2),
		TransactionRef: payment.TransactionRef,
		CreatedDate:    time.Unix(payment.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
