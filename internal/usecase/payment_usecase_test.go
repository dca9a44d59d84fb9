package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rental_portal/internal/domain/entities"
	mock_interfaces "rental_portal/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceID(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	a := InvoiceID("t-1", entities.PaymentTypeRent, due)
	if a != InvoiceID("t-1", entities.PaymentTypeRent, due) {
		t.Fatalf("expected stable id")
	}
	if a == InvoiceID("t-1", entities.PaymentTypeUtility, due) {
		t.Fatalf("expected type to change the id")
	}
	if a == InvoiceID("t-1", entities.PaymentTypeRent, due.AddDate(0, 1, 0)) {
		t.Fatalf("expected due date to change the id")
	}
	if a == InvoiceID("t-2", entities.PaymentTypeRent, due) {
		t.Fatalf("expected tenant to change the id")
	}
}

func TestPaymentUseCase_LogValidation(t *testing.T) {
	ctx := context.Background()
	uc := NewPaymentUseCase(nil, nil, nil, nil)
	valid := LogPaymentInput{TenantID: "t-1", Type: entities.PaymentTypeRent, Amount: decimal.NewFromInt(10), DueDate: time.Now()}

	cases := []struct {
		name   string
		mutate func(*LogPaymentInput)
		want   error
	}{
		{"unknown type", func(in *LogPaymentInput) { in.Type = "FINE" }, ErrInvalidPaymentInput},
		{"zero amount", func(in *LogPaymentInput) { in.Amount = decimal.Zero }, ErrInvalidPaymentInput},
		{"missing due date", func(in *LogPaymentInput) { in.DueDate = time.Time{} }, ErrInvalidPaymentInput},
		{"overdue at creation", func(in *LogPaymentInput) { in.Status = entities.PaymentStatusOverdue }, ErrInvalidPaymentStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			if _, err := uc.Log(ctx, in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("method too long", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.Settle(ctx, "p-1", strings.Repeat("x", 65)); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{}, nil)
		if _, err := uc.Settle(ctx, "p-1", ""); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("defaults to cash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{ID: "p-1", Amount: decimal.NewFromInt(50), Status: entities.PaymentStatusOverdue}, nil)
		repo.EXPECT().Settle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.Method != entities.PaymentMethodManual || p.Status != entities.PaymentStatusPaid || !p.AmountPaid.Equal(p.Amount) || p.PaidAt == nil {
				t.Fatalf("unexpected payment: %+v", p)
			}
			return p, nil
		})
		if _, err := uc.Settle(ctx, "p-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
