package services

import (
	"testing"
	"time"

	"pos-service/apperrors"
	"pos-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newPaymentServiceForTest() (*MockPaymentRepository, *MockOrderRepository, *MockTableRepository, IPaymentService) {
	paymentRepo := new(MockPaymentRepository)
	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	svc := NewPaymentService(paymentRepo, orderRepo, tableRepo)
	return paymentRepo, orderRepo, tableRepo, svc
}

func openOrderWithBurger() *models.Order {
	created := time.Date(2026, 8, 30, 19, 30, 0, 0, time.Local)
	return &models.Order{
		Model:    gorm.Model{ID: 7, CreatedAt: created},
		TableID:  1,
		ServerID: 2,
		Status:   models.OrderOpen,
		Covers:   2,
		Items: []models.OrderItem{
			{Model: gorm.Model{ID: 5}, OrderID: 7, MenuItemID: 10, Quantity: 1, Price: 10.0, Status: models.ItemFired},
			{Model: gorm.Model{ID: 6}, OrderID: 7, MenuItemID: 10, Quantity: 1, Price: 10.0, Status: models.ItemFired,
				IsComplimentary: true, ComplimentaryReason: "erreur"},
		},
	}
}

func TestRecordPayment_FullSettlementClosesOrder(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := openOrderWithBurger()
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	paymentRepo.On("Create", mock.AnythingOfType("*models.Payment")).Return(nil)
	paymentRepo.On("SumByOrder", uint(7)).Return(10.0, 1.0, 0.0, nil)

	var snapshot *models.DailySales
	paymentRepo.On("Settle", order, mock.AnythingOfType("*models.DailySales")).Run(func(args mock.Arguments) {
		snapshot = args.Get(1).(*models.DailySales)
	}).Return(nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 10.0, Tip: 1.0, PaymentMethod: models.PayCash,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsFullyPaid)
	// The comped burger is excluded: the order total is the paid line only.
	assert.Equal(t, 10.0, result.OrderTotal)
	assert.Equal(t, 0.0, result.RemainingAmount)

	// Snapshot follows the service date, not the settlement date.
	assert.NotNil(t, snapshot)
	assert.Equal(t, "2026-08-30", snapshot.Date)
	assert.Equal(t, 10.0, snapshot.Total)
	assert.Equal(t, 1.0, snapshot.Tips)
	assert.Equal(t, 2, snapshot.Covers)
}

func TestRecordPayment_PartialPaymentLeavesOrderOpen(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := openOrderWithBurger()
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	paymentRepo.On("Create", mock.Anything).Return(nil)
	paymentRepo.On("SumByOrder", uint(7)).Return(4.0, 0.0, 0.0, nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 4.0, PaymentMethod: models.PayCard,
	})

	assert.NoError(t, err)
	assert.False(t, result.IsFullyPaid)
	assert.Equal(t, 6.0, result.RemainingAmount)
	paymentRepo.AssertNotCalled(t, "Settle")
}

func TestRecordPayment_RoundingToleranceSettles(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := openOrderWithBurger()
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	paymentRepo.On("Create", mock.Anything).Return(nil)
	paymentRepo.On("SumByOrder", uint(7)).Return(9.99, 0.0, 0.0, nil)
	paymentRepo.On("Settle", order, mock.Anything).Return(nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 9.99, PaymentMethod: models.PayCash,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsFullyPaid)
}

func TestRecordPayment_DiscountCountsTowardSettlement(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := openOrderWithBurger()
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	paymentRepo.On("Create", mock.Anything).Return(nil)
	paymentRepo.On("SumByOrder", uint(7)).Return(8.0, 0.0, 2.0, nil)
	paymentRepo.On("Settle", order, mock.Anything).Return(nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 8.0, Discount: 2.0, PaymentMethod: models.PayCard,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsFullyPaid)
}

func TestRecordPayment_EmptyOrderIsDeleted(t *testing.T) {
	paymentRepo, orderRepo, tableRepo, svc := newPaymentServiceForTest()

	order := &models.Order{Model: gorm.Model{ID: 7}, TableID: 1, Status: models.OrderOpen}
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	orderRepo.On("DeleteOrder", uint(7)).Return(nil)
	tableRepo.On("SetStatus", uint(1), models.TableAvailable, (*uint)(nil)).Return(nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, PaymentMethod: models.PayCash,
	})

	assert.NoError(t, err)
	assert.True(t, result.IsFullyPaid)
	paymentRepo.AssertNotCalled(t, "Create")
	orderRepo.AssertCalled(t, "DeleteOrder", uint(7))
}

func TestRecordPayment_EmptyOrderRejectsTenderedAmount(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := &models.Order{Model: gorm.Model{ID: 7}, TableID: 1, Status: models.OrderOpen}
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)

	// Money against a tab with nothing on it has nowhere to go; it must not
	// be swallowed by the cleanup path.
	_, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 5.0, PaymentMethod: models.PayCash,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	orderRepo.AssertNotCalled(t, "DeleteOrder")
	paymentRepo.AssertNotCalled(t, "Create")
}

func TestRecordPayment_ClosedOrderRejected(t *testing.T) {
	_, orderRepo, _, svc := newPaymentServiceForTest()

	closed := openOrderWithBurger()
	closed.Status = models.OrderClosed
	orderRepo.On("FindOrderByID", uint(7)).Return(closed, nil)

	_, err := svc.RecordPayment(&models.PaymentRequest{OrderID: 7, Amount: 5, PaymentMethod: models.PayCash})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordPayment_UnknownOrder(t *testing.T) {
	_, orderRepo, _, svc := newPaymentServiceForTest()

	orderRepo.On("FindOrderByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordPayment(&models.PaymentRequest{OrderID: 99, Amount: 5, PaymentMethod: models.PayCash})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordPayment_Validation(t *testing.T) {
	_, _, _, svc := newPaymentServiceForTest()

	_, err := svc.RecordPayment(&models.PaymentRequest{Amount: 5, PaymentMethod: models.PayCash})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RecordPayment(&models.PaymentRequest{OrderID: 7, Amount: -1, PaymentMethod: models.PayCash})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RecordPayment(&models.PaymentRequest{OrderID: 7, Amount: 5, PaymentMethod: "cheque"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordPayment_SupplementsCountInTotal(t *testing.T) {
	paymentRepo, orderRepo, _, svc := newPaymentServiceForTest()

	order := openOrderWithBurger()
	order.Supplements = []models.Supplement{
		{OrderID: 7, Name: "Sauce truffe", Amount: 2.5},
		{OrderID: 7, Name: "Offert", Amount: 3.0, IsComplimentary: true},
	}
	orderRepo.On("FindOrderByID", uint(7)).Return(order, nil)
	paymentRepo.On("Create", mock.Anything).Return(nil)
	paymentRepo.On("SumByOrder", uint(7)).Return(5.0, 0.0, 0.0, nil)

	result, err := svc.RecordPayment(&models.PaymentRequest{
		OrderID: 7, Amount: 5.0, PaymentMethod: models.PayCash,
	})

	assert.NoError(t, err)
	assert.Equal(t, 12.5, result.OrderTotal)
	assert.False(t, result.IsFullyPaid)
}
