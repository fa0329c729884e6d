package services

import (
	"time"

	"pos-service/models"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository interfaces and peripheral services used
// across the service tests.

func nowPtr() *time.Time {
	now := time.Now()
	return &now
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOpenOrderByTable(tableID uint) (*models.Order, error) {
	args := m.Called(tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveOrder(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepository) FindItemByID(id uint) (*models.OrderItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) FindItemsByIDs(ids []uint) ([]models.OrderItem, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) CreateItems(items []*models.OrderItem) error {
	args := m.Called(items)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveItem(item *models.OrderItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateItemVersioned(item *models.OrderItem, expectedVersion int) error {
	args := m.Called(item, expectedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepository) FindUnplannedToFollowItems(orderID uint) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) StampPrinted(planIDs, firedIDs []uint, firedCartIDs []string, now time.Time) error {
	args := m.Called(planIDs, firedIDs, firedCartIDs, now)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateSupplements(supps []*models.Supplement) error {
	args := m.Called(supps)
	return args.Error(0)
}

func (m *MockOrderRepository) SplitItem(src, comp *models.OrderItem) error {
	args := m.Called(src, comp)
	return args.Error(0)
}

func (m *MockOrderRepository) MergeItems(keep *models.OrderItem, removeID uint) error {
	args := m.Called(keep, removeID)
	return args.Error(0)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) FindAll(includeArchived bool) ([]models.Table, error) {
	args := m.Called(includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Table), args.Error(1)
}

func (m *MockTableRepository) FindByID(id uint) (*models.Table, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockTableRepository) Create(table *models.Table) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) Save(table *models.Table) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) SetStatus(id uint, status string, openedBy *uint) error {
	args := m.Called(id, status, openedBy)
	return args.Error(0)
}

func (m *MockTableRepository) Archive(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTableRepository) Transfer(orderID, fromTableID, toTableID uint, openedBy *uint) error {
	args := m.Called(orderID, fromTableID, toTableID, openedBy)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindCategories() ([]models.MenuCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuCategory), args.Error(1)
}

func (m *MockMenuRepository) FindItems(includeArchived bool) ([]models.MenuItem, error) {
	args := m.Called(includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindItemByID(id uint) (*models.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindItemsByIDs(ids []uint) (map[uint]models.MenuItem, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) CreateItem(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) SaveItem(item *models.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockMenuRepository) ArchiveItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(payment *models.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByOrder(orderID uint) ([]models.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumByOrder(orderID uint) (float64, float64, float64, error) {
	args := m.Called(orderID)
	return args.Get(0).(float64), args.Get(1).(float64), args.Get(2).(float64), args.Error(3)
}

func (m *MockPaymentRepository) HasSplitReference(orderItemID uint) (bool, error) {
	args := m.Called(orderItemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Settle(order *models.Order, snapshot *models.DailySales) error {
	args := m.Called(order, snapshot)
	return args.Error(0)
}

func (m *MockPaymentRepository) DailyReport(date string) (*models.DailyReport, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ticket *models.KitchenTicket) error {
	args := m.Called(ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) FindByID(id uint) (*models.KitchenTicket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KitchenTicket), args.Error(1)
}

func (m *MockTicketRepository) Find(destination, status string) ([]models.KitchenTicket, error) {
	args := m.Called(destination, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KitchenTicket), args.Error(1)
}

func (m *MockTicketRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockDispatchService struct {
	mock.Mock
}

func (m *MockDispatchService) DispatchOrder(order *models.Order, fired []models.OrderItem, force bool) ([]models.KitchenTicket, error) {
	args := m.Called(order, fired, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.KitchenTicket), args.Error(1)
}

type MockKafkaService struct {
	mock.Mock
}

func (m *MockKafkaService) PushMessage(topic, key string, message []byte) error {
	args := m.Called(topic, key, message)
	return args.Error(0)
}
