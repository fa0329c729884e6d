package services

import (
	"errors"
	"strings"
	"time"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// kidsMenuNote marks a beverage line as bundled with a kids' menu; such
// lines are priced at zero when the menu item allows it.
const kidsMenuNote = "menu enfant"

// IOrderService defines the interface for order lifecycle operations.
type IOrderService interface {
	SubmitCart(req *models.CartRequest) (uint, error)
	SubmitToFollow(req *models.CartRequest) (uint, error)
	FireItems(itemIDs []uint) error
	SplitItem(itemID uint, offerQuantity int, serverID uint, reason string) ([]models.OrderItem, error)
	MergeItems(originalID, complimentaryID uint) (*models.OrderItem, error)
	OpenOrderForTable(tableID uint) (*models.Order, error)
	RemoveItem(itemID uint) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo   repository.IOrderRepository
	tableRepo   repository.ITableRepository
	menuRepo    repository.IMenuRepository
	paymentRepo repository.IPaymentRepository
	dispatch    IDispatchService
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(
	orderRepo repository.IOrderRepository,
	tableRepo repository.ITableRepository,
	menuRepo repository.IMenuRepository,
	paymentRepo repository.IPaymentRepository,
	dispatch IDispatchService,
) IOrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
		dispatch:    dispatch,
	}
}

var cartStatuses = map[string]bool{
	models.ItemPending:   true,
	models.ItemToFollow1: true,
	models.ItemToFollow2: true,
	models.ItemFired:     true,
	models.ItemCompleted: true,
}

// SubmitCart applies the full desired cart state of a table: it reuses or
// opens the table's order, updates existing lines, inserts new ones, and
// dispatches whatever is now fired.
func (s *OrderService) SubmitCart(req *models.CartRequest) (uint, error) {
	if req.TableID == 0 || req.ServerID == 0 {
		return 0, apperrors.Validation("tableId and serverId are required")
	}
	if len(req.Items) == 0 {
		return 0, apperrors.Validation("cart must contain at least one item")
	}

	order, err := s.findOrOpenOrder(req)
	if err != nil {
		return 0, err
	}

	// Resolve menu entries up front for the kids'-menu pricing rule.
	idSet := map[uint]struct{}{}
	for _, line := range req.Items {
		if line.MenuItemID == 0 {
			return order.ID, apperrors.Validation("menuItemId is required on every item")
		}
		idSet[line.MenuItemID] = struct{}{}
	}
	menuIDs := make([]uint, 0, len(idSet))
	for id := range idSet {
		menuIDs = append(menuIDs, id)
	}
	menu, err := s.menuRepo.FindItemsByIDs(menuIDs)
	if err != nil {
		return order.ID, apperrors.Storage("resolve menu items", err)
	}

	existing := make(map[uint]models.OrderItem, len(order.Items))
	for _, item := range order.Items {
		existing[item.ID] = item
	}

	now := time.Now()
	var firedCandidates []models.OrderItem
	var newItems []*models.OrderItem

	for _, line := range req.Items {
		entry, ok := menu[line.MenuItemID]
		if !ok {
			return order.ID, apperrors.NotFound("menu item %d", line.MenuItemID)
		}

		status := line.Status
		if status == "" {
			status = models.ItemPending
		}
		if !cartStatuses[status] {
			return order.ID, apperrors.Validation("unknown item status %q", status)
		}

		price := line.Price
		if entry.KidsMenuIncluded && hasKidsMenuNote(line.Notes) {
			price = 0
		}

		if line.ID == 0 {
			if line.Quantity <= 0 {
				return order.ID, apperrors.Validation("quantity must be positive")
			}
			cartID := line.CartItemID
			if cartID == "" {
				cartID = uuid.NewString()
			}
			item := &models.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          line.MenuItemID,
				CartItemID:          cartID,
				Quantity:            line.Quantity,
				Price:               price,
				Status:              status,
				Notes:               line.Notes,
				IsComplimentary:     line.IsComplimentary,
				ComplimentaryReason: line.ComplimentaryReason,
			}
			if status == models.ItemFired {
				item.FiredAt = &now
			}
			newItems = append(newItems, item)
			continue
		}

		cur, ok := existing[line.ID]
		if !ok {
			return order.ID, apperrors.NotFound("order item %d", line.ID)
		}
		if cur.IsTerminal() {
			return order.ID, apperrors.Validation("item %d is %s and cannot change", cur.ID, cur.Status)
		}

		// Quantity zero removes the line.
		if line.Quantity == 0 {
			if err := s.orderRepo.DeleteItem(cur.ID); err != nil {
				return order.ID, apperrors.Storage("delete item", err)
			}
			continue
		}
		if line.Quantity < 0 {
			return order.ID, apperrors.Validation("quantity must be positive")
		}

		updated := cur
		updated.Quantity = line.Quantity
		updated.Price = price
		updated.Notes = line.Notes
		updated.IsComplimentary = line.IsComplimentary
		updated.ComplimentaryReason = line.ComplimentaryReason
		updated.Status = status

		// Stamp hygiene: leaving fired re-arms fired dispatch, moving into a
		// pre-fire status re-arms the to-follow plan. Both apply only on a
		// genuine transition; a resubmit of an unchanged line must keep its
		// stamps or every retry would duplicate the ticket.
		if cur.Status == models.ItemFired && status != models.ItemFired {
			updated.PrintedFiredAt = nil
		}
		if cur.Status != status &&
			(status == models.ItemPending || status == models.ItemToFollow1 || status == models.ItemToFollow2) {
			updated.PrintedPlanAt = nil
		}
		if status == models.ItemFired && cur.Status != models.ItemFired {
			updated.FiredAt = &now
		}

		expected := line.Version
		if expected == 0 {
			expected = cur.Version
		}
		if err := s.orderRepo.UpdateItemVersioned(&updated, expected); err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				return order.ID, apperrors.Conflict("item %d was modified concurrently", cur.ID)
			}
			return order.ID, apperrors.Storage("update item", err)
		}
		if status == models.ItemFired {
			firedCandidates = append(firedCandidates, updated)
		}
	}

	if err := s.orderRepo.CreateItems(newItems); err != nil {
		return order.ID, apperrors.Storage("insert items", err)
	}
	for _, item := range newItems {
		if item.Status == models.ItemFired {
			firedCandidates = append(firedCandidates, *item)
		}
	}

	if len(req.Supplements) > 0 {
		supps := make([]*models.Supplement, 0, len(req.Supplements))
		for _, line := range req.Supplements {
			supps = append(supps, &models.Supplement{
				OrderID:             order.ID,
				Name:                line.Name,
				Amount:              line.Amount,
				TaxRate:             line.TaxRate,
				IsComplimentary:     line.IsComplimentary,
				ComplimentaryReason: line.ComplimentaryReason,
			})
		}
		if err := s.orderRepo.CreateSupplements(supps); err != nil {
			return order.ID, apperrors.Storage("insert supplements", err)
		}
	}

	if _, err := s.dispatch.DispatchOrder(order, firedCandidates, false); err != nil {
		return order.ID, err
	}
	return order.ID, nil
}

// SubmitToFollow inserts staged lines without firing anything: every line is
// normalized to a to-follow status before the cart flow runs. Lines that are
// already fired are refused rather than pulled back to a staged course.
func (s *OrderService) SubmitToFollow(req *models.CartRequest) (uint, error) {
	order, err := s.orderRepo.FindOpenOrderByTable(req.TableID)
	if err == nil {
		existing := make(map[uint]models.OrderItem, len(order.Items))
		for _, item := range order.Items {
			existing[item.ID] = item
		}
		for _, line := range req.Items {
			if cur, ok := existing[line.ID]; ok && cur.Status == models.ItemFired {
				return order.ID, apperrors.Validation("item %d is already fired and cannot be staged", cur.ID)
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Storage("load open order", err)
	}

	for i := range req.Items {
		if req.Items[i].Status != models.ItemToFollow2 {
			req.Items[i].Status = models.ItemToFollow1
		}
	}
	return s.SubmitCart(req)
}

// FireItems marks existing lines as fired and dispatches tickets for them
// directly, grouped by order. This path skips the idempotency filter; it is
// the sole writer of the transition, and it stamps the rows so later cart
// submissions stay idempotent.
func (s *OrderService) FireItems(itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return apperrors.Validation("itemIds must not be empty")
	}
	items, err := s.orderRepo.FindItemsByIDs(itemIDs)
	if err != nil {
		return apperrors.Storage("load items", err)
	}
	if len(items) != len(itemIDs) {
		return apperrors.NotFound("one or more items do not exist")
	}

	now := time.Now()
	byOrder := map[uint][]models.OrderItem{}
	for i := range items {
		item := &items[i]
		if item.IsTerminal() {
			return apperrors.Validation("item %d is %s and cannot fire", item.ID, item.Status)
		}
		item.Status = models.ItemFired
		item.FiredAt = &now
		if err := s.orderRepo.SaveItem(item); err != nil {
			return apperrors.Storage("fire item", err)
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], *item)
	}

	for orderID, group := range byOrder {
		order, err := s.orderRepo.FindOrderByID(orderID)
		if err != nil {
			return apperrors.NotFound("order %d", orderID)
		}
		if _, err := s.dispatch.DispatchOrder(order, group, true); err != nil {
			return err
		}
	}
	return nil
}

// SplitItem moves part of an item's quantity onto a complimentary line with
// the given reason. Comping the full quantity mutates the row in place; a
// partial comp produces a second row sharing the same cart id.
func (s *OrderService) SplitItem(itemID uint, offerQuantity int, serverID uint, reason string) ([]models.OrderItem, error) {
	if offerQuantity <= 0 {
		return nil, apperrors.Validation("offerQuantity must be positive")
	}
	item, err := s.orderRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order item %d", itemID)
		}
		return nil, apperrors.Storage("load item", err)
	}
	if offerQuantity > item.Quantity {
		return nil, apperrors.Validation("offerQuantity %d exceeds available quantity %d", offerQuantity, item.Quantity)
	}
	if item.IsComplimentary {
		return nil, apperrors.Validation("item %d is already complimentary", itemID)
	}

	// Item-level payments already pin money to this row; re-attributing it
	// across a split is not decidable, so the split is refused.
	referenced, err := s.paymentRepo.HasSplitReference(itemID)
	if err != nil {
		return nil, apperrors.Storage("check item payments", err)
	}
	if referenced {
		return nil, apperrors.Validation("item %d has payments recorded against it", itemID)
	}

	if offerQuantity == item.Quantity {
		item.IsComplimentary = true
		item.ComplimentaryReason = reason
		if err := s.orderRepo.SaveItem(item); err != nil {
			return nil, apperrors.Storage("comp item", err)
		}
		return []models.OrderItem{*item}, nil
	}

	comp := models.OrderItem{
		OrderID:             item.OrderID,
		MenuItemID:          item.MenuItemID,
		CartItemID:          item.CartItemID,
		Quantity:            offerQuantity,
		Price:               item.Price,
		Status:              item.Status,
		Notes:               item.Notes,
		IsComplimentary:     true,
		ComplimentaryReason: reason,
		PrintedPlanAt:       item.PrintedPlanAt,
		PrintedFiredAt:      item.PrintedFiredAt,
		FiredAt:             item.FiredAt,
	}
	item.Quantity -= offerQuantity

	if err := s.orderRepo.SplitItem(item, &comp); err != nil {
		return nil, apperrors.Storage("split item", err)
	}
	return []models.OrderItem{*item, comp}, nil
}

// MergeItems recombines a complimentary line with its paid sibling. Equal
// ids un-comp a single row in place.
func (s *OrderService) MergeItems(originalID, complimentaryID uint) (*models.OrderItem, error) {
	if originalID == 0 || complimentaryID == 0 {
		return nil, apperrors.Validation("originalItemId and complimentaryItemId are required")
	}

	if originalID == complimentaryID {
		item, err := s.orderRepo.FindItemByID(originalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("order item %d", originalID)
			}
			return nil, apperrors.Storage("load item", err)
		}
		if !item.IsComplimentary {
			return nil, apperrors.Validation("item %d is not complimentary", originalID)
		}
		item.IsComplimentary = false
		item.ComplimentaryReason = ""
		if err := s.orderRepo.SaveItem(item); err != nil {
			return nil, apperrors.Storage("un-comp item", err)
		}
		return item, nil
	}

	pair, err := s.orderRepo.FindItemsByIDs([]uint{originalID, complimentaryID})
	if err != nil {
		return nil, apperrors.Storage("load items", err)
	}
	if len(pair) != 2 {
		return nil, apperrors.NotFound("order item pair %d/%d", originalID, complimentaryID)
	}

	a, b := pair[0], pair[1]
	if a.IsComplimentary == b.IsComplimentary {
		return nil, apperrors.Validation("exactly one of the two items must be complimentary")
	}
	if a.MenuItemID != b.MenuItemID {
		return nil, apperrors.Validation("items reference different menu items")
	}
	if a.OrderID != b.OrderID {
		return nil, apperrors.Validation("items belong to different orders")
	}
	// Collapsing a fired line into a pending one would lose kitchen state.
	if a.Status != b.Status {
		return nil, apperrors.Validation("items have different statuses and cannot merge")
	}

	paid, comp := a, b
	if paid.IsComplimentary {
		paid, comp = b, a
	}
	paid.Quantity += comp.Quantity
	paid.IsComplimentary = false
	paid.ComplimentaryReason = ""

	if err := s.orderRepo.MergeItems(&paid, comp.ID); err != nil {
		return nil, apperrors.Storage("merge items", err)
	}
	return &paid, nil
}

// OpenOrderForTable returns the table's current open order with its lines.
func (s *OrderService) OpenOrderForTable(tableID uint) (*models.Order, error) {
	if tableID == 0 {
		return nil, apperrors.Validation("tableId is required")
	}
	order, err := s.orderRepo.FindOpenOrderByTable(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("no open order for table %d", tableID)
		}
		return nil, apperrors.Storage("load open order", err)
	}
	return order, nil
}

// RemoveItem deletes one line from its order.
func (s *OrderService) RemoveItem(itemID uint) error {
	if _, err := s.orderRepo.FindItemByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("order item %d", itemID)
		}
		return apperrors.Storage("load item", err)
	}
	if err := s.orderRepo.DeleteItem(itemID); err != nil {
		return apperrors.Storage("delete item", err)
	}
	return nil
}

// findOrOpenOrder reuses the table's open order or opens a new one, keeping
// the table's occupied status in sync either way.
func (s *OrderService) findOrOpenOrder(req *models.CartRequest) (*models.Order, error) {
	order, err := s.orderRepo.FindOpenOrderByTable(req.TableID)
	if err == nil {
		table, terr := s.tableRepo.FindByID(req.TableID)
		if terr == nil && table.Status != models.TableOccupied {
			// Status drifted out of sync with the open order; repair it.
			opener := order.ServerID
			if serr := s.tableRepo.SetStatus(table.ID, models.TableOccupied, &opener); serr != nil {
				return nil, apperrors.Storage("repair table status", serr)
			}
		}
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Storage("load open order", err)
	}

	table, err := s.tableRepo.FindByID(req.TableID)
	if err != nil {
		return nil, apperrors.NotFound("table %d", req.TableID)
	}

	order = &models.Order{
		TableID:  table.ID,
		ServerID: req.ServerID,
		Status:   models.OrderOpen,
		Covers:   req.Covers,
	}
	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, apperrors.Storage("create order", err)
	}
	opener := req.ServerID
	if err := s.tableRepo.SetStatus(table.ID, models.TableOccupied, &opener); err != nil {
		return nil, apperrors.Storage("occupy table", err)
	}
	return order, nil
}

func hasKidsMenuNote(notes string) bool {
	return strings.Contains(strings.ToLower(notes), kidsMenuNote)
}
