package services

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"
)

// IDispatchService defines the interface for kitchen/bar ticket dispatch.
type IDispatchService interface {
	// DispatchOrder converts fired candidates and never-dispatched to-follow
	// lines into tickets. With force=false, candidates already stamped
	// printed_fired_at are silently skipped so redundant cart submissions
	// cannot duplicate tickets. The direct fire path passes force=true
	// because it is the sole writer of that transition.
	DispatchOrder(order *models.Order, fired []models.OrderItem, force bool) ([]models.KitchenTicket, error)
}

// DispatchService implements IDispatchService.
type DispatchService struct {
	orderRepo    repository.IOrderRepository
	ticketRepo   repository.ITicketRepository
	menuRepo     repository.IMenuRepository
	tableRepo    repository.ITableRepository
	kafkaService IKafkaService
	printer      IPrinterService
	kitchenTopic string
	barTopic     string
}

// NewDispatchService creates a new DispatchService instance. kafkaSvc and
// printer may be nil when those peripherals are disabled.
func NewDispatchService(
	orderRepo repository.IOrderRepository,
	ticketRepo repository.ITicketRepository,
	menuRepo repository.IMenuRepository,
	tableRepo repository.ITableRepository,
	kafkaSvc IKafkaService,
	printer IPrinterService,
	kitchenTopic, barTopic string,
) IDispatchService {
	return &DispatchService{
		orderRepo:    orderRepo,
		ticketRepo:   ticketRepo,
		menuRepo:     menuRepo,
		tableRepo:    tableRepo,
		kafkaService: kafkaSvc,
		printer:      printer,
		kitchenTopic: kitchenTopic,
		barTopic:     barTopic,
	}
}

// DispatchOrder handles one dispatch event for an order.
func (s *DispatchService) DispatchOrder(order *models.Order, fired []models.OrderItem, force bool) ([]models.KitchenTicket, error) {
	// 1. Drop fired candidates that already landed on a ticket.
	eligible := make([]models.OrderItem, 0, len(fired))
	for _, item := range fired {
		if force || item.PrintedFiredAt == nil {
			eligible = append(eligible, item)
		}
	}

	// 2. Pick up staged lines that were never announced to the kitchen.
	toFollow, err := s.orderRepo.FindUnplannedToFollowItems(order.ID)
	if err != nil {
		return nil, apperrors.Storage("load to-follow items", err)
	}

	if len(eligible) == 0 && len(toFollow) == 0 {
		return nil, nil
	}

	// 3. Resolve menu entries for names and kitchen/bar routing.
	idSet := map[uint]struct{}{}
	for _, item := range eligible {
		idSet[item.MenuItemID] = struct{}{}
	}
	for _, item := range toFollow {
		idSet[item.MenuItemID] = struct{}{}
	}
	menuIDs := make([]uint, 0, len(idSet))
	for id := range idSet {
		menuIDs = append(menuIDs, id)
	}
	menu, err := s.menuRepo.FindItemsByIDs(menuIDs)
	if err != nil {
		return nil, apperrors.Storage("resolve menu items", err)
	}

	table, err := s.tableRepo.FindByID(order.TableID)
	if err != nil {
		return nil, apperrors.NotFound("table %d", order.TableID)
	}

	// 4. Build one ordered line list per destination.
	lines := map[string][]models.TicketLine{}
	addLine := func(item models.OrderItem, phase string) error {
		entry, ok := menu[item.MenuItemID]
		if !ok {
			return apperrors.NotFound("menu item %d", item.MenuItemID)
		}
		dest := entry.Route
		if dest != models.RouteBar {
			dest = models.RouteKitchen
		}
		lines[dest] = append(lines[dest], models.TicketLine{
			Name:     entry.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Phase:    phase,
		})
		return nil
	}
	for _, item := range eligible {
		if err := addLine(item, models.PhaseDirect); err != nil {
			return nil, err
		}
	}
	for _, item := range toFollow {
		if err := addLine(item, item.Status); err != nil {
			return nil, err
		}
	}

	// 5. One ticket per non-empty destination.
	var created []models.KitchenTicket
	for _, dest := range []string{models.RouteKitchen, models.RouteBar} {
		destLines := lines[dest]
		if len(destLines) == 0 {
			continue
		}
		ticket := models.KitchenTicket{
			OrderID:     order.ID,
			TableNumber: table.Number,
			Destination: dest,
			Status:      models.TicketPending,
			Lines:       destLines,
		}
		if err := s.ticketRepo.Create(&ticket); err != nil {
			return created, apperrors.Storage("create ticket", err)
		}
		created = append(created, ticket)
		ticketsDispatched.WithLabelValues(dest).Inc()
	}

	// 6. Stamp every dispatched row. New rows without a persisted id at
	// build time are matched by cart id.
	var planIDs, firedIDs []uint
	var firedCartIDs []string
	for _, item := range toFollow {
		planIDs = append(planIDs, item.ID)
	}
	for _, item := range eligible {
		if item.ID != 0 {
			firedIDs = append(firedIDs, item.ID)
		} else if item.CartItemID != "" {
			firedCartIDs = append(firedCartIDs, item.CartItemID)
		}
	}
	if err := s.orderRepo.StampPrinted(planIDs, firedIDs, firedCartIDs, time.Now()); err != nil {
		return created, apperrors.Storage("stamp printed items", err)
	}

	// Peripherals are best effort: the tickets are committed, a dead broker
	// or printer must not fail the order operation.
	s.announce(created)

	return created, nil
}

func (s *DispatchService) announce(tickets []models.KitchenTicket) {
	for i := range tickets {
		ticket := &tickets[i]
		if s.kafkaService != nil {
			topic := s.kitchenTopic
			if ticket.Destination == models.RouteBar {
				topic = s.barTopic
			}
			if payload, err := json.Marshal(ticket); err == nil {
				// Keyed by table so one table's tickets stay in order.
				key := "table-" + strconv.Itoa(ticket.TableNumber)
				if err := s.kafkaService.PushMessage(topic, key, payload); err != nil {
					slog.Warn("ticket event not published", "ticket", ticket.ID, "error", err)
				}
			}
		}
		if s.printer != nil {
			if err := s.printer.PrintTicket(ticket); err != nil {
				slog.Warn("ticket not printed", "ticket", ticket.ID, "error", err)
			}
		}
	}
}
