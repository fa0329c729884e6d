package main

import (
	"log/slog"
	"os"
	"time"

	"pos-service/config"
	"pos-service/controllers"
	"pos-service/logging"
	"pos-service/models"
	"pos-service/repository"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	logging.Setup()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	slog.Info("running database migrations")
	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	seedFloorPlan(db)

	// Repositories.
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	planningRepo := repository.NewPlanningRepository(db)

	// Peripherals are optional; the dispatch service tolerates their absence.
	var kafkaSvc services.IKafkaService
	if cfg.Kafka.Enabled {
		kafkaSvc, err = services.NewKafkaService(cfg.Kafka.Brokers)
		if err != nil {
			slog.Error("failed to initialize Kafka service", "error", err)
			os.Exit(1)
		}
	}
	var printerSvc services.IPrinterService
	if cfg.Printer.Enabled {
		printerSvc = services.NewPrinterService(cfg.Printer.Endpoint,
			time.Duration(cfg.Printer.TimeoutSeconds)*time.Second)
	}

	// Services.
	dispatchSvc := services.NewDispatchService(orderRepo, ticketRepo, menuRepo, tableRepo,
		kafkaSvc, printerSvc, cfg.Kafka.KitchenTopic, cfg.Kafka.BarTopic)
	orderSvc := services.NewOrderService(orderRepo, tableRepo, menuRepo, paymentRepo, dispatchSvc)
	ticketSvc := services.NewTicketService(ticketRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo, tableRepo)
	tableSvc := services.NewTableService(tableRepo, orderRepo)
	menuSvc := services.NewMenuService(menuRepo)
	reservationSvc := services.NewReservationService(reservationRepo, tableRepo)
	planningSvc := services.NewPlanningService(planningRepo)

	// Controllers.
	orderCtrl := controllers.NewOrderController(orderSvc)
	kitchenCtrl := controllers.NewKitchenController(ticketSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	planningCtrl := controllers.NewPlanningController(planningSvc)

	app := fiber.New()

	app.Post("/orders", orderCtrl.SubmitCart)
	app.Post("/orders/fire", orderCtrl.Fire)
	app.Post("/orders/to-follow", orderCtrl.SubmitToFollow)
	app.Get("/orders/open", orderCtrl.OpenOrder)
	app.Post("/order-items/split", orderCtrl.SplitItem)
	app.Post("/order-items/merge", orderCtrl.MergeItems)
	app.Delete("/order-items/:id", orderCtrl.RemoveItem)

	app.Get("/kitchen/tickets", kitchenCtrl.ListTickets)
	app.Patch("/kitchen/tickets/:id", kitchenCtrl.UpdateTicket)

	app.Post("/payments", paymentCtrl.RecordPayment)
	app.Get("/payments", paymentCtrl.ListPayments)
	app.Get("/reports/daily", paymentCtrl.DailyReport)

	app.Get("/tables", tableCtrl.ListTables)
	app.Post("/tables", tableCtrl.CreateTable)
	app.Patch("/tables/:id", tableCtrl.UpdateTable)
	app.Post("/tables/:id/archive", tableCtrl.ArchiveTable)
	app.Post("/tables/transfer", tableCtrl.Transfer)

	app.Get("/menu/categories", menuCtrl.ListCategories)
	app.Get("/menu/items", menuCtrl.ListItems)
	app.Post("/menu/items", menuCtrl.CreateItem)
	app.Patch("/menu/items/:id", menuCtrl.UpdateItem)
	app.Delete("/menu/items/:id", menuCtrl.ArchiveItem)

	app.Post("/reservations", reservationCtrl.Book)
	app.Get("/reservations", reservationCtrl.ListByDate)
	app.Patch("/reservations/:id", reservationCtrl.Update)

	app.Get("/planning", planningCtrl.Week)
	app.Post("/planning", planningCtrl.CreateShift)
	app.Delete("/planning/:id", planningCtrl.DeleteShift)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// seedFloorPlan creates a minimal floor plan and menu on an empty database
// so the service is usable right after first start.
func seedFloorPlan(db *gorm.DB) {
	var tableCount int64
	db.Model(&models.Table{}).Count(&tableCount)
	if tableCount == 0 {
		for number := 1; number <= 8; number++ {
			seats := 2
			if number%2 == 0 {
				seats = 4
			}
			table := models.Table{Number: number, Seats: seats, Status: models.TableAvailable}
			if err := db.Create(&table).Error; err != nil {
				slog.Warn("failed to seed table", "number", number, "error", err)
			}
		}
		slog.Info("seeded floor plan", "tables", 8)
	}

	var catCount int64
	db.Model(&models.MenuCategory{}).Count(&catCount)
	if catCount == 0 {
		plats := models.MenuCategory{Name: "Plats", Position: 1}
		boissons := models.MenuCategory{Name: "Boissons", Position: 2}
		db.Create(&plats)
		db.Create(&boissons)
		items := []models.MenuItem{
			{CategoryID: plats.ID, Name: "Burger maison", Price: 10.00, TaxRate: 10.00, Route: models.RouteKitchen},
			{CategoryID: plats.ID, Name: "Menu enfant", Price: 8.50, TaxRate: 10.00, Route: models.RouteKitchen},
			{CategoryID: boissons.ID, Name: "Jus de pomme", Price: 3.00, TaxRate: 10.00, Route: models.RouteBar, KidsMenuIncluded: true},
			{CategoryID: boissons.ID, Name: "Verre de rouge", Price: 4.50, TaxRate: 20.00, Route: models.RouteBar},
		}
		for _, item := range items {
			if err := db.Create(&item).Error; err != nil {
				slog.Warn("failed to seed menu item", "name", item.Name, "error", err)
			}
		}
		slog.Info("seeded menu", "items", len(items))
	}
}
