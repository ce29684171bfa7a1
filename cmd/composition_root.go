package cmd

import (
	"log/slog"

	httpin "packaging/internal/adapters/in/http"
	"packaging/internal/adapters/out/pdf"
	"packaging/internal/adapters/out/postgres"
	"packaging/internal/core/application/usecases/commands"
	"packaging/internal/core/application/usecases/queries"
	"packaging/internal/core/ports"
	"packaging/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) labelUoWFactory() commands.LabelUoWFactory {
	return FuncLabelUoWFactory(func() commands.LabelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLabelRenderer() ports.LabelRenderer {
	return pdf.NewLabelRenderer()
}

func (c *CompositionRoot) CreateReportRenderer() ports.ReportRenderer {
	return pdf.NewReportRenderer()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateImportItemsCommandHandler() commands.ImportItemsCommandHandler {
	return commands.NewImportItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePackItemCommandHandler() commands.PackItemCommandHandler {
	return commands.NewPackItemCommandHandler(c.fullUoWFactory(), c.CreateLabelRenderer(), c.logger)
}

func (c *CompositionRoot) CreateQuickPackItemCommandHandler() commands.QuickPackItemCommandHandler {
	return commands.NewQuickPackItemCommandHandler(c.fullUoWFactory(), c.CreateLabelRenderer(), c.logger)
}

func (c *CompositionRoot) CreateUnpackItemCommandHandler() commands.UnpackItemCommandHandler {
	return commands.NewUnpackItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemDefectiveCommandHandler() commands.MarkItemDefectiveCommandHandler {
	return commands.NewMarkItemDefectiveCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderCompletedCommandHandler() commands.MarkOrderCompletedCommandHandler {
	return commands.NewMarkOrderCompletedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderDefectiveCommandHandler() commands.MarkOrderDefectiveCommandHandler {
	return commands.NewMarkOrderDefectiveCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResetOrderToDraftCommandHandler() commands.ResetOrderToDraftCommandHandler {
	return commands.NewResetOrderToDraftCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResetPackingCommandHandler() commands.ResetPackingCommandHandler {
	return commands.NewResetPackingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateLabelCommandHandler() commands.CreateLabelCommandHandler {
	return commands.NewCreateLabelCommandHandler(c.fullUoWFactory(), c.CreateLabelRenderer())
}

func (c *CompositionRoot) CreatePrintLabelCommandHandler() commands.PrintLabelCommandHandler {
	return commands.NewPrintLabelCommandHandler(c.labelUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLabelQueryHandler() queries.GetLabelQueryHandler {
	return queries.NewGetLabelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDefectiveOrdersQueryHandler() queries.GetDefectiveOrdersQueryHandler {
	return queries.NewGetDefectiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddItem:            c.CreateAddItemCommandHandler(),
		ImportItems:        c.CreateImportItemsCommandHandler(),
		PackItem:           c.CreatePackItemCommandHandler(),
		QuickPackItem:      c.CreateQuickPackItemCommandHandler(),
		UnpackItem:         c.CreateUnpackItemCommandHandler(),
		MarkItemDefective:  c.CreateMarkItemDefectiveCommandHandler(),
		MarkOrderCompleted: c.CreateMarkOrderCompletedCommandHandler(),
		MarkOrderDefective: c.CreateMarkOrderDefectiveCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		ResetOrderToDraft:  c.CreateResetOrderToDraftCommandHandler(),
		ResetPacking:       c.CreateResetPackingCommandHandler(),
		CreateLabel:        c.CreateCreateLabelCommandHandler(),
		PrintLabel:         c.CreatePrintLabelCommandHandler(),

		GetOrders:          c.CreateGetOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderByNumber:   c.CreateGetOrderByNumberQueryHandler(),
		GetLabel:           c.CreateGetLabelQueryHandler(),
		GetDefectiveOrders: c.CreateGetDefectiveOrdersQueryHandler(),

		ReportRenderer: c.CreateReportRenderer(),
	}
}

// CreateJobManager wires the scheduled defective report job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reportJob := jobs.NewDefectiveReportJob(
		c.CreateGetDefectiveOrdersQueryHandler(),
		c.CreateReportRenderer(),
		c.config.ReportCronSchedule,
		c.config.ReportOutputDir,
		c.logger,
	)
	return jobs.NewJobManager(reportJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLabelUoWFactory func() commands.LabelUoW

func (f FuncLabelUoWFactory) Create() commands.LabelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
