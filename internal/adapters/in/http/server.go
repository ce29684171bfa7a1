// Package http is the inbound HTTP adapter. It exposes the packaging
// use cases as a JSON API and streams generated PDF documents.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"packaging/internal/adapters/in/csvimport"
	"packaging/internal/core/application/usecases/commands"
	"packaging/internal/core/application/usecases/queries"
	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/ports"
	"packaging/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AddItem            commands.AddItemCommandHandler
	ImportItems        commands.ImportItemsCommandHandler
	PackItem           commands.PackItemCommandHandler
	QuickPackItem      commands.QuickPackItemCommandHandler
	UnpackItem         commands.UnpackItemCommandHandler
	MarkItemDefective  commands.MarkItemDefectiveCommandHandler
	MarkOrderCompleted commands.MarkOrderCompletedCommandHandler
	MarkOrderDefective commands.MarkOrderDefectiveCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	ResetOrderToDraft  commands.ResetOrderToDraftCommandHandler
	ResetPacking       commands.ResetPackingCommandHandler
	CreateLabel        commands.CreateLabelCommandHandler
	PrintLabel         commands.PrintLabelCommandHandler

	GetOrders          queries.GetOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetOrderByNumber   queries.GetOrderByNumberQueryHandler
	GetLabel           queries.GetLabelQueryHandler
	GetDefectiveOrders queries.GetDefectiveOrdersQueryHandler

	ReportRenderer ports.ReportRenderer
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.GET("/orders/by-number/:number", s.GetOrderByNumber)

	api.POST("/orders/:orderID/items", s.AddItem)
	api.POST("/orders/:orderID/items/import", s.ImportItems)
	api.POST("/orders/:orderID/items/:itemID/pack", s.PackItem)
	api.POST("/orders/:orderID/items/:itemID/unpack", s.UnpackItem)
	api.POST("/orders/:orderID/items/:itemID/defective", s.MarkItemDefective)

	api.POST("/orders/:orderID/quick-pack", s.QuickPackItem)
	api.POST("/orders/:orderID/complete", s.MarkOrderCompleted)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/reset-draft", s.ResetOrderToDraft)
	api.POST("/orders/:orderID/reset-packing", s.ResetPacking)
	api.POST("/orders/:orderID/defective", s.MarkOrderDefective)

	api.POST("/orders/:orderID/labels", s.CreateLabel)
	api.POST("/labels/:labelID/print", s.PrintLabel)
	api.GET("/labels/:labelID/document", s.DownloadLabelDocument)

	api.GET("/reports/defective-orders", s.DownloadDefectiveOrdersReport)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

type createOrderRequest struct {
	Responsible     string `json:"responsible"`
	AutoPrintLabels *bool  `json:"auto_print_labels"`
}

type createOrderResponse struct {
	ID        string              `json:"id"`
	Directive OpenWindowDirective `json:"directive"`
}

// CreateOrder handles POST /api/v1/orders - creates a new packaging order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	// Labels print automatically on completion unless switched off.
	autoPrintLabels := true
	if req.AutoPrintLabels != nil {
		autoPrintLabels = *req.AutoPrintLabels
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, req.Responsible, autoPrintLabels)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		ID:        orderID.String(),
		Directive: openOrderWindow(orderID.String(), "current"),
	})
}

type orderItemResponse struct {
	ID              string     `json:"id"`
	ItemCode        string     `json:"item_code"`
	ProductName     string     `json:"product_name"`
	Dimensions      string     `json:"dimensions,omitempty"`
	IsPacked        bool       `json:"is_packed"`
	PackDate        *time.Time `json:"pack_date,omitempty"`
	IsDefective     bool       `json:"is_defective"`
	DefectiveReason string     `json:"defective_reason,omitempty"`
	DefectiveBy     string     `json:"defective_by,omitempty"`
}

type orderResponse struct {
	ID              string     `json:"id"`
	Number          string     `json:"number"`
	Responsible     string     `json:"responsible"`
	Status          string     `json:"status"`
	DefectiveReason string     `json:"defective_reason,omitempty"`
	DefectiveAt     *time.Time `json:"defective_at,omitempty"`
	DefectiveBy     string     `json:"defective_by,omitempty"`

	TotalItems     int     `json:"total_items"`
	PackedItems    int     `json:"packed_items"`
	DefectiveItems int     `json:"defective_items"`
	Progress       float64 `json:"progress"`

	AutoPrintLabels bool `json:"auto_print_labels"`
	LabelCount      int  `json:"label_count"`

	ShowMarkCompleted bool `json:"show_mark_completed"`
	ShowResetDraft    bool `json:"show_reset_draft"`
	ShowCancelOrder   bool `json:"show_cancel_order"`
	ShowMarkDefective bool `json:"show_mark_defective"`
	ShowResetPacking  bool `json:"show_reset_packing"`

	Items []orderItemResponse `json:"items"`
}

func toOrderResponse(view queries.GetOrderQueryResponse) orderResponse {
	resp := orderResponse{
		ID:              view.ID.String(),
		Number:          view.Number,
		Responsible:     view.Responsible,
		Status:          view.Status,
		DefectiveReason: view.DefectiveReason,
		DefectiveAt:     view.DefectiveAt,
		DefectiveBy:     view.DefectiveBy,

		TotalItems:     view.TotalItems,
		PackedItems:    view.PackedItems,
		DefectiveItems: view.DefectiveItems,
		Progress:       view.Progress,

		AutoPrintLabels: view.AutoPrintLabels,
		LabelCount:      view.LabelCount,

		ShowMarkCompleted: view.ShowMarkCompleted,
		ShowResetDraft:    view.ShowResetDraft,
		ShowCancelOrder:   view.ShowCancelOrder,
		ShowMarkDefective: view.ShowMarkDefective,
		ShowResetPacking:  view.ShowResetPacking,

		Items: make([]orderItemResponse, len(view.Items)),
	}

	for i, item := range view.Items {
		resp.Items[i] = orderItemResponse{
			ID:              item.ID.String(),
			ItemCode:        item.ItemCode,
			ProductName:     item.ProductName,
			Dimensions:      item.Dimensions,
			IsPacked:        item.IsPacked,
			PackDate:        item.PackDate,
			IsDefective:     item.IsDefective,
			DefectiveReason: item.DefectiveReason,
			DefectiveBy:     item.DefectiveBy,
		}
	}

	return resp
}

type orderListItemResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Responsible string `json:"responsible"`
	Status      string `json:"status"`

	TotalItems     int     `json:"total_items"`
	PackedItems    int     `json:"packed_items"`
	DefectiveItems int     `json:"defective_items"`
	Progress       float64 `json:"progress"`

	LabelCount int `json:"label_count"`
}

// GetOrders handles GET /api/v1/orders - retrieves the order board,
// optionally filtered with ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if status := ctx.QueryParam("status"); status != "" {
		var err error
		if query, err = queries.NewGetOrdersQueryWithStatus(status); err != nil {
			return badRequestJSON(ctx, "Invalid status filter: "+err.Error())
		}
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]orderListItemResponse, len(orders))
	for i, row := range orders {
		response[i] = orderListItemResponse{
			ID:          row.ID.String(),
			Number:      row.Number,
			Responsible: row.Responsible,
			Status:      row.Status,

			TotalItems:     row.TotalItems,
			PackedItems:    row.PackedItems,
			DefectiveItems: row.DefectiveItems,
			Progress:       row.Progress,

			LabelCount: row.LabelCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves the order view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// GetOrderByNumber handles GET /api/v1/orders/by-number/:number - resolves
// an order number typed into the quick jump field and tells the client to
// open the order form.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	number, err := kernel.NewOrderNumber(ctx.Param("number"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order number: "+err.Error())
	}

	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order number: "+err.Error())
	}

	view, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: fmt.Sprintf("Order with number %s not found!", number),
			})
		}

		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openOrderWindow(view.ID.String(), "current"))
}

type addItemRequest struct {
	ItemCode    string `json:"item_code"`
	ProductName string `json:"product_name"`
	Dimensions  string `json:"dimensions"`
	Operator    string `json:"operator"`
}

// AddItem handles POST /api/v1/orders/:orderID/items - adds one item to
// a draft or in-progress order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	var req addItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(
		orderID, kernel.NewUUID(),
		req.ItemCode, req.ProductName, req.Dimensions, req.Operator,
	)
	if err != nil {
		return badRequestJSON(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.AddItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ImportItems handles POST /api/v1/orders/:orderID/items/import - parses an
// uploaded CSV file and adds its rows to the order in one transaction.
func (s *Server) ImportItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequestJSON(ctx, "Missing import file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequestJSON(ctx, "Unreadable import file: "+err.Error())
	}
	defer file.Close()

	rows, err := csvimport.ParseItems(file)
	if err != nil {
		return badRequestJSON(ctx, "Invalid import file: "+err.Error())
	}

	cmd, err := commands.NewImportItemsCommand(orderID, rows, ctx.FormValue("operator"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid import data: "+err.Error())
	}

	if handleErr := s.handlers.ImportItems.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, successNotification(
		"Import Complete",
		fmt.Sprintf("Successfully imported %d items", len(rows)),
	))
}

type operatorRequest struct {
	Operator string `json:"operator"`
}

// PackItem handles POST /api/v1/orders/:orderID/items/:itemID/pack.
func (s *Server) PackItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid item id: "+err.Error())
	}

	var req operatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPackItemCommand(orderID, itemID, req.Operator)
	if err != nil {
		return badRequestJSON(ctx, "Invalid pack data: "+err.Error())
	}

	if handleErr := s.handlers.PackItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnpackItem handles POST /api/v1/orders/:orderID/items/:itemID/unpack.
func (s *Server) UnpackItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid item id: "+err.Error())
	}

	var req operatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUnpackItemCommand(orderID, itemID, req.Operator)
	if err != nil {
		return badRequestJSON(ctx, "Invalid unpack data: "+err.Error())
	}

	if handleErr := s.handlers.UnpackItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type defectiveRequest struct {
	Reason   string `json:"reason"`
	Operator string `json:"operator"`
}

// MarkItemDefective handles POST /api/v1/orders/:orderID/items/:itemID/defective.
func (s *Server) MarkItemDefective(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid item id: "+err.Error())
	}

	var req defectiveRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	// Without a reason the domain falls back to its default wording.
	var cmd commands.MarkItemDefectiveCommand
	if strings.TrimSpace(req.Reason) == "" {
		cmd, err = commands.NewMarkItemDefectiveCommand(orderID, itemID, req.Operator)
	} else {
		cmd, err = commands.NewMarkItemDefectiveCommandWithReason(orderID, itemID, req.Reason, req.Operator)
	}
	if err != nil {
		return badRequestJSON(ctx, "Invalid defect data: "+err.Error())
	}

	if handleErr := s.handlers.MarkItemDefective.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, warningNotification(
		"Item Marked as Defective",
		"Item has been marked as defective. Order status updated.",
	))
}

type quickPackRequest struct {
	ItemCode string `json:"item_code"`
	Operator string `json:"operator"`
}

// QuickPackItem handles POST /api/v1/orders/:orderID/quick-pack - packs an
// item by its scanned code.
func (s *Server) QuickPackItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	var req quickPackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewQuickPackItemCommand(orderID, req.ItemCode, req.Operator)
	if err != nil {
		return badRequestJSON(ctx, "Invalid quick pack data: "+err.Error())
	}

	if handleErr := s.handlers.QuickPackItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, successNotification(
		"Success",
		fmt.Sprintf("Item %s packed successfully!", req.ItemCode),
	))
}

// MarkOrderCompleted handles POST /api/v1/orders/:orderID/complete.
func (s *Server) MarkOrderCompleted(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewMarkOrderCompletedCommand(orderID)
		if err != nil {
			return err
		}

		return s.handlers.MarkOrderCompleted.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}

		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// ResetOrderToDraft handles POST /api/v1/orders/:orderID/reset-draft.
func (s *Server) ResetOrderToDraft(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewResetOrderToDraftCommand(orderID)
		if err != nil {
			return err
		}

		return s.handlers.ResetOrderToDraft.Handle(ctx.Request().Context(), cmd)
	})
}

// ResetPacking handles POST /api/v1/orders/:orderID/reset-packing.
func (s *Server) ResetPacking(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewResetPackingCommand(orderID)
		if err != nil {
			return err
		}

		return s.handlers.ResetPacking.Handle(ctx.Request().Context(), cmd)
	})
}

// handleOrderAction runs a body-less order state transition and maps the
// result to a status code.
func (s *Server) handleOrderAction(ctx echo.Context, action func(kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	if actionErr := action(orderID); actionErr != nil {
		return errorJSON(ctx, actionErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderDefective handles POST /api/v1/orders/:orderID/defective - flags
// the whole order defective with an operator supplied reason.
func (s *Server) MarkOrderDefective(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	var req defectiveRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkOrderDefectiveCommand(orderID, req.Reason, req.Operator)
	if err != nil {
		return badRequestJSON(ctx, "Invalid defect data: "+err.Error())
	}

	if handleErr := s.handlers.MarkOrderDefective.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateLabel handles POST /api/v1/orders/:orderID/labels - generates a new
// transport label for a completed order and tells the client to download it.
func (s *Server) CreateLabel(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateLabelCommand(orderID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id: "+err.Error())
	}

	created, err := s.handlers.CreateLabel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, downloadLabel(
		created.ID().String(),
		fmt.Sprintf("shipping_label_%s.pdf", created.Number()),
	))
}

// PrintLabel handles POST /api/v1/labels/:labelID/print - marks the label
// printed and tells the client to download the document.
func (s *Server) PrintLabel(ctx echo.Context) error {
	labelID, err := kernel.UUIDFromString(ctx.Param("labelID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid label id: "+err.Error())
	}

	cmd, err := commands.NewPrintLabelCommand(labelID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid label id: "+err.Error())
	}

	printed, err := s.handlers.PrintLabel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, downloadLabel(
		printed.ID().String(),
		fmt.Sprintf("shipping_label_%s.pdf", printed.Number()),
	))
}

// DownloadLabelDocument handles GET /api/v1/labels/:labelID/document -
// streams the stored label PDF.
func (s *Server) DownloadLabelDocument(ctx echo.Context) error {
	labelID, err := kernel.UUIDFromString(ctx.Param("labelID"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid label id: "+err.Error())
	}

	query, err := queries.NewGetLabelQuery(labelID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid label id: "+err.Error())
	}

	view, err := s.handlers.GetLabel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, view.FileName))

	return ctx.Blob(http.StatusOK, "application/pdf", view.Document)
}

// DownloadDefectiveOrdersReport handles GET /api/v1/reports/defective-orders.
// Optional query parameters: date_from and date_to (YYYY-MM-DD, defaults to
// the trailing thirty days), responsible, and details=false to omit the
// per-item lines.
func (s *Server) DownloadDefectiveOrdersReport(ctx echo.Context) error {
	var dateFrom, dateTo time.Time
	var err error

	if raw := ctx.QueryParam("date_from"); raw != "" {
		if dateFrom, err = time.Parse(dateLayout, raw); err != nil {
			return badRequestJSON(ctx, "Invalid date_from: "+err.Error())
		}
	}
	if raw := ctx.QueryParam("date_to"); raw != "" {
		if dateTo, err = time.Parse(dateLayout, raw); err != nil {
			return badRequestJSON(ctx, "Invalid date_to: "+err.Error())
		}
	}

	showDetails := ctx.QueryParam("details") != "false"

	query, err := queries.NewGetDefectiveOrdersQuery(
		dateFrom, dateTo, ctx.QueryParam("responsible"), showDetails)
	if err != nil {
		return badRequestJSON(ctx, "Invalid report range: "+err.Error())
	}

	rows, err := s.handlers.GetDefectiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, warningNotification(
				"No Data",
				"No defective orders found for the selected period.",
			))
		}

		return errorJSON(ctx, err)
	}

	document, err := s.handlers.ReportRenderer.RenderDefectiveOrdersReport(
		rows,
		query.DateFrom().Format(dateLayout),
		query.DateTo().Add(-time.Second).Format(dateLayout),
		query.Responsible(),
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	filename := fmt.Sprintf("defective_orders_report_%s.pdf", time.Now().Format(dateLayout))
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}
