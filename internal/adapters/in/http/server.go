// Package http exposes the order lifecycle and delivery-person ledger over
// a REST API. Route handlers translate requests into commands and queries
// and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Actor headers. Delivery-person routes identify the caller with
// HeaderDeliveryPerson; back-office routes use HeaderAdmin.
const (
	HeaderDeliveryPerson = "X-Delivery-Person-ID"
	HeaderAdmin          = "X-Admin-ID"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	AssignOrder         commands.AssignOrderCommandHandler
	AcceptOrder         commands.AcceptOrderCommandHandler
	RejectOrder         commands.RejectOrderCommandHandler
	CompleteOrder       commands.CompleteOrderCommandHandler
	ReturnOrder         commands.ReturnOrderCommandHandler
	OverrideOrderStatus commands.OverrideOrderStatusCommandHandler
	RequestDeposit      commands.RequestDepositCommandHandler
	RequestWithdrawal   commands.RequestWithdrawalCommandHandler
	ConfirmDeposit      commands.ConfirmDepositCommandHandler
	ApproveWithdrawal   commands.ApproveWithdrawalCommandHandler
	RejectWithdrawal    commands.RejectWithdrawalCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	PendingDeposits    queries.GetPendingDepositsQueryHandler
	PendingWithdrawals queries.GetPendingWithdrawalsQueryHandler
	MyTransactions     queries.GetMyTransactionsQueryHandler
	UndeliveredOrders  queries.GetUndeliveredOrdersQueryHandler
	OrderStatusCounts  queries.GetOrderStatusCountsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/assign", s.AssignOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/orders/:id/status", s.OverrideOrderStatus)

	api.POST("/orders/:id/deposits", s.RequestDeposit)
	api.POST("/orders/:id/withdrawals", s.RequestWithdrawal)
	api.POST("/orders/:id/transactions/:transactionId/confirm-deposit", s.ConfirmDeposit)
	api.POST("/orders/:id/transactions/:transactionId/approve-withdrawal", s.ApproveWithdrawal)
	api.POST("/orders/:id/transactions/:transactionId/reject-withdrawal", s.RejectWithdrawal)

	api.GET("/deposits/pending", s.GetPendingDeposits)
	api.GET("/withdrawals/pending", s.GetPendingWithdrawals)
	api.GET("/transactions/my", s.GetMyTransactions)
	api.GET("/orders/undelivered", s.GetUndeliveredOrders)
	api.GET("/orders/status-counts", s.GetOrderStatusCounts)
}

// AssignOrder handles POST /api/v1/orders/:id/assign - assigns an order to a
// delivery person and packs it.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var body struct {
		DeliveryPersonID string `json:"delivery_person_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryPersonID, err := kernel.UUIDFromString(body.DeliveryPersonID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery person ID: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, deliveryPersonID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - the assigned delivery
// person takes the order out for delivery.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	deliveryPersonID, err := actorID(ctx, HeaderDeliveryPerson)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, deliveryPersonID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject - the assigned delivery
// person turns the order down, returning it to the assignable pool.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	deliveryPersonID, err := actorID(ctx, HeaderDeliveryPerson)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, deliveryPersonID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks the order
// delivered and settles cash-on-delivery payment.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return - records a customer
// return of a delivered order.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, body.Reason)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.ReturnOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideOrderStatus handles POST /api/v1/orders/:id/status - an admin
// forces the order to the given status label. The order never moves backward.
func (s *Server) OverrideOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOverrideOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.OverrideOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestDeposit handles POST /api/v1/orders/:id/deposits - the assigned
// delivery person requests a deposit of collected cash.
func (s *Server) RequestDeposit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	deliveryPersonID, err := actorID(ctx, HeaderDeliveryPerson)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body struct {
		Amount int64 `json:"amount"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestDepositCommand(orderID, deliveryPersonID, body.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.RequestDeposit.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestWithdrawal handles POST /api/v1/orders/:id/withdrawals - the
// assigned delivery person asks to withdraw earnings against an order.
func (s *Server) RequestWithdrawal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	deliveryPersonID, err := actorID(ctx, HeaderDeliveryPerson)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body struct {
		Amount int64 `json:"amount"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestWithdrawalCommand(orderID, deliveryPersonID, body.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.RequestWithdrawal.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ConfirmDeposit handles POST /api/v1/orders/:id/transactions/:transactionId/confirm-deposit -
// an admin confirms a pending deposit, crediting the delivery person's balance.
func (s *Server) ConfirmDeposit(ctx echo.Context) error {
	orderID, transactionID, adminID, err := adminTransactionParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmDepositCommand(orderID, transactionID, adminID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.ConfirmDeposit.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveWithdrawal handles POST /api/v1/orders/:id/transactions/:transactionId/approve-withdrawal -
// an admin approves a pending withdrawal, debiting the delivery person's balance.
func (s *Server) ApproveWithdrawal(ctx echo.Context) error {
	orderID, transactionID, adminID, err := adminTransactionParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveWithdrawalCommand(orderID, transactionID, adminID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.ApproveWithdrawal.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectWithdrawal handles POST /api/v1/orders/:id/transactions/:transactionId/reject-withdrawal -
// an admin rejects a pending withdrawal with a reason.
func (s *Server) RejectWithdrawal(ctx echo.Context) error {
	orderID, transactionID, adminID, err := adminTransactionParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectWithdrawalCommand(orderID, transactionID, adminID, body.Reason)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.RejectWithdrawal.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PendingTransaction is the JSON shape of a pending deposit or withdrawal.
type PendingTransaction struct {
	TransactionID    string `json:"transaction_id"`
	OrderID          string `json:"order_id"`
	DeliveryPersonID string `json:"delivery_person_id"`
	Amount           int64  `json:"amount"`
	CreatedAt        string `json:"created_at"`
}

// GetPendingDeposits handles GET /api/v1/deposits/pending - lists deposit
// requests awaiting an admin decision.
func (s *Server) GetPendingDeposits(ctx echo.Context) error {
	deposits, err := s.queries.PendingDeposits.Handle(
		ctx.Request().Context(), queries.NewGetPendingDepositsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending deposits")
	}

	response := make([]PendingTransaction, len(deposits))
	for i, deposit := range deposits {
		response[i] = PendingTransaction{
			TransactionID:    deposit.TransactionID.String(),
			OrderID:          deposit.OrderID.String(),
			DeliveryPersonID: deposit.DeliveryPersonID.String(),
			Amount:           deposit.Amount,
			CreatedAt:        deposit.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingWithdrawals handles GET /api/v1/withdrawals/pending - lists
// withdrawal requests awaiting an admin decision.
func (s *Server) GetPendingWithdrawals(ctx echo.Context) error {
	withdrawals, err := s.queries.PendingWithdrawals.Handle(
		ctx.Request().Context(), queries.NewGetPendingWithdrawalsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending withdrawals")
	}

	response := make([]PendingTransaction, len(withdrawals))
	for i, withdrawal := range withdrawals {
		response[i] = PendingTransaction{
			TransactionID:    withdrawal.TransactionID.String(),
			OrderID:          withdrawal.OrderID.String(),
			DeliveryPersonID: withdrawal.DeliveryPersonID.String(),
			Amount:           withdrawal.Amount,
			CreatedAt:        withdrawal.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransactionHistoryEntry is the JSON shape of one ledger history row.
type TransactionHistoryEntry struct {
	TransactionID   string `json:"transaction_id"`
	OrderID         string `json:"order_id"`
	Type            string `json:"type"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// GetMyTransactions handles GET /api/v1/transactions/my - the calling
// delivery person's full ledger history.
func (s *Server) GetMyTransactions(ctx echo.Context) error {
	deliveryPersonID, err := actorID(ctx, HeaderDeliveryPerson)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetMyTransactionsQuery(deliveryPersonID)
	if err != nil {
		return domainError(ctx, err)
	}

	history, err := s.queries.MyTransactions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve transaction history")
	}

	response := make([]TransactionHistoryEntry, len(history))
	for i, tx := range history {
		response[i] = TransactionHistoryEntry{
			TransactionID:   tx.TransactionID.String(),
			OrderID:         tx.OrderID.String(),
			Type:            tx.Type,
			Amount:          tx.Amount,
			Status:          tx.Status,
			RejectionReason: tx.RejectionReason,
			CreatedAt:       tx.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UndeliveredOrder is the JSON shape of one in-flight order.
type UndeliveredOrder struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	DeliveryPersonID *string `json:"delivery_person_id,omitempty"`
	Status           string  `json:"status"`
}

// GetUndeliveredOrders handles GET /api/v1/orders/undelivered - all orders
// still in the active pipeline, with customer-facing status labels.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	orders, err := s.queries.UndeliveredOrders.Handle(
		ctx.Request().Context(), queries.NewGetUndeliveredOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]UndeliveredOrder, len(orders))
	for i, resp := range orders {
		entry := UndeliveredOrder{
			ID:     resp.ID.String(),
			UserID: resp.UserID.String(),
			Status: resp.DisplayLabel,
		}
		if resp.DeliveryPersonID != nil {
			assignee := resp.DeliveryPersonID.String()
			entry.DeliveryPersonID = &assignee
		}
		response[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// StatusCount is the JSON shape of one status tally.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
	Paid   int64  `json:"paid"`
}

// GetOrderStatusCounts handles GET /api/v1/orders/status-counts - order
// tallies per lifecycle status for the operations dashboard.
func (s *Server) GetOrderStatusCounts(ctx echo.Context) error {
	counts, err := s.queries.OrderStatusCounts.Handle(
		ctx.Request().Context(), queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve status counts")
	}

	response := make([]StatusCount, len(counts))
	for i, count := range counts {
		response[i] = StatusCount{
			Status: count.Status.String(),
			Count:  count.Count,
			Paid:   count.Paid,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorID extracts and parses the acting user's ID from a request header.
func actorID(ctx echo.Context, header string) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(header)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + header + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid " + header + " header: " + err.Error())
	}

	return id, nil
}

// adminTransactionParams extracts the order ID, transaction ID and acting
// admin shared by the three transaction decision routes.
func adminTransactionParams(ctx echo.Context) (kernel.UUID, kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, errors.New("invalid order ID: " + err.Error())
	}

	transactionID, err := kernel.UUIDFromString(ctx.Param("transactionId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, errors.New("invalid transaction ID: " + err.Error())
	}

	adminID, err := actorID(ctx, HeaderAdmin)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, transactionID, adminID, nil
}

// domainError maps a domain error onto the HTTP status code it deserves.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrNotAuthorized):
		return respond(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		// ErrStorageUnavailable and anything unclassified
		return respond(ctx, http.StatusInternalServerError, err)
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
