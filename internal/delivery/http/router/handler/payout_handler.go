package handler

import (
	"log/slog"
	"net/http"

	"pennyekart/internal/delivery/http/middleware"
	"pennyekart/internal/delivery/http/response"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PayoutHandlerParams holds dependencies for PayoutHandler, injected by Fx.
type PayoutHandlerParams struct {
	fx.In

	SettlementUC usecase.SettlementUsecase
	WalletUC     usecase.WalletUsecase
	Logger       *slog.Logger
}

// PayoutHandler holds dependencies for settlement and wallet handlers
type PayoutHandler struct {
	settlementUC usecase.SettlementUsecase
	walletUC     usecase.WalletUsecase
	logger       *slog.Logger
}

// NewPayoutHandler is the constructor for PayoutHandler
func NewPayoutHandler(params PayoutHandlerParams) *PayoutHandler {
	return &PayoutHandler{
		settlementUC: params.SettlementUC,
		walletUC:     params.WalletUC,
		logger:       params.Logger,
	}
}

// SettleRequest represents the request body for settling a collaboration
type SettleRequest struct {
	AllowUnlinked bool `json:"allow_unlinked"`
}

// SettleCollab handles paying out a pending collaboration's margin
func (h *PayoutHandler) SettleCollab(c echo.Context) error {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	collabID, err := uuid.Parse(c.Param("collabId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid collaboration ID")
	}

	var req SettleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settlement input")
	}

	result, err := h.settlementUC.Settle(c.Request().Context(), collabID, operatorID, req.AllowUnlinked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("collaboration settled",
		slog.String("collab_id", collabID.String()),
		slog.String("operator_id", operatorID.String()),
		slog.Float64("amount_credited", result.AmountCredited),
	)

	return response.Success(c, http.StatusOK, result, "Collaboration settled successfully")
}

// GetMyWallet handles retrieving the authenticated agent's wallet
func (h *PayoutHandler) GetMyWallet(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	wallet, err := h.walletUC.GetWallet(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "Wallet retrieved successfully")
}

// ListMyWalletTransactions handles retrieving the agent's wallet transaction log
func (h *PayoutHandler) ListMyWalletTransactions(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	txns, err := h.walletUC.ListTransactions(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, txns, "Wallet transactions retrieved successfully")
}
