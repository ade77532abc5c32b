package handler

import (
	"log/slog"
	"net/http"

	"pennyekart/internal/delivery/http/middleware"
	"pennyekart/internal/delivery/http/response"
	"pennyekart/internal/domain/entity"
	"pennyekart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollabHandlerParams holds dependencies for CollabHandler, injected by Fx.
type CollabHandlerParams struct {
	fx.In

	CollabUC usecase.CollabUsecase
	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// CollabHandler holds dependencies for collaboration-related handlers
type CollabHandler struct {
	collabUC usecase.CollabUsecase
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewCollabHandler is the constructor for CollabHandler
func NewCollabHandler(params CollabHandlerParams) *CollabHandler {
	return &CollabHandler{
		collabUC: params.CollabUC,
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// RequestCollabRequest represents the request body for minting a collab code
type RequestCollabRequest struct {
	CouponCode  string `json:"coupon_code" validate:"required"`
	AgentMobile string `json:"agent_mobile" validate:"required"`
}

// RecordUsageRequest represents the request body the checkout flow sends when
// a collab code is redeemed
type RecordUsageRequest struct {
	CollabCode     string     `json:"collab_code" validate:"required"`
	OrderID        *uuid.UUID `json:"order_id,omitempty"`
	OrderItemPrice float64    `json:"order_item_price" validate:"required,gt=0"`
}

// RequestCollab handles minting a collab code for an unlinked agent mobile
func (h *CollabHandler) RequestCollab(c echo.Context) error {
	return h.requestCollab(c, nil)
}

// RequestCollabLinked handles minting a collab code linked to the
// authenticated agent account
func (h *CollabHandler) RequestCollabLinked(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.requestCollab(c, &userID)
}

func (h *CollabHandler) requestCollab(c echo.Context, agentUserID *uuid.UUID) error {
	var req RequestCollabRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid collab input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	collab, err := h.collabUC.RequestCollab(c.Request().Context(), &usecase.RequestCollabInput{
		CouponCode:  req.CouponCode,
		AgentMobile: req.AgentMobile,
		AgentUserID: agentUserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, collab, "Collab code minted successfully")
}

// GenerateCollabQR handles generating a shareable QR image for a collab code
func (h *CollabHandler) GenerateCollabQR(c echo.Context) error {
	collabCode := c.Param("code")
	if collabCode == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Collab code is required")
	}

	qrCode, err := h.collabUC.GenerateCollabQR(c.Request().Context(), collabCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=collab-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ListCollabs handles the admin payout table, optionally filtered by margin status
func (h *CollabHandler) ListCollabs(c echo.Context) error {
	var status *entity.MarginStatus
	switch c.QueryParam("status") {
	case "":
	case string(entity.MarginPending):
		s := entity.MarginPending
		status = &s
	case string(entity.MarginPaid):
		s := entity.MarginPaid
		status = &s
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Unknown margin status filter")
	}

	details, err := h.collabUC.ListCollabs(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Collaborations retrieved successfully")
}

// Overview handles the admin dashboard aggregate
func (h *CollabHandler) Overview(c echo.Context) error {
	overview, err := h.collabUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview, "Collab overview retrieved successfully")
}

// RecordUsage handles recording a redemption of a collab code on an order
func (h *CollabHandler) RecordUsage(c echo.Context) error {
	var req RecordUsageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid usage input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.ledgerUC.RecordUsage(c.Request().Context(), &usecase.RecordUsageInput{
		CollabCode:     req.CollabCode,
		OrderID:        req.OrderID,
		OrderItemPrice: req.OrderItemPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Coupon usage recorded successfully")
}

// ListCollabUsages handles listing the redemptions of one collaboration
func (h *CollabHandler) ListCollabUsages(c echo.Context) error {
	collabID, err := uuid.Parse(c.Param("collabId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid collaboration ID")
	}

	usages, err := h.ledgerUC.ListCollabUsages(c.Request().Context(), collabID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usages, "Collaboration usages retrieved successfully")
}
