// Package handler contains the Echo handlers of the HTTP delivery.
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

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC usecase.CouponUsecase
	Logger   *slog.Logger
}

// CouponHandler holds dependencies for coupon-related handlers
type CouponHandler struct {
	couponUC usecase.CouponUsecase
	logger   *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		couponUC: params.CouponUC,
		logger:   params.Logger,
	}
}

// PolicyRequest is the wire form of a discount or margin policy.
type PolicyRequest struct {
	Kind  string  `json:"kind" validate:"required,oneof=amount percent"`
	Value float64 `json:"value" validate:"required,gt=0"`
}

func (p PolicyRequest) toPolicy() entity.DiscountPolicy {
	return entity.DiscountPolicy{
		Kind:  entity.PolicyKind(p.Kind),
		Value: p.Value,
	}
}

// CreateCouponRequest represents the request body for creating a coupon
type CreateCouponRequest struct {
	ProductID        uuid.UUID     `json:"product_id" validate:"required"`
	Code             string        `json:"code" validate:"required"`
	CustomerDiscount PolicyRequest `json:"customer_discount" validate:"required"`
	AgentMargin      PolicyRequest `json:"agent_margin" validate:"required"`
}

// ToggleCouponRequest represents the request body for toggling a coupon
type ToggleCouponRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CreateCoupon handles creating a coupon for one of the seller's products
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), &usecase.CreateCouponInput{
		SellerID:         sellerID,
		ProductID:        req.ProductID,
		Code:             req.Code,
		CustomerDiscount: req.CustomerDiscount.toPolicy(),
		AgentMargin:      req.AgentMargin.toPolicy(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// ListActiveCoupons handles the public storefront coupon listing
func (h *CouponHandler) ListActiveCoupons(c echo.Context) error {
	listings, err := h.couponUC.ListActiveCoupons(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Active coupons retrieved successfully")
}

// ListMyCoupons handles listing the authenticated seller's coupons
func (h *CouponHandler) ListMyCoupons(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listings, err := h.couponUC.ListSellerCoupons(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Seller coupons retrieved successfully")
}

// ToggleCoupon handles flipping a coupon's active flag
func (h *CouponHandler) ToggleCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	var req ToggleCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.couponUC.ToggleCouponActive(c.Request().Context(), couponID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_active": *req.IsActive}, "Coupon updated successfully")
}

// DeleteCoupon handles soft-deleting a coupon
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("couponId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), couponID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deleted"}, "Coupon deleted successfully")
}
