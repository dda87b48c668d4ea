package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// PaymentHandler handles the admin payment record endpoints.
type PaymentHandler struct {
	payments core.PaymentService
	auditor  core.AuditService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments core.PaymentService, auditor core.AuditService) *PaymentHandler {
	return &PaymentHandler{payments: payments, auditor: auditor}
}

// mapPaymentErrorToStatus maps errors from core.PaymentService to HTTP responses.
func mapPaymentErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrPaymentNotFound.Error()})
	case errors.Is(err, core.ErrInvalidPaymentStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidPaymentStatus.Error(), Details: err.Error()})
	default:
		log.Printf("payment handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListPayments handles GET /admin/payments with optional status and q
// filters.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		mapPaymentErrorToStatus(c, err)
		return
	}

	filtered := console.FilterPayments(payments, models.PaymentStatus(c.Query("status")), c.Query("q"))
	c.JSON(http.StatusOK, filtered)
}

// GetPayment handles GET /admin/payments/:paymentId
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payment ID is required"})
		return
	}

	payment, err := h.payments.Get(c.Request.Context(), paymentID)
	if err != nil {
		mapPaymentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CreatePayment handles POST /admin/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	payment, err := h.payments.Create(c.Request.Context(), req)
	if err != nil {
		mapPaymentErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "payment.create", "payment", payment.ID, map[string]interface{}{
		"userEmail": payment.UserEmail,
		"status":    payment.Status,
	})
	c.JSON(http.StatusCreated, payment)
}

// UpdatePayment handles PUT /admin/payments/:paymentId
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payment ID is required"})
		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	payment, err := h.payments.Update(c.Request.Context(), paymentID, req)
	if err != nil {
		mapPaymentErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "payment.update", "payment", paymentID, nil)
	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /admin/payments/:paymentId
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID := c.Param("paymentId")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payment ID is required"})
		return
	}
	if !requireConfirm(c) {
		return
	}

	if err := h.payments.Delete(c.Request.Context(), paymentID); err != nil {
		mapPaymentErrorToStatus(c, err)
		return
	}

	recordAudit(c, h.auditor, "payment.delete", "payment", paymentID, nil)
	c.Status(http.StatusNoContent)
}
