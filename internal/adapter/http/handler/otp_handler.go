package handler

import (
	"net/http"

	"secure-wallet-core/internal/adapter/http/dto"
	"secure-wallet-core/internal/adapter/http/middleware"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"
	"secure-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// OTPHandler handles step-up challenge endpoints. The generated code is
// delivered out of band and never appears in a response body.
type OTPHandler struct {
	otpSvc ports.OTPService
}

// NewOTPHandler creates a new OTPHandler.
func NewOTPHandler(otpSvc ports.OTPService) *OTPHandler {
	return &OTPHandler{otpSvc: otpSvc}
}

// Request handles POST /api/v1/otp/request.
func (h *OTPHandler) Request(c *gin.Context) {
	var req dto.OTPRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidField("body", err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if _, err := h.otpSvc.Request(c.Request.Context(), middleware.ActorFrom(c), req.SubjectID, req.Purpose); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "SENT"})
}

// Verify handles POST /api/v1/otp/verify. The response carries only the
// verdict; the failure reason lives in the audit trail.
func (h *OTPHandler) Verify(c *gin.Context) {
	var req dto.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidField("body", err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	ok, _ := h.otpSvc.Verify(c.Request.Context(), middleware.ActorFrom(c), req.SubjectID, req.Purpose, req.Code)
	response.OK(c, dto.OTPVerifyResponse{Verified: ok})
}
