package handler

import (
	"errors"
	"strconv"

	"asset-signature-service/internal/adapter/http/dto"
	"asset-signature-service/internal/adapter/http/middleware"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/pkg/apperror"
	"asset-signature-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// SignatureHandler handles token generation, validation and verification.
type SignatureHandler struct {
	tokenSvc  ports.TokenService
	verifySvc ports.VerificationService
	statsSvc  ports.StatisticsService
}

// NewSignatureHandler creates a new SignatureHandler.
func NewSignatureHandler(tokenSvc ports.TokenService, verifySvc ports.VerificationService, statsSvc ports.StatisticsService) *SignatureHandler {
	return &SignatureHandler{tokenSvc: tokenSvc, verifySvc: verifySvc, statsSvc: statsSvc}
}

// Generate handles POST /api/v1/signatures/generate.
// The signer is the authenticated principal; the acknowledgment context rides
// in the body and is signed as presented.
func (h *SignatureHandler) Generate(c *gin.Context) {
	signer, ok := middleware.SignerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token := h.tokenSvc.Generate(req.Acknowledgment.ToDomain(), signer)
	response.OK(c, dto.GenerateResponse{Signature: token})
}

// Validate handles POST /api/v1/signatures/validate.
// Always answers 200; the verdict is the is_valid flag, never the status code.
func (h *SignatureHandler) Validate(c *gin.Context) {
	signer, ok := middleware.SignerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	valid := h.tokenSvc.Validate(req.Signature, req.Acknowledgment.ToDomain(), signer)
	response.OK(c, dto.ValidateResponse{IsValid: valid})
}

// Verify handles POST /api/v1/signatures/verify/:assetId.
// A failed verification is still a structured 200 body; only missing
// acknowledgment/signer map to 404, carrying the structured result anyway.
func (h *SignatureHandler) Verify(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("assetId"), 10, 64)
	if err != nil || assetID <= 0 {
		response.Error(c, apperror.Validation("assetId must be a positive integer"))
		return
	}

	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.verifySvc.Verify(c.Request.Context(), assetID, req.Signature)
	if err != nil {
		var appErr *apperror.AppError
		if result != nil && errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
			response.WithStatus(c, appErr.HTTPStatus, dto.ToVerificationResponse(result))
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToVerificationResponse(result))
}

// Hash handles POST /api/v1/signatures/hash.
func (h *SignatureHandler) Hash(c *gin.Context) {
	var req dto.HashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	hash := h.tokenSvc.StorageHash(req.Signature, req.AssetID, req.SignerID)
	response.OK(c, dto.HashResponse{Hash: hash})
}

// Statistics handles GET /api/v1/signatures/statistics for the caller.
func (h *SignatureHandler) Statistics(c *gin.Context) {
	signer, ok := middleware.SignerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	stats, err := h.statsSvc.ForSigner(c.Request.Context(), signer.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToStatisticsResponse(stats))
}
