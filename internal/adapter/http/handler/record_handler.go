package handler

import (
	"context"
	"strconv"

	"asset-signature-service/internal/adapter/http/dto"
	"asset-signature-service/internal/adapter/http/middleware"
	"asset-signature-service/internal/core/domain"
	"asset-signature-service/internal/core/ports"
	"asset-signature-service/pkg/apperror"
	"asset-signature-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RecordHandler handles signature record lifecycle endpoints.
type RecordHandler struct {
	recordSvc ports.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordSvc ports.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// Create handles POST /api/v1/signatures/records.
func (h *RecordHandler) Create(c *gin.Context) {
	signer, ok := middleware.SignerFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.recordSvc.Create(c.Request.Context(), ports.CreateRecordRequest{
		AssetID:       req.AssetID,
		Signer:        *signer,
		Purpose:       domain.SignaturePurpose(req.Purpose),
		ExpiresInDays: req.ExpiresInDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateRecordResponse{
		Record: dto.ToRecordResponse(result.Record),
		Token:  result.Token,
	})
}

// Get handles GET /api/v1/signatures/records/:id.
func (h *RecordHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	record, err := h.recordSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRecordResponse(record))
}

// List handles GET /api/v1/signatures/records with query filters.
func (h *RecordHandler) List(c *gin.Context) {
	params := ports.SignatureListParams{}

	if v := c.Query("asset_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("asset_id must be an integer"))
			return
		}
		params.AssetID = &id
	}
	if v := c.Query("signer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("signer_id must be an integer"))
			return
		}
		params.SignerID = &id
	}
	if v := c.Query("purpose"); v != "" {
		p := domain.SignaturePurpose(v)
		params.Purpose = &p
	}
	params.OnlyValid = c.Query("only_valid") == "true"
	params.IncludeArchived = c.Query("include_archived") == "true"
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		params.Limit = limit
	}

	records, err := h.recordSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.ToRecordResponse(&records[i]))
	}
	response.OK(c, items)
}

// Invalidate handles POST /api/v1/signatures/records/:id/invalidate.
func (h *RecordHandler) Invalidate(c *gin.Context) {
	h.lifecycle(c, h.recordSvc.Invalidate)
}

// Archive handles POST /api/v1/signatures/records/:id/archive.
func (h *RecordHandler) Archive(c *gin.Context) {
	h.lifecycle(c, h.recordSvc.Archive)
}

func (h *RecordHandler) lifecycle(c *gin.Context, apply func(ctx context.Context, id uuid.UUID, reason string) (*domain.SignatureRecord, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	var req dto.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := apply(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRecordResponse(record))
}

// Expiring handles GET /api/v1/signatures/expiring?days=N.
func (h *RecordHandler) Expiring(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		response.Error(c, apperror.Validation("days must be an integer"))
		return
	}

	records, err := h.recordSvc.ExpiringWithinDays(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.ToRecordResponse(&records[i]))
	}
	response.OK(c, items)
}

// Metadata handles GET /api/v1/signatures/metadata/:assetId.
func (h *RecordHandler) Metadata(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("assetId"), 10, 64)
	if err != nil || assetID <= 0 {
		response.Error(c, apperror.Validation("assetId must be a positive integer"))
		return
	}

	meta, err := h.recordSvc.AssetMetadata(c.Request.Context(), assetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.MetadataResponse{
		AssetID:        meta.AssetID,
		CurrentlyValid: meta.CurrentlyValid,
	}
	if meta.Record != nil {
		rec := dto.ToRecordResponse(meta.Record)
		resp.Record = &rec
	}
	response.OK(c, resp)
}
