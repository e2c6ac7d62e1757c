package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-intel/internal/http/middleware"
	"github.com/nurpe/contract-intel/internal/service"
)

type Handler struct {
	contracts *service.ContractService
	log       zerolog.Logger
}

func NewHandler(contracts *service.ContractService, log zerolog.Logger) *Handler {
	return &Handler{contracts: contracts, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/contracts/upload", h.uploadContract)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/contracts/:id/status", h.contractStatus)
	protected.GET("/contracts/:id", h.contractData)
	protected.GET("/contracts/:id/download", h.downloadContract)
	protected.GET("/contracts/:id/export/excel", h.exportExcel)
	protected.GET("/contracts/:id/export/pdf", h.exportPDF)
	protected.DELETE("/contracts/:id", h.deleteContract)
}

func (h *Handler) uploadContract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	contract, err := h.contracts.Upload(c.Request.Context(), service.UploadInput{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"contract_id": contract.ID,
		"filename":    contract.Filename,
		"status":      contract.Status,
	})
}

func (h *Handler) listContracts(c *gin.Context) {
	input := service.ListInput{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if page, ok := intQuery(c, "page"); ok {
		input.Page = page
	}
	if pageSize, ok := intQuery(c, "page_size"); ok {
		input.PageSize = pageSize
	}

	result, err := h.contracts.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Contracts))
	for i := range result.Contracts {
		contract := &result.Contracts[i]
		item := gin.H{
			"contract_id":         contract.ID,
			"filename":            contract.Filename,
			"file_size":           contract.FileSize,
			"status":              contract.Status,
			"progress_percentage": contract.ProgressPercentage,
			"created_at":          contract.CreatedAt,
		}
		if contract.Data != nil {
			item["contract_type"] = contract.Data.ContractType
			item["overall_confidence_score"] = contract.Data.OverallConfidence
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"contracts": items,
		"total":     result.Total,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

func (h *Handler) contractStatus(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	view, err := h.contracts.GetStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) contractData(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.GetData(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contract_id": contract.ID,
		"filename":    contract.Filename,
		"data":        contract.Data,
	})
}

func (h *Handler) downloadContract(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	result, err := h.contracts.Download(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportExcel(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	result, err := h.contracts.ExportExcel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	result, err := h.contracts.ExportPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) deleteContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := h.contractID(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) contractID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
