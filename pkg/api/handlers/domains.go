package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/wizard"
)

// DomainHandlers manages DNS domains and their records. Records belong to
// exactly one domain; deleting the domain takes every record with it in a
// single transaction.
type DomainHandlers struct {
	domainRepo *repositories.DomainRepository
}

func NewDomainHandlers(domainRepo *repositories.DomainRepository) *DomainHandlers {
	return &DomainHandlers{domainRepo: domainRepo}
}

// CreateDomainRequest represents a request to register a domain.
type CreateDomainRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateDomain handles POST /api/v1/domains
func (h *DomainHandlers) CreateDomain(c *gin.Context) {
	var req CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	domain := &models.Domain{Name: req.Name}
	if err := h.domainRepo.Create(c.Request.Context(), domain); err != nil {
		c.JSON(http.StatusConflict, NewAPIError(
			http.StatusConflict,
			"Conflict",
			"Domain already exists",
		))
		return
	}
	c.JSON(http.StatusCreated, domain)
}

// ListDomains handles GET /api/v1/domains
func (h *DomainHandlers) ListDomains(c *gin.Context) {
	domains, err := h.domainRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list domains",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"domains": domains})
}

// GetDomain handles GET /api/v1/domains/:domain_id and includes the domain's
// records in insertion order.
func (h *DomainHandlers) GetDomain(c *gin.Context) {
	id, ok := parseID(c, "domain_id")
	if !ok {
		return
	}

	domain, err := h.domainRepo.GetWithRecords(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "Domain not found")
		return
	}
	c.JSON(http.StatusOK, domain)
}

// DeleteDomain handles DELETE /api/v1/domains/:domain_id. The typed
// confirmation must match the domain name exactly; the domain and its records
// are removed together or not at all.
func (h *DomainHandlers) DeleteDomain(c *gin.Context) {
	id, ok := parseID(c, "domain_id")
	if !ok {
		return
	}

	domain, err := h.domainRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "Domain not found")
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}
	if !wizard.ConfirmDelete(domain.Name, req.ConfirmName) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Confirmation does not match the domain name",
		))
		return
	}

	if err := h.domainRepo.DeleteCascade(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Domain not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateRecordRequest represents a request to add a DNS record.
type CreateRecordRequest struct {
	Type     string `json:"type" binding:"required"`
	Hostname string `json:"hostname"`
	Value    string `json:"value" binding:"required"`
	TTL      int    `json:"ttl"`
}

// CreateRecord handles POST /api/v1/domains/:domain_id/records
func (h *DomainHandlers) CreateRecord(c *gin.Context) {
	id, ok := parseID(c, "domain_id")
	if !ok {
		return
	}

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	record := &models.DNSRecord{
		Type:     req.Type,
		Hostname: req.Hostname,
		Value:    req.Value,
	}
	if req.TTL > 0 {
		record.TTL = req.TTL
	}

	if err := h.domainRepo.AddRecord(c.Request.Context(), id, record); err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, NewAPIError(
				http.StatusNotFound,
				"Not Found",
				"Domain not found",
			))
			return
		}
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create record",
		))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListRecords handles GET /api/v1/domains/:domain_id/records
func (h *DomainHandlers) ListRecords(c *gin.Context) {
	id, ok := parseID(c, "domain_id")
	if !ok {
		return
	}

	if _, err := h.domainRepo.GetByID(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Domain not found")
		return
	}

	records, err := h.domainRepo.ListRecords(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list records",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// UpdateRecord handles PATCH /api/v1/dns-records/:record_id
func (h *DomainHandlers) UpdateRecord(c *gin.Context) {
	id, ok := parseID(c, "record_id")
	if !ok {
		return
	}

	var patch repositories.DNSRecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	record, err := h.domainRepo.UpdateRecord(c.Request.Context(), id, patch)
	if err != nil {
		notFoundOrInternal(c, err, "Record not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/v1/dns-records/:record_id
func (h *DomainHandlers) DeleteRecord(c *gin.Context) {
	id, ok := parseID(c, "record_id")
	if !ok {
		return
	}

	if err := h.domainRepo.DeleteRecord(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Record not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID extracts a UUID path parameter, writing the error response itself
// when the value is malformed.
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid ID format",
		))
		return uuid.Nil, false
	}
	return id, true
}

func notFoundOrInternal(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repositories.ErrParentNotFound) {
		c.JSON(http.StatusNotFound, NewAPIError(
			http.StatusNotFound,
			"Not Found",
			message,
		))
		return
	}
	c.JSON(http.StatusInternalServerError, NewAPIError(
		http.StatusInternalServerError,
		"Internal Server Error",
		"Database operation failed",
	))
}
