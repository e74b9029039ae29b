package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/tasks"
	"github.com/skystack/console/pkg/wizard"
)

// ResourceHandlers drives the resource lifecycle: submission of a wizard
// selection, the simulated provisioning completion, upgrades, resizes and
// confirmed deletion.
type ResourceHandlers struct {
	resourceRepo   *repositories.ResourceRepository
	catalog        *catalog.Catalog
	runner         *tasks.Runner
	provisionDelay time.Duration
	upgradeDelay   time.Duration
}

func NewResourceHandlers(resourceRepo *repositories.ResourceRepository, cat *catalog.Catalog, runner *tasks.Runner, provisionDelay, upgradeDelay time.Duration) *ResourceHandlers {
	return &ResourceHandlers{
		resourceRepo:   resourceRepo,
		catalog:        cat,
		runner:         runner,
		provisionDelay: provisionDelay,
		upgradeDelay:   upgradeDelay,
	}
}

// CreateResource handles POST /api/v1/resources. The body is a wizard
// selection; it must pass the readiness gate before a descriptor is assembled
// and persisted. Provisioning completes after the simulated delay.
func (h *ResourceHandlers) CreateResource(c *gin.Context) {
	var sel wizard.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid selection format",
		))
		return
	}

	if !wizard.IsReady(&sel, h.catalog) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Selection is not ready for submission",
		))
		return
	}

	resource := wizard.Assemble(&sel, h.catalog)
	if err := h.resourceRepo.Create(c.Request.Context(), resource); err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create resource",
		))
		return
	}

	h.scheduleTransition(resource.ID, h.provisionDelay, models.StatusRunning)

	c.JSON(http.StatusCreated, resource)
}

// ListResources handles GET /api/v1/resources
func (h *ResourceHandlers) ListResources(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resources, err := h.resourceRepo.List(c.Request.Context(), c.Query("kind"), limit, offset, c.Query("filter"), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list resources",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// GetResource handles GET /api/v1/resources/:resource_id
func (h *ResourceHandlers) GetResource(c *gin.Context) {
	resource, ok := h.loadResource(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resource)
}

// UpgradeRequest selects the plan to move a running resource to.
type UpgradeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// UpgradeResource handles POST /api/v1/resources/:resource_id/upgrade. The
// resource moves to Upgrading and returns to Running after the simulated
// delay; a second operation against the same resource while one is pending is
// rejected, never raced.
func (h *ResourceHandlers) UpgradeResource(c *gin.Context) {
	resource, ok := h.loadResource(c)
	if !ok {
		return
	}

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	plan, found := h.catalog.FindPlan(req.PlanID)
	if !found {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Unknown plan",
		))
		return
	}

	if h.runner.InFlight(resource.ID.String()) {
		c.JSON(http.StatusConflict, NewAPIError(
			http.StatusConflict,
			"Conflict",
			"An operation is already in flight for this resource",
		))
		return
	}

	if err := h.resourceRepo.TransitionStatus(c.Request.Context(), resource.ID, models.StatusUpgrading); err != nil {
		h.transitionError(c, err)
		return
	}

	quantity := resource.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if err := h.resourceRepo.Resize(c.Request.Context(), resource.ID, resource.SizeGB, plan.MonthlyPrice*float64(quantity)); err != nil {
		log.Printf("failed to record upgraded plan cost for %s: %v", resource.ID, err)
	}

	h.scheduleTransition(resource.ID, h.upgradeDelay, models.StatusRunning)

	resource, _ = h.resourceRepo.GetByID(c.Request.Context(), resource.ID)
	c.JSON(http.StatusAccepted, resource)
}

// ResizeRequest carries the new capacity for a volume or file system.
type ResizeRequest struct {
	SizeGB int `json:"size_gb" binding:"required"`
}

// ResizeResource handles POST /api/v1/resources/:resource_id/resize. The new
// size must differ from the current size; the monthly cost is recomputed from
// the per-gigabyte rate.
func (h *ResourceHandlers) ResizeResource(c *gin.Context) {
	resource, ok := h.loadResource(c)
	if !ok {
		return
	}

	var req ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	sel := wizard.Selection{
		Kind:          wizard.Kind(resource.Kind),
		Name:          resource.Name,
		Quantity:      1,
		SizeGB:        req.SizeGB,
		CurrentSizeGB: resource.SizeGB,
	}
	if !sel.Kind.Sized() {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Resource does not support resizing",
		))
		return
	}
	if !wizard.IsReady(&sel, h.catalog) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"New size must be positive and differ from the current size",
		))
		return
	}

	cost := wizard.ComputeTotal(&sel, h.catalog)
	if err := h.resourceRepo.Resize(c.Request.Context(), resource.ID, req.SizeGB, cost); err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to resize resource",
		))
		return
	}

	resource, _ = h.resourceRepo.GetByID(c.Request.Context(), resource.ID)
	c.JSON(http.StatusOK, resource)
}

// DeleteRequest carries the typed confirmation for a destructive action.
type DeleteRequest struct {
	ConfirmName string `json:"confirm_name"`
}

// DeleteResource handles DELETE /api/v1/resources/:resource_id. The typed
// confirmation must match the resource name exactly.
func (h *ResourceHandlers) DeleteResource(c *gin.Context) {
	resource, ok := h.loadResource(c)
	if !ok {
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

	if !wizard.ConfirmDelete(resource.Name, req.ConfirmName) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Confirmation does not match the resource name",
		))
		return
	}

	if h.runner.InFlight(resource.ID.String()) {
		c.JSON(http.StatusConflict, NewAPIError(
			http.StatusConflict,
			"Conflict",
			"An operation is already in flight for this resource",
		))
		return
	}

	if err := h.resourceRepo.Delete(c.Request.Context(), resource.ID); err != nil {
		h.transitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// loadResource parses the path id and fetches the resource, writing the error
// response itself when either step fails.
func (h *ResourceHandlers) loadResource(c *gin.Context) (*models.Resource, bool) {
	id, err := uuid.Parse(c.Param("resource_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid resource ID format",
		))
		return nil, false
	}

	resource, err := h.resourceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, NewAPIError(
				http.StatusNotFound,
				"Not Found",
				"Resource not found",
			))
		} else {
			c.JSON(http.StatusInternalServerError, NewAPIError(
				http.StatusInternalServerError,
				"Internal Server Error",
				"Failed to load resource",
			))
		}
		return nil, false
	}
	return resource, true
}

func (h *ResourceHandlers) transitionError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, NewAPIError(
			http.StatusConflict,
			"Conflict",
			"Resource is in a conflicting state",
		))
		return
	}
	c.JSON(http.StatusInternalServerError, NewAPIError(
		http.StatusInternalServerError,
		"Internal Server Error",
		"Failed to update resource",
	))
}

// scheduleTransition queues the simulated completion that moves the resource
// to its next status. The HTTP request context is gone by the time the delay
// elapses, so the completion runs against a background context.
func (h *ResourceHandlers) scheduleTransition(id uuid.UUID, delay time.Duration, to models.ResourceStatus) {
	err := h.runner.Run(id.String(), delay, func() {
		if err := h.resourceRepo.TransitionStatus(context.Background(), id, to); err != nil {
			log.Printf("simulated operation for resource %s failed to complete: %v", id, err)
		}
	})
	if err != nil {
		log.Printf("failed to schedule operation for resource %s: %v", id, err)
	}
}
