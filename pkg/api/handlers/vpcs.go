package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/wizard"
)

// VPCHandlers manages VPC networks and their routes. Routes belong to exactly
// one network; deleting the network deletes its routes in the same
// transaction.
type VPCHandlers struct {
	vpcRepo *repositories.VPCRepository
	catalog *catalog.Catalog
}

func NewVPCHandlers(vpcRepo *repositories.VPCRepository, cat *catalog.Catalog) *VPCHandlers {
	return &VPCHandlers{vpcRepo: vpcRepo, catalog: cat}
}

// CreateVPCRequest represents a request to create a VPC network.
type CreateVPCRequest struct {
	Name       string `json:"name" binding:"required"`
	LocationID string `json:"location_id" binding:"required"`
	Subnet     string `json:"subnet"`
}

// CreateVPC handles POST /api/v1/vpcs. The location must exist in the catalog.
func (h *VPCHandlers) CreateVPC(c *gin.Context) {
	var req CreateVPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	if _, found := h.catalog.FindLocation(req.LocationID); !found {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Unknown location",
		))
		return
	}

	network := &models.VPCNetwork{
		Name:       req.Name,
		LocationID: req.LocationID,
		Subnet:     req.Subnet,
	}
	if err := h.vpcRepo.Create(c.Request.Context(), network); err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create VPC network",
		))
		return
	}
	c.JSON(http.StatusCreated, network)
}

// ListVPCs handles GET /api/v1/vpcs
func (h *VPCHandlers) ListVPCs(c *gin.Context) {
	networks, err := h.vpcRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list VPC networks",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"vpcs": networks})
}

// GetVPC handles GET /api/v1/vpcs/:vpc_id and includes the network's routes
// in insertion order.
func (h *VPCHandlers) GetVPC(c *gin.Context) {
	id, ok := parseID(c, "vpc_id")
	if !ok {
		return
	}

	network, err := h.vpcRepo.GetWithRoutes(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "VPC network not found")
		return
	}
	c.JSON(http.StatusOK, network)
}

// DeleteVPC handles DELETE /api/v1/vpcs/:vpc_id. The typed confirmation must
// match the network name exactly; the network and its routes are removed
// together or not at all.
func (h *VPCHandlers) DeleteVPC(c *gin.Context) {
	id, ok := parseID(c, "vpc_id")
	if !ok {
		return
	}

	network, err := h.vpcRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "VPC network not found")
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
	if !wizard.ConfirmDelete(network.Name, req.ConfirmName) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Confirmation does not match the network name",
		))
		return
	}

	if err := h.vpcRepo.DeleteCascade(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "VPC network not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateRouteRequest represents a request to add a VPC route.
type CreateRouteRequest struct {
	Destination string `json:"destination" binding:"required"`
	NextHop     string `json:"next_hop" binding:"required"`
}

// CreateRoute handles POST /api/v1/vpcs/:vpc_id/routes
func (h *VPCHandlers) CreateRoute(c *gin.Context) {
	id, ok := parseID(c, "vpc_id")
	if !ok {
		return
	}

	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	route := &models.VPCRoute{
		Destination: req.Destination,
		NextHop:     req.NextHop,
	}

	if err := h.vpcRepo.AddRoute(c.Request.Context(), id, route); err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, NewAPIError(
				http.StatusNotFound,
				"Not Found",
				"VPC network not found",
			))
			return
		}
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create route",
		))
		return
	}
	c.JSON(http.StatusCreated, route)
}

// ListRoutes handles GET /api/v1/vpcs/:vpc_id/routes
func (h *VPCHandlers) ListRoutes(c *gin.Context) {
	id, ok := parseID(c, "vpc_id")
	if !ok {
		return
	}

	if _, err := h.vpcRepo.GetByID(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "VPC network not found")
		return
	}

	routes, err := h.vpcRepo.ListRoutes(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list routes",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// UpdateRoute handles PATCH /api/v1/vpc-routes/:route_id
func (h *VPCHandlers) UpdateRoute(c *gin.Context) {
	id, ok := parseID(c, "route_id")
	if !ok {
		return
	}

	var patch repositories.VPCRoutePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	route, err := h.vpcRepo.UpdateRoute(c.Request.Context(), id, patch)
	if err != nil {
		notFoundOrInternal(c, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, route)
}

// DeleteRoute handles DELETE /api/v1/vpc-routes/:route_id
func (h *VPCHandlers) DeleteRoute(c *gin.Context) {
	id, ok := parseID(c, "route_id")
	if !ok {
		return
	}

	if err := h.vpcRepo.DeleteRoute(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Route not found")
		return
	}
	c.Status(http.StatusNoContent)
}
