package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/wizard"
)

// FirewallHandlers manages firewall groups and their rules. Rules belong to
// exactly one group; deleting the group deletes its rules in the same
// transaction.
type FirewallHandlers struct {
	firewallRepo *repositories.FirewallRepository
}

func NewFirewallHandlers(firewallRepo *repositories.FirewallRepository) *FirewallHandlers {
	return &FirewallHandlers{firewallRepo: firewallRepo}
}

// CreateGroupRequest represents a request to create a firewall group.
type CreateGroupRequest struct {
	Description string `json:"description" binding:"required"`
}

// CreateGroup handles POST /api/v1/firewall-groups
func (h *FirewallHandlers) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	group := &models.FirewallGroup{Description: req.Description}
	if err := h.firewallRepo.Create(c.Request.Context(), group); err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create firewall group",
		))
		return
	}
	c.JSON(http.StatusCreated, group)
}

// ListGroups handles GET /api/v1/firewall-groups
func (h *FirewallHandlers) ListGroups(c *gin.Context) {
	groups, err := h.firewallRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list firewall groups",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"firewall_groups": groups})
}

// GetGroup handles GET /api/v1/firewall-groups/:group_id and includes the
// group's rules in insertion order.
func (h *FirewallHandlers) GetGroup(c *gin.Context) {
	id, ok := parseID(c, "group_id")
	if !ok {
		return
	}

	group, err := h.firewallRepo.GetWithRules(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "Firewall group not found")
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/v1/firewall-groups/:group_id. The typed
// confirmation must match the group description exactly; the group and its
// rules are removed together or not at all.
func (h *FirewallHandlers) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "group_id")
	if !ok {
		return
	}

	group, err := h.firewallRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundOrInternal(c, err, "Firewall group not found")
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
	if !wizard.ConfirmDelete(group.Description, req.ConfirmName) {
		c.JSON(http.StatusUnprocessableEntity, NewAPIError(
			http.StatusUnprocessableEntity,
			"Unprocessable Entity",
			"Confirmation does not match the group description",
		))
		return
	}

	if err := h.firewallRepo.DeleteCascade(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Firewall group not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateRuleRequest represents a request to add a firewall rule.
type CreateRuleRequest struct {
	Direction models.RuleDirection `json:"direction" binding:"required"`
	Protocol  string               `json:"protocol" binding:"required"`
	PortRange string               `json:"port_range"`
	Source    string               `json:"source"`
	Notes     string               `json:"notes"`
}

// CreateRule handles POST /api/v1/firewall-groups/:group_id/rules
func (h *FirewallHandlers) CreateRule(c *gin.Context) {
	id, ok := parseID(c, "group_id")
	if !ok {
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}
	if !req.Direction.Valid() {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Direction must be inbound or outbound",
		))
		return
	}

	rule := &models.FirewallRule{
		Direction: req.Direction,
		Protocol:  req.Protocol,
		PortRange: req.PortRange,
		Source:    req.Source,
		Notes:     req.Notes,
	}

	if err := h.firewallRepo.AddRule(c.Request.Context(), id, rule); err != nil {
		if errors.Is(err, repositories.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, NewAPIError(
				http.StatusNotFound,
				"Not Found",
				"Firewall group not found",
			))
			return
		}
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to create rule",
		))
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// ListRules handles GET /api/v1/firewall-groups/:group_id/rules
func (h *FirewallHandlers) ListRules(c *gin.Context) {
	id, ok := parseID(c, "group_id")
	if !ok {
		return
	}

	if _, err := h.firewallRepo.GetByID(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Firewall group not found")
		return
	}

	rules, err := h.firewallRepo.ListRules(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewAPIError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"Failed to list rules",
		))
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// UpdateRule handles PATCH /api/v1/firewall-rules/:rule_id. Direction is
// immutable; only protocol, port range, source and notes may change.
func (h *FirewallHandlers) UpdateRule(c *gin.Context) {
	id, ok := parseID(c, "rule_id")
	if !ok {
		return
	}

	var patch repositories.FirewallRulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, NewAPIError(
			http.StatusBadRequest,
			"Bad Request",
			"Invalid request format",
		))
		return
	}

	rule, err := h.firewallRepo.UpdateRule(c.Request.Context(), id, patch)
	if err != nil {
		notFoundOrInternal(c, err, "Rule not found")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /api/v1/firewall-rules/:rule_id
func (h *FirewallHandlers) DeleteRule(c *gin.Context) {
	id, ok := parseID(c, "rule_id")
	if !ok {
		return
	}

	if err := h.firewallRepo.DeleteRule(c.Request.Context(), id); err != nil {
		notFoundOrInternal(c, err, "Rule not found")
		return
	}
	c.Status(http.StatusNoContent)
}
