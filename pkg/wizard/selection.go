package wizard

import (
	"github.com/skystack/console/pkg/catalog"
)

// Kind identifies which provisioning wizard a Selection belongs to. The kind
// decides which fields are meaningful and which pricing terms apply.
type Kind string

const (
	KindInstance     Kind = "instance"
	KindKubernetes   Kind = "kubernetes"
	KindLoadBalancer Kind = "loadbalancer"
	KindVPC          Kind = "vpc"
	KindVolume       Kind = "volume"
	KindBucket       Kind = "bucket"
	KindFileSystem   Kind = "filesystem"
)

// Valid checks if the kind names a known wizard.
func (k Kind) Valid() bool {
	switch k {
	case KindInstance, KindKubernetes, KindLoadBalancer, KindVPC, KindVolume, KindBucket, KindFileSystem:
		return true
	default:
		return false
	}
}

// MultiLocation reports whether the wizard deploys to more than one location
// at once. Multi-location kinds accumulate location ids; the rest keep exactly
// one.
func (k Kind) MultiLocation() bool {
	return k == KindLoadBalancer || k == KindVPC
}

// LocationBound reports whether the wizard requires at least one location.
func (k Kind) LocationBound() bool {
	switch k {
	case KindInstance, KindKubernetes, KindLoadBalancer, KindVPC:
		return true
	default:
		return false
	}
}

// Sized reports whether the wizard configures capacity in gigabytes.
func (k Kind) Sized() bool {
	return k == KindVolume || k == KindFileSystem
}

// ForwardingRule is a load balancer frontend-to-backend port mapping.
type ForwardingRule struct {
	ID           string `json:"id"`
	Protocol     string `json:"protocol"`
	FrontendPort int    `json:"frontend_port"`
	BackendPort  int    `json:"backend_port"`
}

// Selection is the in-progress configuration for one wizard instance. It is
// the only mutable state the engine operates on; resolver, pricing and gate
// are pure functions over it.
type Selection struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`

	// Plan picker state.
	Category   catalog.PlanCategory `json:"category"`
	PlanSearch string               `json:"plan_search"`
	PlanID     string               `json:"plan_id"`

	// Image picker state. ImageID must belong to the ImageTab partition;
	// SetImageTab maintains that.
	ImageTab catalog.ImageType `json:"image_tab"`
	ImageID  string            `json:"image_id"`

	// Location picker state. LocationIDs preserves toggle order and holds no
	// duplicates; single-location kinds keep at most one entry.
	Region         catalog.Region `json:"region"`
	LocationSearch string         `json:"location_search"`
	LocationIDs    []string       `json:"location_ids"`

	// Quantity is the instance or node count, never below 1.
	Quantity int `json:"quantity"`

	// Features maps addon id to its toggle state.
	Features map[string]bool `json:"features"`

	// Capacity for volume and file system wizards. CurrentSizeGB is the
	// existing size during a resize flow, zero on first creation.
	SizeGB        int `json:"size_gb"`
	CurrentSizeGB int `json:"current_size_gb"`

	// Destructive-confirmation state: ConfirmText must equal TargetName
	// exactly before the gate opens.
	TargetName  string `json:"target_name"`
	ConfirmText string `json:"confirm_text"`

	// Load balancer substructure, kept in insertion order.
	ForwardingRules []ForwardingRule `json:"forwarding_rules"`

	// VPCByLocation maps a chosen location id to the VPC to attach there.
	VPCByLocation map[string]string `json:"vpc_by_location"`
}

// NewSelection seeds a selection with catalog-derived defaults: the first
// plan, the first location's region, quantity 1. A fresh selection is created
// when a wizard opens and discarded on close or successful submit.
func NewSelection(kind Kind, cat *catalog.Catalog) *Selection {
	sel := &Selection{
		Kind:          kind,
		Category:      catalog.CategoryAll,
		ImageTab:      catalog.ImageOS,
		Quantity:      1,
		Features:      make(map[string]bool),
		VPCByLocation: make(map[string]string),
	}
	if len(cat.Plans) > 0 {
		sel.PlanID = cat.Plans[0].ID
	}
	if len(cat.Locations) > 0 {
		sel.Region = cat.Locations[0].Region
		sel.LocationIDs = []string{cat.Locations[0].ID}
	}
	return sel
}

// ToggleLocation adds or removes a location id. For single-location kinds the
// toggle replaces the current choice instead of accumulating. The list stays
// duplicate-free and order-preserving.
func (s *Selection) ToggleLocation(id string) {
	if !s.Kind.MultiLocation() {
		s.LocationIDs = []string{id}
		return
	}
	for i, existing := range s.LocationIDs {
		if existing == id {
			s.LocationIDs = append(s.LocationIDs[:i], s.LocationIDs[i+1:]...)
			delete(s.VPCByLocation, id)
			return
		}
	}
	s.LocationIDs = append(s.LocationIDs, id)
}

// SetImageTab switches the active image partition. A previously chosen image
// that does not belong to the new partition is cleared rather than left
// dangling, so the image id is always valid for the active tab or empty.
func (s *Selection) SetImageTab(tab catalog.ImageType, cat *catalog.Catalog) {
	s.ImageTab = tab
	if s.ImageID == "" {
		return
	}
	if _, ok := cat.FindImageInPartition(s.ImageID, tab); !ok {
		s.ImageID = ""
	}
}

// SetCategory switches the plan category filter. The plan id is left in place
// even when it falls outside the new filter; the readiness gate treats that as
// unresolved until the user picks again.
func (s *Selection) SetCategory(category catalog.PlanCategory) {
	s.Category = category
}

// AddForwardingRule appends a rule, keeping insertion order.
func (s *Selection) AddForwardingRule(rule ForwardingRule) {
	s.ForwardingRules = append(s.ForwardingRules, rule)
}

// RemoveForwardingRule deletes a rule by id; unknown ids are ignored.
func (s *Selection) RemoveForwardingRule(id string) {
	for i, rule := range s.ForwardingRules {
		if rule.ID == id {
			s.ForwardingRules = append(s.ForwardingRules[:i], s.ForwardingRules[i+1:]...)
			return
		}
	}
}
