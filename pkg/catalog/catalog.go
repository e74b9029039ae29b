package catalog

// Region identifies the geographic grouping a location belongs to.
type Region string

const (
	RegionNorthAmerica Region = "north-america"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
	RegionAustralia    Region = "australia"
	RegionSouthAmerica Region = "south-america"
)

// Valid checks if the region is one of the known groupings.
func (r Region) Valid() bool {
	switch r {
	case RegionNorthAmerica, RegionEurope, RegionAsia, RegionAustralia, RegionSouthAmerica:
		return true
	default:
		return false
	}
}

// PlanCategory classifies compute plans.
type PlanCategory string

const (
	// CategoryAll is a filter value only; no plan carries it.
	CategoryAll PlanCategory = "all"

	CategoryCloudCompute     PlanCategory = "cloud-compute"
	CategoryOptimizedCloud   PlanCategory = "optimized-cloud"
	CategoryHighFrequency    PlanCategory = "high-frequency"
	CategoryBareMetal        PlanCategory = "bare-metal"
	CategoryStorageOptimized PlanCategory = "storage-optimized"
)

// ImageType partitions images into the tabs a deploy screen shows.
type ImageType string

const (
	ImageOS         ImageType = "os"
	ImageApp        ImageType = "app"
	ImageISONetwork ImageType = "iso-network"
	ImageISOLibrary ImageType = "iso-library"
	ImageBackup     ImageType = "backup"
	ImageSnapshot   ImageType = "snapshot"
)

// AddonMode selects how a feature add-on contributes to the monthly total.
type AddonMode string

const (
	// AddonPercent charges a fraction of the base plan price.
	AddonPercent AddonMode = "percent"
	// AddonFlat charges a fixed monthly amount.
	AddonFlat AddonMode = "flat"
)

// Location is a deployable datacenter location.
type Location struct {
	ID     string `json:"id"`
	City   string `json:"city"`
	Region Region `json:"region"`
	Flag   string `json:"flag"`
}

// Plan is a purchasable compute plan. ID uniquely determines all other fields.
type Plan struct {
	ID           string       `json:"id"`
	Category     PlanCategory `json:"category"`
	VCPUs        int          `json:"vcpus"`
	RAM          string       `json:"ram"`
	Disk         string       `json:"disk"`
	Bandwidth    string       `json:"bandwidth"`
	MonthlyPrice float64      `json:"monthly_price"`
}

// Image is an installable operating system, marketplace app, ISO, backup or
// snapshot. ExtraCost is a monthly surcharge and defaults to zero.
type Image struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      ImageType `json:"type"`
	Versions  []string  `json:"versions"`
	ExtraCost float64   `json:"extra_cost"`
}

// Addon is a toggleable feature with a pricing rule.
type Addon struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Mode  AddonMode `json:"mode"`
	// Rate is the fraction of the base plan price for percent addons.
	Rate float64 `json:"rate,omitempty"`
	// Flat is the monthly amount for flat addons.
	Flat float64 `json:"flat,omitempty"`
}

// Catalog is the read-only reference data a wizard works against. The engine
// never mutates it; a single instance is shared by all sessions.
type Catalog struct {
	Locations []Location `json:"locations"`
	Plans     []Plan     `json:"plans"`
	Images    []Image    `json:"images"`
	Addons    []Addon    `json:"addons"`
}

// FindLocation resolves a location id. The second return value reports whether
// the id exists; callers must branch on it rather than relying on zero values.
func (c *Catalog) FindLocation(id string) (Location, bool) {
	for _, loc := range c.Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

// FindPlan resolves a plan id.
func (c *Catalog) FindPlan(id string) (Plan, bool) {
	for _, plan := range c.Plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}

// FindImage resolves an image id across all partitions.
func (c *Catalog) FindImage(id string) (Image, bool) {
	for _, img := range c.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// FindImageInPartition resolves an image id only within the given type
// partition. An id that exists under a different tab does not resolve.
func (c *Catalog) FindImageInPartition(id string, t ImageType) (Image, bool) {
	for _, img := range c.Images {
		if img.ID == id && img.Type == t {
			return img, true
		}
	}
	return Image{}, false
}

// FindAddon resolves an addon id.
func (c *Catalog) FindAddon(id string) (Addon, bool) {
	for _, addon := range c.Addons {
		if addon.ID == id {
			return addon, true
		}
	}
	return Addon{}, false
}
