package wizard

import (
	"github.com/skystack/console/pkg/catalog"
)

// IsReady decides whether the wizard's primary action is currently permitted.
// It is pure and side-effect-free; callers re-evaluate it on every selection
// change and surface a false result as a disabled action, never as an error.
func IsReady(sel *Selection, cat *catalog.Catalog) bool {
	if sel.Name == "" {
		return false
	}
	if !sel.Kind.Valid() {
		return false
	}
	if sel.Kind.LocationBound() && len(sel.LocationIDs) == 0 {
		return false
	}
	if sel.Quantity < 1 {
		return false
	}

	switch sel.Kind {
	case KindInstance:
		if !PlanResolved(sel, cat) {
			return false
		}
		if _, ok := cat.FindImageInPartition(sel.ImageID, sel.ImageTab); !ok {
			return false
		}
	case KindKubernetes, KindLoadBalancer, KindBucket:
		if !PlanResolved(sel, cat) {
			return false
		}
	case KindVolume, KindFileSystem:
		if sel.SizeGB <= 0 {
			return false
		}
		if !resizeAllowed(sel) {
			return false
		}
	}

	for _, id := range sel.LocationIDs {
		if _, ok := cat.FindLocation(id); !ok {
			return false
		}
	}

	return true
}

// ConfirmDelete gates destructive actions: the typed confirmation must equal
// the target's display name exactly. Case differences and surrounding
// whitespace keep the action disabled; the strictness forces a deliberate
// retype of the name.
func ConfirmDelete(targetName, typed string) bool {
	return targetName != "" && typed == targetName
}

// resizeAllowed rejects a resize to the current capacity. A selection with no
// current size is a first-time creation and always passes.
func resizeAllowed(sel *Selection) bool {
	if sel.CurrentSizeGB == 0 {
		return true
	}
	return sel.SizeGB != sel.CurrentSizeGB
}
