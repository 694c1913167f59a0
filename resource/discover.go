package resource

import (
	"reflect"

	"go.uber.org/zap"
)

// Discoverer scans a type universe once, at startup, and builds the
// process-wide resource registry.
type Discoverer struct {
	logger *zap.Logger
}

// NewDiscoverer creates a discoverer. A nil logger disables logging.
func NewDiscoverer(logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{logger: logger}
}

// Discover classifies every type in the universe and registers the ones that
// qualify as resources. Non-resource types are skipped silently; duplicate
// registrations (the same type listed twice) are skipped after the first.
func (d *Discoverer) Discover(universe []reflect.Type) *Registry {
	registry := NewRegistry()

	for _, t := range universe {
		desc, ok := TryDescribe(t)
		if !ok {
			continue
		}
		if registry.Exists(desc.Type) {
			continue
		}
		if err := registry.add(desc, desc.CollectionName()); err != nil {
			// Only reachable through a collection-name collision
			// between two distinct types.
			d.logger.Warn("skipping resource",
				zap.String("resource", desc.Name()),
				zap.Error(err))
			continue
		}
		d.logger.Debug("discovered resource",
			zap.String("resource", desc.Name()),
			zap.String("collection", desc.CollectionName()),
			zap.String("identity", desc.IdentityType.String()))
	}

	d.logger.Info("resource discovery complete",
		zap.Int("scanned", len(universe)),
		zap.Int("resources", registry.Count()))

	return registry
}
