package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a self-contained unit of functionality that registers its
// own routes.
type Feature interface {
	// Name returns the unique feature name, used for logging and errors.
	Name() string
	// Register mounts the feature's routes on the router.
	Register(router fiber.Router) error
}

// Manager collects features and loads them into the application.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the manager.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll registers every feature's routes. The first failure aborts
// loading; a partially routed server must not start.
func (m *Manager) LoadAll(app *fiber.App) error {
	for _, f := range m.features {
		if err := f.Register(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}
