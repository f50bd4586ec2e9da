// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string // Registration order; init and shutdown follow it
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

func (m *Manager) snapshot() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.plugins[name])
	}
	return out
}

// InitializePlugins calls Initialize on every registered plugin. A failing
// plugin is logged and skipped; the rest still load. It returns the names of
// plugins that failed.
func (m *Manager) InitializePlugins(api EditorAPI) []string {
	plugins := m.snapshot()
	logger.Infof("Plugin Manager: Initializing %d plugins...", len(plugins))

	var failed []string
	for _, plugin := range plugins {
		if err := plugin.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", plugin.Name(), err)
			failed = append(failed, plugin.Name())
			continue
		}
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", plugin.Name())
	}
	return failed
}

// ShutdownPlugins calls Shutdown on all registered plugins, newest first.
func (m *Manager) ShutdownPlugins() {
	plugins := m.snapshot()
	logger.Debugf("Plugin Manager: Shutting down %d plugins...", len(plugins))
	for i := len(plugins) - 1; i >= 0; i-- {
		if err := plugins[i].Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", plugins[i].Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name. Use cautiously.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
