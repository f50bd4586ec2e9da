package app

import (
	"fmt"

	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/plugin"
	"github.com/bethropolis/tidenote/plugins/autosave"
	"github.com/bethropolis/tidenote/plugins/wordcount"
)

// registerPlugins registers all known plugins with the manager.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	pluginConstructors := []func() plugin.Plugin{
		wordcount.New,
		autosave.New,
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
