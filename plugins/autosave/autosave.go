package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/tidenote/internal/event"
	"github.com/bethropolis/tidenote/internal/logger"
	"github.com/bethropolis/tidenote/internal/plugin"
	"github.com/bethropolis/tidenote/internal/utils"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave periodically saves the note and its undo history. With 'idle'
// set it also saves once typing has paused for that long.
type AutoSave struct {
	api plugin.EditorAPI

	// Configuration
	mutex    sync.RWMutex // Protects access to config fields below
	enabled  bool
	interval time.Duration
	idle     time.Duration // 0 disables saving on idle

	// Runtime state
	debouncer utils.Debouncer
	stopChan  chan struct{}  // Signals the saver goroutine to stop
	wg        sync.WaitGroup // Waits for the goroutine to finish
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	logger.Debugf("%s: Initializing...", pluginName)

	// --- Read Configuration ---
	p.mutex.Lock()

	// Read 'enabled' flag
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	} else {
		logger.Debugf("%s: Config 'enabled' not found, using default (%v)", pluginName, p.enabled)
	}

	p.interval = p.readDuration("interval", p.interval)
	p.idle = p.readDuration("idle", p.idle)

	isEnabled := p.enabled
	interval := p.interval
	idle := p.idle
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v, Idle: %v", pluginName, isEnabled, interval, idle)

	if isEnabled && idle > 0 {
		api.SubscribeEvent(event.TypeBufferModified, p.handleBufferModified)
	}

	// --- Start Saver Goroutine ---
	if isEnabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(interval)
		logger.Debugf("%s: Saver goroutine started.", pluginName)
	}

	return nil
}

// readDuration reads a positive duration string such as "30s" from the
// plugin's config, falling back to def.
func (p *AutoSave) readDuration(key string, def time.Duration) time.Duration {
	val, ok := p.api.GetPluginConfigValue(p.Name(), key)
	if !ok {
		logger.Debugf("%s: Config '%s' not found, using default (%v)", p.Name(), key, def)
		return def
	}
	strVal, isStr := val.(string)
	if !isStr {
		logger.Warnf("%s: Invalid type for '%s' config (%T), using default (%v)", p.Name(), key, val, def)
		return def
	}
	parsed, err := time.ParseDuration(strVal)
	if err != nil {
		logger.Warnf("%s: Invalid format for '%s' config ('%s'): %v. Using default (%v)", p.Name(), key, strVal, err, def)
		return def
	}
	if parsed <= 0 {
		logger.Warnf("%s: '%s' config must be positive ('%s'). Using default (%v)", p.Name(), key, strVal, def)
		return def
	}
	return parsed
}

// handleBufferModified restarts the idle countdown on every edit.
func (p *AutoSave) handleBufferModified(event.Event) bool {
	p.mutex.RLock()
	idle := p.idle
	p.mutex.RUnlock()
	p.debouncer.Debounce(idle, p.requestSave)
	return false
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	p.debouncer.Stop()

	p.mutex.RLock()
	isEnabled := p.enabled
	p.mutex.RUnlock()

	if isEnabled && p.stopChan != nil {
		logger.Debugf("%s: Shutting down...", p.Name())
		close(p.stopChan)
		p.wg.Wait()
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

// saverLoop is the main loop for the auto-save functionality.
func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Debugf("%s: Entering saver loop with interval %v.", p.Name(), interval)

	for {
		select {
		case <-ticker.C:
			p.requestSave()
		case <-p.stopChan:
			logger.Debugf("%s: Received stop signal, exiting saver loop.", p.Name())
			return
		}
	}
}

// requestSave asks the UI goroutine to save. The ticker goroutine never
// reads editor state itself.
func (p *AutoSave) requestSave() {
	if p.api == nil {
		logger.Errorf("%s: API is nil in requestSave!", p.Name())
		return
	}
	if err := p.api.Post(p.saveIfModified); err != nil {
		logger.Debugf("%s: could not queue auto-save: %v", p.Name(), err)
	}
}

// saveIfModified saves the note and its history when there are unsaved
// changes. Runs on the UI goroutine.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsBufferModified() {
		logger.Debugf("%s: Note not modified, skipping auto-save.", p.Name())
		return
	}

	filePath := p.api.GetBufferFilePath()
	if filePath == "" {
		logger.Debugf("%s: Note is modified but has no path, skipping auto-save.", p.Name())
		return
	}

	logger.Infof("%s: Auto-saving note and history: %s", p.Name(), filePath)
	if err := p.api.SaveNote(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		p.api.SetStatusMessage("%s: Auto-save failed: %v", p.Name(), err)
		return
	}
	logger.Debugf("%s: Auto-save successful for '%s'", p.Name(), filePath)
}
