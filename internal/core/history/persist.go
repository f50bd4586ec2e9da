package history

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bethropolis/tidenote/internal/logger"
)

// Store is the key/value persistence boundary for saved history.
type Store interface {
	PutString(key, value string)
	PutInt(key string, value int)
	GetString(key string) (string, bool)
	GetInt(key string) (int, bool)
}

// Key suffixes written under the caller's prefix.
const (
	keyHash     = "hash"
	keyMaxSize  = "maxSize"
	keyPosition = "position"
	keyCount    = "count"
	keyStart    = "start"
	keyBefore   = "before"
	keyAfter    = "after"
)

// ContentHash fingerprints a document. SHA-256 makes an accidental match
// between two different documents vanishingly unlikely, though not impossible.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func fieldKey(prefix, name string) string {
	return prefix + "." + name
}

func entryKey(prefix string, i int, name string) string {
	return fmt.Sprintf("%s.%d.%s", prefix, i, name)
}

// Save writes the history under prefix, fenced by a hash of the surface's
// current text. Nothing is written if any entry is malformed. Committing the
// store is left to the caller.
func (c *Controller) Save(store Store, prefix string) error {
	entries := c.log.entries
	for i, e := range entries {
		if !e.valid() {
			return fmt.Errorf("%w: entry %d", ErrMalformedEntry, i)
		}
	}

	store.PutString(fieldKey(prefix, keyHash), ContentHash(c.surface.Text()))
	store.PutInt(fieldKey(prefix, keyMaxSize), c.log.MaxSize())
	store.PutInt(fieldKey(prefix, keyPosition), c.log.Position())
	store.PutInt(fieldKey(prefix, keyCount), len(entries))
	for i, e := range entries {
		store.PutInt(entryKey(prefix, i, keyStart), e.Start)
		store.PutString(entryKey(prefix, i, keyBefore), e.Before)
		store.PutString(entryKey(prefix, i, keyAfter), e.After)
	}

	logger.Debugf("History: Saved %d entries under %q. Position: %d", len(entries), prefix, c.log.Position())
	return nil
}

// Restore replaces the history with the one saved under prefix. A missing
// save is not an error and leaves the history alone. On any failure the
// history is cleared, so it is never partially restored.
func (c *Controller) Restore(store Store, prefix string) error {
	if err := c.restore(store, prefix); err != nil {
		c.Clear()
		logger.Warnf("History: Restore of %q failed, history cleared: %v", prefix, err)
		return err
	}
	return nil
}

func (c *Controller) restore(store Store, prefix string) error {
	hash, ok := store.GetString(fieldKey(prefix, keyHash))
	if !ok {
		logger.Debugf("History: No saved state under %q.", prefix)
		return nil
	}
	if hash != ContentHash(c.surface.Text()) {
		return ErrHashMismatch
	}

	c.log.Clear()
	c.breakBatch()

	maxSize, ok := store.GetInt(fieldKey(prefix, keyMaxSize))
	if !ok {
		maxSize = Unbounded
	}
	c.log.SetMaxSize(maxSize)

	count, ok := store.GetInt(fieldKey(prefix, keyCount))
	if !ok || count < 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, fieldKey(prefix, keyCount))
	}

	for i := 0; i < count; i++ {
		start, ok := store.GetInt(entryKey(prefix, i, keyStart))
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, entryKey(prefix, i, keyStart))
		}
		before, ok := store.GetString(entryKey(prefix, i, keyBefore))
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, entryKey(prefix, i, keyBefore))
		}
		after, ok := store.GetString(entryKey(prefix, i, keyAfter))
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, entryKey(prefix, i, keyAfter))
		}

		e := &Entry{Start: start, Before: before, After: after}
		if !e.valid() {
			return fmt.Errorf("%w: entry %d", ErrMalformedEntry, i)
		}
		c.log.Push(e)
	}

	position, ok := store.GetInt(fieldKey(prefix, keyPosition))
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingField, fieldKey(prefix, keyPosition))
	}
	if err := c.log.setPosition(position); err != nil {
		return err
	}

	logger.Infof("History: Restored %d entries from %q. Position: %d", c.log.Len(), prefix, position)
	return nil
}
