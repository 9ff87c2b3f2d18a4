// ABOUTME: Daily entry operations on the Charm KV mirror.
// ABOUTME: Entries are keyed by date so a re-push overwrites cleanly.
package charm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/daylog/internal/models"
)

// PutEntry stores an entry under its date key, overwriting any
// previous version for that day.
func (c *Client) PutEntry(entry *models.DailyEntry) error {
	if entry.Date == "" {
		return fmt.Errorf("entry has no date")
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return c.set(EntryPrefix+entry.Date, data)
}

// GetEntry retrieves the entry for a date.
func (c *Client) GetEntry(date string) (*models.DailyEntry, error) {
	data, err := c.get(EntryPrefix + date)
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", date, err)
	}
	var entry models.DailyEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parse entry %s: %w", date, err)
	}
	return &entry, nil
}

// ListEntries returns all mirrored entries sorted by date ascending.
func (c *Client) ListEntries() ([]models.DailyEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	prefix := []byte(EntryPrefix)
	var entries []models.DailyEntry
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		val, err := c.kv.Get(key)
		if err != nil {
			return nil, err
		}
		var entry models.DailyEntry
		if err := json.Unmarshal(val, &entry); err != nil {
			return nil, fmt.Errorf("parse entry %s: %w", strings.TrimPrefix(string(key), EntryPrefix), err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// DeleteEntry removes the mirrored entry for a date.
func (c *Client) DeleteEntry(date string) error {
	return c.delete(EntryPrefix + date)
}

// Push mirrors every local entry to the cloud and returns the count.
func (c *Client) Push(entries []models.DailyEntry) (int, error) {
	c.SetAutoSync(false)
	defer c.SetAutoSync(true)

	for i := range entries {
		if err := c.PutEntry(&entries[i]); err != nil {
			return i, err
		}
	}
	if err := c.Sync(); err != nil {
		return len(entries), fmt.Errorf("sync: %w", err)
	}
	return len(entries), nil
}
