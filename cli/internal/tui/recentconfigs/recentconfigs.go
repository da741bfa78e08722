// ABOUTME: Manages the list of recently planned wall configurations for the TUI
// ABOUTME: Stores configurations as JSON in the XDG config directory

package recentconfigs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markalston/ledwall-calc/backend/models"
	"github.com/markalston/ledwall-calc/backend/services"
)

// MaxRecentConfigs is the maximum number of configurations to keep
const MaxRecentConfigs = 5

// RecentConfigs manages the most recently used wall configurations
type RecentConfigs struct {
	configDir string
	configs   []models.WallConfig
}

type recentData struct {
	Configs []models.WallConfig `json:"configs"`
}

// New creates a new manager rooted at configDir. An empty configDir
// keeps the list in memory only.
func New(configDir string) *RecentConfigs {
	return &RecentConfigs{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledwall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ledwall")
}

// configFile returns the path to the recent configurations JSON
func (rc *RecentConfigs) configFile() string {
	return filepath.Join(rc.configDir, "recent.json")
}

// Load reads the list from disk, most recent first. Entries that no
// longer pass validation are dropped; an unreadable file starts fresh.
func (rc *RecentConfigs) Load() ([]models.WallConfig, error) {
	rc.configs = []models.WallConfig{}
	if rc.configDir == "" {
		return rc.configs, nil
	}

	data, err := os.ReadFile(rc.configFile())
	if errors.Is(err, os.ErrNotExist) {
		return rc.configs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recent configurations: %w", err)
	}

	var recent recentData
	if err := json.Unmarshal(data, &recent); err != nil {
		return rc.configs, nil
	}

	for _, cfg := range recent.Configs {
		if services.ValidateWallConfig(cfg) == nil {
			rc.configs = append(rc.configs, cfg)
		}
	}
	return rc.configs, nil
}

// Save writes the list to disk, trimmed to MaxRecentConfigs
func (rc *RecentConfigs) Save(configs []models.WallConfig) error {
	if len(configs) > MaxRecentConfigs {
		configs = configs[:MaxRecentConfigs]
	}
	rc.configs = configs

	if rc.configDir == "" {
		return nil
	}
	if err := os.MkdirAll(rc.configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(recentData{Configs: configs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recent configurations: %w", err)
	}
	return os.WriteFile(rc.configFile(), data, 0o644)
}

// Add moves cfg to the front of the list, removing an equal earlier entry
func (rc *RecentConfigs) Add(cfg models.WallConfig) error {
	if rc.configs == nil {
		if _, err := rc.Load(); err != nil {
			rc.configs = []models.WallConfig{}
		}
	}

	next := make([]models.WallConfig, 0, len(rc.configs)+1)
	next = append(next, cfg)
	for _, c := range rc.configs {
		if c != cfg {
			next = append(next, c)
		}
	}
	return rc.Save(next)
}

// List returns the current list, loading it on first use
func (rc *RecentConfigs) List() []models.WallConfig {
	if rc.configs == nil {
		rc.Load()
	}
	return rc.configs
}

// Latest returns the most recent configuration, if any
func (rc *RecentConfigs) Latest() (models.WallConfig, bool) {
	list := rc.List()
	if len(list) == 0 {
		return models.WallConfig{}, false
	}
	return list[0], true
}
