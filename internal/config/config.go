package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"cardstack/internal/domain"
	"cardstack/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version      int          `toml:"version"`
	Pages        []string     `toml:"pages"`
	SelectedPage string       `toml:"selected_page"`
	Deck         DeckSettings `toml:"deck"`
}

// DeckSettings represents the card deck styling configuration
type DeckSettings struct {
	CornerRadius   int     `toml:"corner_radius"`
	ShowShadow     bool    `toml:"show_shadow"`
	EnableRotation bool    `toml:"enable_rotation"`
	ScaleStep      float64 `toml:"scale_step"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create cardstack config directory
	cardstackDir := filepath.Join(configDir, "cardstack")
	os.MkdirAll(cardstackDir, 0755)

	return &configService{
		filePath: filepath.Join(cardstackDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file left out
	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus == nil {
		return
	}
	pages := make([]domain.PageID, len(cfg.Pages))
	for i, p := range cfg.Pages {
		pages[i] = domain.PageID(p)
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{Pages: pages})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Pages:   []string{"Overview", "Activity", "Messages", "Settings", "About"},
		Deck: DeckSettings{
			CornerRadius:   1,
			ShowShadow:     true,
			EnableRotation: true,
			ScaleStep:      0.1,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if len(cfg.Pages) == 0 {
		cfg.Pages = def.Pages
	}
	if cfg.Deck.ScaleStep == 0 {
		cfg.Deck.ScaleStep = def.Deck.ScaleStep
	}
}
