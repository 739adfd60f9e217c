package extractor

import (
	"fmt"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
)

// ProviderFactory is a function that creates an EntityExtractor from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.EntityExtractor, error)

// registry of extractor provider factories, populated explicitly via
// RegisterProvider at wiring time.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extractor provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewExtractor creates an EntityExtractor from a provider config using the
// registered factory.
func NewExtractor(cfg *config.ProviderConfig) (port.EntityExtractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extractor provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
