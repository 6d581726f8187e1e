package llm

import (
	"fmt"

	"github.com/Valdivia94x/app-legal-olea/internal/config"
)

// NewProvider creates the completion provider from config.
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("completion provider requires an API key")
	}
	return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
}
