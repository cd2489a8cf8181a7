// internal/support/config.go
package support

import (
	"time"

	"bank-support/internal/chain"
	"bank-support/internal/common/config"
)

type Config struct {
	EmailEnabled         bool
	FromEmail            string
	EscalationEnabled    bool
	EscalationTopicARN   string
	EscalationCategories []chain.Category
	Timeout              time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}

// FromAppConfig maps the application configuration onto the handler config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	c.EmailEnabled = cfg.Notifications.Email.Enabled
	c.FromEmail = cfg.Notifications.Email.FromEmail
	c.EscalationEnabled = cfg.Notifications.Escalation.Enabled
	c.EscalationTopicARN = cfg.Notifications.Escalation.TopicARN
	for _, name := range cfg.Notifications.Escalation.Categories {
		c.EscalationCategories = append(c.EscalationCategories, chain.Category(name))
	}
	return c
}
