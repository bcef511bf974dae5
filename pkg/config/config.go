package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultHubSpotAPIBase is the CRM API host used for owner lookups.
	DefaultHubSpotAPIBase = "https://api.hubapi.com"
	// DefaultOutreachSearchBase is prefixed to the contact email in the Outreach button.
	DefaultOutreachSearchBase = "https://app1c.outreach.io/prospects?sortBy=touchedAt&sortDirection=desc&search="
	DefaultPort               = "8080"
)

// ErrMissingConfig is returned by Validate when required values are absent.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds all application configuration values
type Config struct {
	APIKey              string
	PortalID            string
	WebhookURL          string
	SFDCHost            string
	AmplitudeSearchBase string
	OutreachSearchBase  string
	HubSpotAPIBase      string

	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		APIKey:              os.Getenv("HAPIKEY"),
		PortalID:            os.Getenv("hs_portal"),
		WebhookURL:          os.Getenv("hs_notifications_webhook"),
		SFDCHost:            os.Getenv("sfdc_url"),
		AmplitudeSearchBase: os.Getenv("amplitude_search"),
		OutreachSearchBase:  getenvDefault("outreach_search", DefaultOutreachSearchBase),
		HubSpotAPIBase:      getenvDefault("HUBSPOT_API_BASE", DefaultHubSpotAPIBase),
		Port:                getenvDefault("PORT", DefaultPort),
		GinMode:             os.Getenv("GIN_MODE"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		LogFormat:           os.Getenv("LOG_FORMAT"),
	}
}

// Validate reports every required option that is empty.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"HAPIKEY", c.APIKey},
		{"hs_portal", c.PortalID},
		{"hs_notifications_webhook", c.WebhookURL},
		{"sfdc_url", c.SFDCHost},
		{"amplitude_search", c.AmplitudeSearchBase},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
