package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/egeria/config"
	ConfigFileName    = "egeria.yml"

	// DefaultTargetName names the catalog target built from DATABASE_URL
	DefaultTargetName = "default"
)

// CatalogTarget is a database the harvester keeps in sync
type CatalogTarget struct {
	Name        string `yaml:"name" json:"name"`
	DatabaseURL string `yaml:"database_url" json:"database_url"`
}

// HarvestConfig holds all settings of the harvester and CLI
type HarvestConfig struct {
	// PlatformURL is the root URL of the OMAG server platform
	PlatformURL string `yaml:"platform_url" json:"platform_url"`

	// ServerName is the metadata access server called on the platform
	ServerName string `yaml:"server_name" json:"server_name"`

	// UserID is the caller every request is made as
	UserID string `yaml:"user_id" json:"user_id"`

	// Password, when set, is exchanged for a bearer token
	Password string `yaml:"password" json:"-"`

	// ServiceURLMarker selects the service hosting the open metadata store
	ServiceURLMarker string `yaml:"service_url_marker" json:"service_url_marker"`

	// DatabaseURL is the default catalog target when CatalogTargets is empty
	DatabaseURL string `yaml:"database_url" json:"-"`

	// CatalogTargets are the databases harvested survey data is written to
	CatalogTargets []CatalogTarget `yaml:"catalog_targets" json:"catalog_targets"`

	PageSize    int `yaml:"page_size" json:"page_size"`
	MaxPageSize int `yaml:"max_page_size" json:"max_page_size"`

	// RefreshInterval is the time between harvest sweeps
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval"`

	// SurveyLogDir is where profile log files named by annotations are read from
	SurveyLogDir string `yaml:"survey_log_dir" json:"survey_log_dir"`

	RetryAttempts int    `yaml:"retry_attempts" json:"retry_attempts"`
	LogLevel      string `yaml:"log_level" json:"log_level"`

	// ListenAddress is where harvest serve exposes its status endpoints
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// RefreshSecret, when set, is the HMAC key bearer tokens for POST /refresh must be signed with
	RefreshSecret string `yaml:"refresh_secret" json:"-"`

	// AuditLog is where the audit trail is appended: a file path, "-" for
	// stdout, or empty to disable it
	AuditLog string `yaml:"audit_log" json:"audit_log"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *HarvestConfig {
	return &HarvestConfig{
		ServiceURLMarker: "asset-owner",
		CatalogTargets:   []CatalogTarget{},
		PageSize:         100,
		MaxPageSize:      1000,
		RefreshInterval:  time.Hour,
		RetryAttempts:    3,
		LogLevel:         "info",
		ListenAddress:    ":8080",
		sources:          make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*HarvestConfig, error) {
	configPath := os.Getenv("EGERIA_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return LoadFile(filepath.Join(configPath, ConfigFileName))
}

// LoadFile loads configuration from path, which need not exist, and the
// environment
func LoadFile(path string) (*HarvestConfig, error) {
	config := newDefault()
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}
	config.configFilePath = path

	if data, err := os.ReadFile(path); err == nil {
		var fileConfig HarvestConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		config.applyFileConfig(&fileConfig)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

func attributeNames() []string {
	return []string{
		"platform_url", "server_name", "user_id", "password",
		"service_url_marker", "database_url", "catalog_targets",
		"page_size", "max_page_size", "refresh_interval", "survey_log_dir",
		"retry_attempts", "log_level", "listen_address", "refresh_secret", "audit_log",
	}
}

func (c *HarvestConfig) applyFileConfig(file *HarvestConfig) {
	setString := func(name string, dst *string, v string) {
		if v != "" {
			*dst = v
			c.sources[name] = "file"
		}
	}
	setInt := func(name string, dst *int, v int) {
		if v != 0 {
			*dst = v
			c.sources[name] = "file"
		}
	}

	setString("platform_url", &c.PlatformURL, file.PlatformURL)
	setString("server_name", &c.ServerName, file.ServerName)
	setString("user_id", &c.UserID, file.UserID)
	setString("password", &c.Password, file.Password)
	setString("service_url_marker", &c.ServiceURLMarker, file.ServiceURLMarker)
	setString("database_url", &c.DatabaseURL, file.DatabaseURL)
	setString("survey_log_dir", &c.SurveyLogDir, file.SurveyLogDir)
	setString("log_level", &c.LogLevel, file.LogLevel)
	setString("listen_address", &c.ListenAddress, file.ListenAddress)
	setString("refresh_secret", &c.RefreshSecret, file.RefreshSecret)
	setString("audit_log", &c.AuditLog, file.AuditLog)
	setInt("page_size", &c.PageSize, file.PageSize)
	setInt("max_page_size", &c.MaxPageSize, file.MaxPageSize)
	setInt("retry_attempts", &c.RetryAttempts, file.RetryAttempts)

	if len(file.CatalogTargets) > 0 {
		c.CatalogTargets = file.CatalogTargets
		c.sources["catalog_targets"] = "file"
	}
	if file.RefreshInterval != 0 {
		c.RefreshInterval = file.RefreshInterval
		c.sources["refresh_interval"] = "file"
	}
}

func (c *HarvestConfig) applyEnvConfig() error {
	stringAttrs := map[string]*string{
		"platform_url":       &c.PlatformURL,
		"server_name":        &c.ServerName,
		"user_id":            &c.UserID,
		"password":           &c.Password,
		"service_url_marker": &c.ServiceURLMarker,
		"survey_log_dir":     &c.SurveyLogDir,
		"log_level":          &c.LogLevel,
		"listen_address":     &c.ListenAddress,
		"refresh_secret":     &c.RefreshSecret,
		"audit_log":          &c.AuditLog,
	}
	for name, dst := range stringAttrs {
		if val := os.Getenv(envName(name)); val != "" {
			*dst = val
			c.sources[name] = "environment"
		}
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}

	intAttrs := map[string]*int{
		"page_size":      &c.PageSize,
		"max_page_size":  &c.MaxPageSize,
		"retry_attempts": &c.RetryAttempts,
	}
	for name, dst := range intAttrs {
		val := os.Getenv(envName(name))
		if val == "" {
			continue
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: %q is not a number", envName(name), val)
		}
		*dst = i
		c.sources[name] = "environment"
	}

	if val := os.Getenv("EGERIA_REFRESH_INTERVAL"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid EGERIA_REFRESH_INTERVAL: %w", err)
		}
		c.RefreshInterval = d
		c.sources["refresh_interval"] = "environment"
	}
	return nil
}

func envName(attribute string) string {
	return "EGERIA_" + strings.ToUpper(attribute)
}

// ConfigFilePath returns the path to the config file
func (c *HarvestConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *HarvestConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Targets returns the catalog targets to harvest into. A bare DATABASE_URL
// yields a single target named "default".
func (c *HarvestConfig) Targets() []CatalogTarget {
	if len(c.CatalogTargets) > 0 {
		return c.CatalogTargets
	}
	if c.DatabaseURL != "" {
		return []CatalogTarget{{Name: DefaultTargetName, DatabaseURL: c.DatabaseURL}}
	}
	return nil
}

// Validate checks the settings needed to reach the platform
func (c *HarvestConfig) Validate() error {
	if c.PlatformURL == "" {
		return fmt.Errorf("platform_url is required")
	}
	u, err := url.Parse(c.PlatformURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid platform_url value: %s", c.PlatformURL)
	}
	if c.ServerName == "" {
		return fmt.Errorf("server_name is required")
	}
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("user_id is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid page_size value: %d", c.PageSize)
	}
	if c.MaxPageSize > 0 && c.PageSize > c.MaxPageSize {
		return fmt.Errorf("page_size %d exceeds max_page_size %d", c.PageSize, c.MaxPageSize)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("invalid retry_attempts value: %d", c.RetryAttempts)
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}
	return nil
}

// ValidateHarvest additionally checks the settings the harvester needs
func (c *HarvestConfig) ValidateHarvest() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("invalid refresh_interval value: %s", c.RefreshInterval)
	}
	targets := c.Targets()
	if len(targets) == 0 {
		return fmt.Errorf("no catalog targets: set catalog_targets or DATABASE_URL")
	}
	seen := make(map[string]bool)
	for _, t := range targets {
		if t.Name == "" {
			return fmt.Errorf("catalog target without a name")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate catalog target: %s", t.Name)
		}
		seen[t.Name] = true
		if t.DatabaseURL == "" {
			return fmt.Errorf("catalog target %s has no database_url", t.Name)
		}
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *HarvestConfig) Attributes() []Attribute {
	names := make([]string, 0, len(c.CatalogTargets))
	for _, t := range c.CatalogTargets {
		names = append(names, t.Name)
	}
	return []Attribute{
		{Name: "platform_url", Value: c.PlatformURL, Source: c.Source("platform_url")},
		{Name: "server_name", Value: c.ServerName, Source: c.Source("server_name")},
		{Name: "user_id", Value: c.UserID, Source: c.Source("user_id")},
		{Name: "password", Value: mask(c.Password), Source: c.Source("password")},
		{Name: "service_url_marker", Value: c.ServiceURLMarker, Source: c.Source("service_url_marker")},
		{Name: "database_url", Value: mask(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "catalog_targets", Value: strings.Join(names, ","), Source: c.Source("catalog_targets")},
		{Name: "page_size", Value: strconv.Itoa(c.PageSize), Source: c.Source("page_size")},
		{Name: "max_page_size", Value: strconv.Itoa(c.MaxPageSize), Source: c.Source("max_page_size")},
		{Name: "refresh_interval", Value: c.RefreshInterval.String(), Source: c.Source("refresh_interval")},
		{Name: "survey_log_dir", Value: c.SurveyLogDir, Source: c.Source("survey_log_dir")},
		{Name: "retry_attempts", Value: strconv.Itoa(c.RetryAttempts), Source: c.Source("retry_attempts")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "listen_address", Value: c.ListenAddress, Source: c.Source("listen_address")},
		{Name: "refresh_secret", Value: mask(c.RefreshSecret), Source: c.Source("refresh_secret")},
		{Name: "audit_log", Value: c.AuditLog, Source: c.Source("audit_log")},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// FormatText returns a text representation of the configuration
func (c *HarvestConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *HarvestConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
