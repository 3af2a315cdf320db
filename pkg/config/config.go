package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/vantage"
	ConfigFileName    = "vantage.yml"
)

// Config holds all Vantage configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// TokenTTLSeconds is the lifetime of issued authorization tokens
	TokenTTLSeconds int `yaml:"token_ttl" json:"token_ttl"`

	// CacheTTLSeconds is the TTL for the feature/summary cache
	CacheTTLSeconds int `yaml:"cache_ttl" json:"cache_ttl"`

	// AnomalyThreshold is the default z-score threshold for spend anomalies
	AnomalyThreshold float64 `yaml:"anomaly_threshold" json:"anomaly_threshold"`

	// SimulationIterationMax caps Monte Carlo iteration counts
	SimulationIterationMax int `yaml:"simulation_iteration_max" json:"simulation_iteration_max"`

	// AssistURL is the base URL of the OpenAI-compatible chat endpoint
	AssistURL string `yaml:"assist_url" json:"assist_url"`

	// AssistModel is the model name sent with assist chat requests
	AssistModel string `yaml:"assist_model" json:"assist_model"`

	// RedisURL enables the Redis cache backend when set
	RedisURL string `yaml:"redis_url" json:"redis_url"`

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

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies:         []string{},
		APIListLimitMax:        1000,
		TokenTTLSeconds:        28800,
		CacheTTLSeconds:        60,
		AnomalyThreshold:       2.5,
		SimulationIterationMax: 100000,
		sources:                make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("VANTAGE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_list_limit_max", "token_ttl", "cache_ttl",
		"anomaly_threshold", "simulation_iteration_max",
		"assist_url", "assist_model", "redis_url",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.TokenTTLSeconds != 0 {
		c.TokenTTLSeconds = file.TokenTTLSeconds
		c.sources["token_ttl"] = "file"
	}
	if file.CacheTTLSeconds != 0 {
		c.CacheTTLSeconds = file.CacheTTLSeconds
		c.sources["cache_ttl"] = "file"
	}
	if file.AnomalyThreshold != 0 {
		c.AnomalyThreshold = file.AnomalyThreshold
		c.sources["anomaly_threshold"] = "file"
	}
	if file.SimulationIterationMax != 0 {
		c.SimulationIterationMax = file.SimulationIterationMax
		c.sources["simulation_iteration_max"] = "file"
	}
	if file.AssistURL != "" {
		c.AssistURL = file.AssistURL
		c.sources["assist_url"] = "file"
	}
	if file.AssistModel != "" {
		c.AssistModel = file.AssistModel
		c.sources["assist_model"] = "file"
	}
	if file.RedisURL != "" {
		c.RedisURL = file.RedisURL
		c.sources["redis_url"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("VANTAGE_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("VANTAGE_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("VANTAGE_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLSeconds = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("VANTAGE_CACHE_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.CacheTTLSeconds = i
			c.sources["cache_ttl"] = "environment"
		}
	}
	if val := os.Getenv("VANTAGE_ANOMALY_THRESHOLD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.AnomalyThreshold = f
			c.sources["anomaly_threshold"] = "environment"
		}
	}
	if val := os.Getenv("VANTAGE_SIMULATION_ITERATION_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SimulationIterationMax = i
			c.sources["simulation_iteration_max"] = "environment"
		}
	}
	if val := os.Getenv("VANTAGE_ASSIST_URL"); val != "" {
		c.AssistURL = val
		c.sources["assist_url"] = "environment"
	}
	if val := os.Getenv("VANTAGE_ASSIST_MODEL"); val != "" {
		c.AssistModel = val
		c.sources["assist_model"] = "environment"
	}
	if val := os.Getenv("VANTAGE_REDIS_URL"); val != "" {
		c.RedisURL = val
		c.sources["redis_url"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the token TTL as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// CacheTTL returns the cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.TokenTTLSeconds < 0 {
		return fmt.Errorf("token_ttl must not be negative: %d", c.TokenTTLSeconds)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl must not be negative: %d", c.CacheTTLSeconds)
	}
	if c.AnomalyThreshold < 0 {
		return fmt.Errorf("anomaly_threshold must not be negative: %g", c.AnomalyThreshold)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTLSeconds), Source: c.Source("token_ttl")},
		{Name: "cache_ttl", Value: strconv.Itoa(c.CacheTTLSeconds), Source: c.Source("cache_ttl")},
		{Name: "anomaly_threshold", Value: strconv.FormatFloat(c.AnomalyThreshold, 'g', -1, 64), Source: c.Source("anomaly_threshold")},
		{Name: "simulation_iteration_max", Value: strconv.Itoa(c.SimulationIterationMax), Source: c.Source("simulation_iteration_max")},
		{Name: "assist_url", Value: c.AssistURL, Source: c.Source("assist_url")},
		{Name: "assist_model", Value: c.AssistModel, Source: c.Source("assist_model")},
		{Name: "redis_url", Value: c.RedisURL, Source: c.Source("redis_url")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
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

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
