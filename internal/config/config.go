package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. AUCTION_PORT
const EnvPrefix = "AUCTION"

var ErrInvalidConfig = errors.New("invalid config")

// Flag describes a configuration flag
type Flag struct {
	Name        string
	DefValue    any
	Description string
	Repeatable  bool
}

// Flags is the daemon's flag table
var Flags = []Flag{
	{Name: "port", DefValue: "8080", Description: "HTTP listen port"},
	{Name: "product", DefValue: "Golden watch", Description: "Product descriptor of the listing"},
	{Name: "seller", DefValue: "", Description: "Identity of the listing creator"},
	{Name: "token-decimals", DefValue: 12, Description: "Decimals used to display amounts"},
	{Name: "rate-limit-rps", DefValue: 20, Description: "Requests per second allowed per caller (0 disables)"},
	{Name: "rate-limit-burst", DefValue: 40, Description: "Burst size per caller"},
	{Name: "events-capacity", DefValue: 256, Description: "Number of notifications kept for GET /events"},
	{Name: "blocked-recipients", DefValue: "", Description: "Identities whose payouts are refused for the life of the process (their withdrawals keep failing with PayoutFailed)", Repeatable: true},
	{Name: "log-level", DefValue: "info", Description: "Log level (debug, info, warn, error)"},
	{Name: "log-json", DefValue: true, Description: "Enable JSON logging"},
	{Name: "metrics", DefValue: true, Description: "Expose prometheus metrics on /metrics"},
}

// Config is the resolved daemon configuration
type Config struct {
	Port              string   `json:"port"`
	Product           string   `json:"product"`
	Seller            string   `json:"seller"`
	TokenDecimals     int      `json:"token_decimals"`
	RateLimitRPS      int      `json:"rate_limit_rps"`
	RateLimitBurst    int      `json:"rate_limit_burst"`
	EventsCapacity    int      `json:"events_capacity"`
	BlockedRecipients []string `json:"blocked_recipients"`
	LogLevel          string   `json:"log_level"`
	LogJSON           bool     `json:"log_json"`
	Metrics           bool     `json:"metrics"`
}

// ConfigureCLI registers the flag table on cmd and binds it, plus env vars, into v
func ConfigureCLI(v *viper.Viper, flags []Flag, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for _, flag := range flags {
		switch defval := flag.DefValue.(type) {
		case string:
			if flag.Repeatable {
				var def []string
				if defval != "" {
					def = []string{defval}
				}
				cmd.Flags().StringSlice(flag.Name, def, flag.Description)
			} else {
				cmd.Flags().String(flag.Name, defval, flag.Description)
			}
		case bool:
			cmd.Flags().Bool(flag.Name, defval, flag.Description)
		case int:
			cmd.Flags().Int(flag.Name, defval, flag.Description)
		default:
			return fmt.Errorf("flag %s: unknown flag type %T", flag.Name, flag.DefValue)
		}
		v.SetDefault(flag.Name, flag.DefValue)
		if err := v.BindPFlag(flag.Name, cmd.Flags().Lookup(flag.Name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

// Load reads the configuration out of v and validates it
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:              v.GetString("port"),
		Product:           v.GetString("product"),
		Seller:            strings.TrimSpace(v.GetString("seller")),
		TokenDecimals:     v.GetInt("token-decimals"),
		RateLimitRPS:      v.GetInt("rate-limit-rps"),
		RateLimitBurst:    v.GetInt("rate-limit-burst"),
		EventsCapacity:    v.GetInt("events-capacity"),
		BlockedRecipients: parseStringSlice(v, "blocked-recipients"),
		LogLevel:          v.GetString("log-level"),
		LogJSON:           v.GetBool("log-json"),
		Metrics:           v.GetBool("metrics"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can start a daemon
func (c Config) Validate() error {
	switch {
	case c.Seller == "":
		return fmt.Errorf("%w: seller identity is required", ErrInvalidConfig)
	case c.Port == "":
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	case c.TokenDecimals < 0:
		return fmt.Errorf("%w: token-decimals must not be negative", ErrInvalidConfig)
	case c.EventsCapacity <= 0:
		return fmt.Errorf("%w: events-capacity must be positive", ErrInvalidConfig)
	case c.RateLimitRPS < 0 || c.RateLimitBurst < 0:
		return fmt.Errorf("%w: rate limits must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Addr returns the listen address for the configured port
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// parseStringSlice accepts both repeated flags and comma separated env values
func parseStringSlice(v *viper.Viper, key string) []string {
	var vals []string
	for _, val := range v.GetStringSlice(key) {
		for _, part := range strings.Split(val, ",") {
			if part = strings.TrimSpace(part); part != "" {
				vals = append(vals, part)
			}
		}
	}
	return vals
}
