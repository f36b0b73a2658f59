package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

const (
	configDirName  = ".fiken"
	configFileName = "config.yml"
	envPrefix      = "FIKEN"
)

// Config is the CLI configuration kept in ~/.fiken/config.yml. Every key can
// also be set through a FIKEN_ environment variable, e.g. FIKEN_API_TOKEN.
type Config struct {
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url" yaml:"base_url,omitempty"`
	Company string `json:"company,omitempty"  mapstructure:"company"  yaml:"company,omitempty"`
	Output  string `json:"output,omitempty"   mapstructure:"output"   yaml:"output,omitempty"`

	APIToken string `json:"api_token,omitempty" mapstructure:"api_token" yaml:"api_token,omitempty"`

	AccessToken    string     `json:"access_token,omitempty"     mapstructure:"access_token"     yaml:"access_token,omitempty"`
	RefreshToken   string     `json:"refresh_token,omitempty"    mapstructure:"refresh_token"    yaml:"refresh_token,omitempty"`
	ClientID       string     `json:"client_id,omitempty"        mapstructure:"client_id"        yaml:"client_id,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"    mapstructure:"client_secret"    yaml:"client_secret,omitempty"`
	TokenURL       string     `json:"token_url,omitempty"        mapstructure:"token_url"        yaml:"token_url,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" mapstructure:"token_expires_at" yaml:"token_expires_at,omitempty"`
	LastRefreshed  *time.Time `json:"last_refreshed,omitempty"   mapstructure:"last_refreshed"   yaml:"last_refreshed,omitempty"`

	HTTPTimeout time.Duration `json:"http_timeout,omitempty" mapstructure:"http_timeout" yaml:"http_timeout,omitempty"`
	RetryMax    int           `json:"retry_max,omitempty"    mapstructure:"retry_max"    yaml:"retry_max,omitempty"`

	// TokenStore is a NATS URL. When set, OAuth2 tokens are shared through a
	// JetStream key/value bucket instead of this file.
	TokenStore       string `json:"token_store,omitempty"        mapstructure:"token_store"        yaml:"token_store,omitempty"`
	TokenStoreBucket string `json:"token_store_bucket,omitempty" mapstructure:"token_store_bucket" yaml:"token_store_bucket,omitempty"`

	Verbose bool `json:"-" mapstructure:"verbose" yaml:"-"`
}

// configKeys lists the keys that can be set with "config set", in the order
// "config show" prints them.
var configKeys = []string{
	"base_url", "company", "output", "api_token",
	"access_token", "refresh_token", "client_id", "client_secret", "token_url", "token_expires_at",
	"http_timeout", "retry_max", "token_store", "token_store_bucket",
}

var secretKeys = map[string]bool{
	"api_token": true, "access_token": true, "refresh_token": true, "client_secret": true,
}

// AddGlobalFlags registers the persistent flags and binds them to viper.
func AddGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.fiken/config.yml)")
	flags.String("base-url", "", "Fiken API root (default https://api.fiken.no/api/v2)")
	flags.StringP("token", "t", "", "personal API token")
	flags.String("company", "", "company slug")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("token-store", "", "NATS URL of a shared OAuth2 token store")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("api_token", flags.Lookup("token"))
	_ = viper.BindPFlag("company", flags.Lookup("company"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("token_store", flags.Lookup("token-store"))
}

// InitConfig points viper at the config file and the FIKEN_ environment.
func InitConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := configDirectory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, key := range configKeys {
		_ = viper.BindEnv(key)
	}

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func configDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// loadConfig decodes the merged viper settings into a Config.
func loadConfig() (*Config, error) {
	config := &Config{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}

	settings := viper.AllSettings()
	for key, value := range settings {
		if value == "" {
			delete(settings, key)
		}
	}

	err = decoder.Decode(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return config, nil
}

// saveConfig writes config to the file viper read, or to the default path.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configDir, err := configDirectory()
		if err != nil {
			return err
		}

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, configFileName)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// clientConfig maps the CLI configuration onto a library configuration.
func (c *Config) clientConfig(logger fiken.Logger) *fiken.Config {
	config := &fiken.Config{
		BaseURL:      c.BaseURL,
		APIToken:     c.APIToken,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		HTTPTimeout:  c.HTTPTimeout,
		RetryMax:     c.RetryMax,
		Debug:        c.Verbose,
		Logger:       logger,
	}

	if c.TokenExpiresAt != nil {
		config.TokenExpiresAt = *c.TokenExpiresAt
	}

	return config
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in ~/.fiken/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			masked := *config
			maskSecrets(&masked)

			return render(cmd.OutOrStdout(), masked, func(table *tablewriter.Table) {
				table.Header("Key", "Value")

				values := configValues(&masked)
				for _, key := range configKeys {
					if value := values[key]; value != "" {
						_ = table.Append(key, value)
					}
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// setConfigValue decodes value into the field tagged key, so that "30s" and
// RFC 3339 times are accepted just as in the config file.
func setConfigValue(config *Config, key, value string) error {
	if !isConfigKey(key) {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	if value == "" {
		clearField(config, key)

		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}

	err = decoder.Decode(map[string]interface{}{key: value})
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	return nil
}

func isConfigKey(key string) bool {
	for _, known := range configKeys {
		if known == key {
			return true
		}
	}

	return false
}

// clearField zeroes the field tagged key.
func clearField(config *Config, key string) {
	value := reflect.ValueOf(config).Elem()
	fields := value.Type()

	for i := range fields.NumField() {
		if fields.Field(i).Tag.Get("mapstructure") == key {
			field := value.Field(i)
			field.Set(reflect.Zero(field.Type()))

			return
		}
	}
}

// configValues renders the settable fields as strings keyed by name.
func configValues(config *Config) map[string]string {
	values := map[string]string{
		"base_url":           config.BaseURL,
		"company":            config.Company,
		"output":             config.Output,
		"api_token":          config.APIToken,
		"access_token":       config.AccessToken,
		"refresh_token":      config.RefreshToken,
		"client_id":          config.ClientID,
		"client_secret":      config.ClientSecret,
		"token_url":          config.TokenURL,
		"token_store":        config.TokenStore,
		"token_store_bucket": config.TokenStoreBucket,
	}

	if config.TokenExpiresAt != nil {
		values["token_expires_at"] = config.TokenExpiresAt.Format(time.RFC3339)
	}

	if config.HTTPTimeout > 0 {
		values["http_timeout"] = config.HTTPTimeout.String()
	}

	if config.RetryMax > 0 {
		values["retry_max"] = fmt.Sprint(config.RetryMax)
	}

	return values
}

func maskSecrets(config *Config) {
	value := reflect.ValueOf(config).Elem()
	fields := value.Type()

	for i := range fields.NumField() {
		if secretKeys[fields.Field(i).Tag.Get("mapstructure")] && value.Field(i).String() != "" {
			value.Field(i).SetString(Masked)
		}
	}
}
