package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ankane/tableprobe/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envAliases lets the variable names used by existing Supabase setups work
// alongside the TABLEPROBE_ prefix.
var envAliases = map[string][]string{
	"url":   {"TABLEPROBE_URL", "SUPABASE_URL"},
	"key":   {"TABLEPROBE_KEY", "SUPABASE_KEY"},
	"table": {"TABLEPROBE_TABLE", "TABLE_NAME"},
}

// NewRootCmd builds the command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "tableprobe [table]",
		Short:         "Check that a hosted REST backend answers for a table",
		Long:          "Send one authenticated GET to {url}/rest/v1/{table}?select=* and explain the response",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfigFile(v); err != nil {
				return err
			}

			cfg := internal.Config{
				URL:        v.GetString("url"),
				Key:        v.GetString("key"),
				Table:      v.GetString("table"),
				Timeout:    v.GetDuration("timeout"),
				SampleSize: v.GetInt("sample-size"),
			}
			if len(args) > 0 {
				cfg.Table = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			format := v.GetString("format")
			newFormatter, found := internal.Formatters[format]
			if !found {
				return fmt.Errorf("formatter %q is not supported", format)
			}

			failOn, err := internal.ParseKinds(v.GetStringSlice("fail-on"))
			if err != nil {
				return err
			}

			logger, err := internal.NewLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
			if err != nil {
				return err
			}

			client, err := internal.NewHTTPClient()
			if err != nil {
				return err
			}

			result, err := internal.Main(cmd.Context(), cfg, client, newFormatter(cmd.OutOrStdout()), logger)
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			if failOn.Contains(result.Kind) {
				return fmt.Errorf("probe failed: %s", result.Kind)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Config file (yaml, toml or json)")
	flags.String("url", "", "Project URL")
	flags.String("key", "", "API key, sent as apikey and bearer token")
	flags.String("table", "", "Table to query")
	flags.Duration("timeout", internal.DefaultTimeout, "Request timeout (0 to wait forever)")
	flags.Int("sample-size", internal.DefaultSampleSize, "Rows to show on success")
	flags.String("format", "text", "Output format (text or json)")
	flags.StringSlice("fail-on", nil, "Failed outcomes that exit with status 1 (any, not_found, unauthorized, http_error, transport_error, timeout)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			panic(err)
		}
	}
	v.SetEnvPrefix("TABLEPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
