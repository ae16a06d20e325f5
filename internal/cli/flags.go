package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/adapters"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/app"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/core"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/policies"
)

// serviceOptions holds the run-wide flags shared by every subcommand.
type serviceOptions struct {
	Output         string
	Store          bool
	CacheDir       string
	BaseURL        string
	RequestDelayMs int
	HTTPTimeoutSec int
	MaxMergeHops   int
	Dataset        string
}

func (o *serviceOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.Output, "output", "o", "", "Append record lines to this file instead of stdout")
	flags.BoolVarP(&o.Store, "store", "s", false, "Save fetched pages into the cache directory")
	flags.StringVar(&o.CacheDir, "cache-dir", ".", "Directory holding cached pages named by identifier")
	flags.StringVar(&o.BaseURL, "base-url", adapters.DefaultSNPBaseURL, "dbSNP reference page base URL")
	flags.IntVar(&o.RequestDelayMs, "request-delay-ms", int(adapters.DefaultRequestDelay/time.Millisecond), "Pause before every network fetch")
	flags.IntVar(&o.HTTPTimeoutSec, "http-timeout-sec", 60, "HTTP request timeout")
	flags.IntVar(&o.MaxMergeHops, "max-merge-hops", core.DefaultMaxMergeHops, "Merge hops followed before giving up")
	flags.StringVar(&o.Dataset, "dataset", policies.DefaultDatasetTag, "Dataset tag selecting frequency rows")

	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("store", flags.Lookup("store"))
	_ = viper.BindPFlag("cache_dir", flags.Lookup("cache-dir"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("request_delay_ms", flags.Lookup("request-delay-ms"))
	_ = viper.BindPFlag("http_timeout_sec", flags.Lookup("http-timeout-sec"))
	_ = viper.BindPFlag("max_merge_hops", flags.Lookup("max-merge-hops"))
	_ = viper.BindPFlag("dataset", flags.Lookup("dataset"))
}

func (o *serviceOptions) config(cmd *cobra.Command) app.Config {
	return app.Config{
		OutputPath:   resolveString(cmd, o.Output, "output", "output"),
		Store:        resolveBool(cmd, o.Store, "store", "store"),
		CacheDir:     resolveString(cmd, o.CacheDir, "cache_dir", "cache-dir"),
		BaseURL:      resolveString(cmd, o.BaseURL, "base_url", "base-url"),
		RequestDelay: time.Duration(resolveInt(cmd, o.RequestDelayMs, "request_delay_ms", "request-delay-ms")) * time.Millisecond,
		HTTPTimeout:  time.Duration(resolveInt(cmd, o.HTTPTimeoutSec, "http_timeout_sec", "http-timeout-sec")) * time.Second,
		MaxMergeHops: resolveInt(cmd, o.MaxMergeHops, "max_merge_hops", "max-merge-hops"),
		DatasetTag:   resolveString(cmd, o.Dataset, "dataset", "dataset"),
	}
}

func newAppService(cmd *cobra.Command, opts *serviceOptions) app.Service {
	return app.NewService(opts.config(cmd))
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
