package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/privacycheck/privacycheck-cli/internal/audit"
	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
)

const defaultReportFormat = "md"

// ScanConfig carries runtime settings shared across commands, merged from
// config-file defaults and flags. Flags set explicitly on the command line
// always win over config-file values.
type ScanConfig struct {
	Tier         string
	TimeoutSecs  int
	RateLimit    int
	ReportFormat string
}

type defaultOverrides struct {
	Tier         string
	TimeoutSecs  *int
	RateLimit    *int
	ReportFormat string
}

var cliConfig = newScanConfig()

func newScanConfig() *ScanConfig {
	return &ScanConfig{
		Tier:         string(audit.TierFree),
		TimeoutSecs:  consts.DefaultOverallTimeoutSecs,
		RateLimit:    consts.DefaultRateLimit,
		ReportFormat: defaultReportFormat,
	}
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.tier") {
		overrides.Tier = viper.GetString("defaults.tier")
	}

	if viper.IsSet("defaults.timeout_secs") {
		val := viper.GetInt("defaults.timeout_secs")
		overrides.TimeoutSecs = &val
	}

	if viper.IsSet("defaults.rate_limit") {
		val := viper.GetInt("defaults.rate_limit")
		overrides.RateLimit = &val
	}

	if viper.IsSet("defaults.report_format") {
		overrides.ReportFormat = viper.GetString("defaults.report_format")
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config when
// the user did not explicitly override the corresponding flag.
func applyConfigDefaults() {
	overrides := loadDefaultOverrides()

	if overrides.Tier != "" {
		if _, err := audit.ParseTier(overrides.Tier); err == nil {
			cliConfig.Tier = overrides.Tier
			setStringFlagIfUnset(auditCmd.Flags(), "tier", overrides.Tier)
		}
	}

	if overrides.TimeoutSecs != nil {
		applyIntDefault(auditCmd.Flags(), "timeout", *overrides.TimeoutSecs, func(v int) {
			cliConfig.TimeoutSecs = v
		})
	}

	if overrides.RateLimit != nil {
		applyIntDefault(auditCmd.Flags(), "rate", *overrides.RateLimit, func(v int) {
			cliConfig.RateLimit = v
		})
	}

	if overrides.ReportFormat != "" {
		cliConfig.ReportFormat = overrides.ReportFormat
		setStringFlagIfUnset(reportCmd.Flags(), "format", overrides.ReportFormat)
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}
