package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/privacycheck/privacycheck-cli/internal/audit"
	"github.com/privacycheck/privacycheck-cli/internal/breach"
	"github.com/privacycheck/privacycheck-cli/internal/dnscheck"
	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
)

var auditCmd = &cobra.Command{
	Use:   "audit <url>",
	Short: "Run a privacy compliance audit against a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tierFlag, _ := cmd.Flags().GetString("tier")
		jsonOut, _ := cmd.Flags().GetBool("json")

		timeoutSecs := cliConfig.TimeoutSecs
		if cmd.Flags().Changed("timeout") {
			timeoutSecs, _ = cmd.Flags().GetInt("timeout")
		}
		rateLimit := cliConfig.RateLimit
		if cmd.Flags().Changed("rate") {
			rateLimit, _ = cmd.Flags().GetInt("rate")
		}

		tier, err := audit.ParseTier(tierFlag)
		if err != nil {
			return err
		}
		if timeoutSecs <= 0 {
			timeoutSecs = consts.DefaultOverallTimeoutSecs
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutSecs)*time.Second)
		defer cancel()

		engine := audit.NewEngine(logger)
		if rateLimit > 0 {
			engine.RateLimit = rateLimit
		}
		if resolver := viper.GetString("dns.resolver"); resolver != "" {
			engine.EmailAuth = dnscheck.NewChecker(resolver).Check
		}
		if endpoint := viper.GetString("breach.endpoint"); endpoint != "" {
			engine.Breaches = breach.NewChecker(endpoint).Check
		}

		start := time.Now()
		result, err := engine.Run(ctx, args[0], tier)
		duration := time.Since(start).Seconds()

		if err != nil {
			if target, perr := audit.ParseScanTarget(args[0]); perr == nil {
				_ = AppendScanRow(target.Domain, "", string(tier), 0, 0, duration, err.Error())
			}
			return err
		}

		resultPath, err := saveResult(result)
		if err != nil {
			return err
		}
		if _, err := HashFileSHA256(resultPath); err != nil {
			logger.Warnf("hash result file: %v", err)
		}
		if err := AppendScanRow(result.Domain, result.ScanID, string(tier), result.Score, result.PagesScanned, duration, ""); err != nil {
			logger.Warnf("append scan log: %v", err)
		}

		if jsonOut {
			payload, err := json.MarshalIndent(result, jsonPrefix, jsonIndent)
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		}

		printAuditSummary(result, resultPath, duration)
		return nil
	},
}

func saveResult(result *audit.AuditResult) (string, error) {
	dir := filepath.Join(resultsDir, result.Domain)
	if err := os.MkdirAll(dir, consts.DefaultDirPerm); err != nil {
		return "", fmt.Errorf("create results subdir failed: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("scan_%s.json", result.ScanID))
	data, err := json.MarshalIndent(result, jsonPrefix, jsonIndent)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, consts.DefaultFilePerm); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}

func printAuditSummary(result *audit.AuditResult, resultPath string, durationSeconds float64) {
	fmt.Printf("%s %s\n", colorInfo("Privacy Audit:"), result.URL)
	fmt.Printf("Score: %s/100 | Pages: %d | Cookies: %d | Trackers: %d | Duration: %.1fs\n",
		formatScoreWithColor(result.Score),
		result.PagesScanned,
		result.Cookies.Count,
		len(result.Trackers),
		durationSeconds,
	)
	fmt.Printf("Regulations: %s\n", strings.Join(result.Regulations, ", "))
	if len(result.Breaches) > 0 {
		fmt.Printf("%s %d known breach(es) affect this domain\n", colorError("!"), len(result.Breaches))
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tPOINTS\tRESULT")
	for _, entry := range result.ScoreBreakdown {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", entry.Item, entry.Points, formatPassWithColor(entry.Passed))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush breakdown table: %v\n", err)
	}

	if result.RiskPrediction != nil {
		fmt.Println()
		fmt.Printf("Risk: %s | Estimated fine exposure: EUR %d - %d | Enforcement probability: %d%%\n",
			colorWarn(result.RiskPrediction.RiskLevel),
			result.RiskPrediction.MinFine,
			result.RiskPrediction.MaxFine,
			result.RiskPrediction.Probability,
		)
	}

	fmt.Println()
	fmt.Printf("Result saved: %s\n", resultPath)
}

func init() {
	auditCmd.Flags().String("tier", "free", "Scan tier: free|pro|pro_plus")
	auditCmd.Flags().Bool("json", false, "Print the full result as JSON")
	auditCmd.Flags().Int("timeout", consts.DefaultOverallTimeoutSecs, "Overall audit timeout in seconds")
	auditCmd.Flags().Int("rate", consts.DefaultRateLimit, "Max page fetches per second")
}
