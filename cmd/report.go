package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/privacycheck/privacycheck-cli/internal/audit"
	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
	sharederrors "github.com/privacycheck/privacycheck-cli/internal/shared/errors"
)

var reportCmd = &cobra.Command{
	Use:   "report <result-file>",
	Short: "Render a saved audit result as markdown or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format = strings.ToLower(strings.TrimSpace(format))
		if format != "md" && format != "pdf" {
			return fmt.Errorf("%w: %q (use md or pdf)", sharederrors.ErrUnsupportedFormat, format)
		}

		result, err := loadResult(args[0])
		if err != nil {
			return err
		}

		if output == "" {
			output = strings.TrimSuffix(args[0], ".json") + "." + format
		}
		if output == args[0] {
			return sharederrors.ErrMissingReportOutput
		}

		var content []byte
		switch format {
		case "md":
			content = []byte(generateMarkdownReport(result))
		case "pdf":
			content, err = generatePDFReportBytes(result)
			if err != nil {
				return fmt.Errorf("failed to generate PDF report: %w", err)
			}
		}

		if err := os.WriteFile(output, content, consts.DefaultFilePerm); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Printf("Report generated: %s\n", output)
		fmt.Printf("Format: %s\n", format)
		fmt.Printf("Score: %d/100 | Pages scanned: %d\n", result.Score, result.PagesScanned)
		return nil
	},
}

func loadResult(path string) (*audit.AuditResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", sharederrors.ErrResultNotFound, path)
		}
		return nil, err
	}

	var result audit.AuditResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrMalformedResultFile, err)
	}
	if result.Domain == "" {
		return nil, fmt.Errorf("%w: missing domain", sharederrors.ErrMalformedResultFile)
	}
	return &result, nil
}

func generateMarkdownReport(result *audit.AuditResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Privacy Compliance Report: %s\n\n", result.Domain)
	fmt.Fprintf(&b, "- Scan ID: %s\n", result.ScanID)
	fmt.Fprintf(&b, "- URL: %s\n", result.URL)
	fmt.Fprintf(&b, "- Scanned: %s\n", result.Timestamp.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "- Tier: %s\n", result.Tier)
	fmt.Fprintf(&b, "- Regulations: %s\n\n", strings.Join(result.Regulations, ", "))

	fmt.Fprintf(&b, "## Score: %d/100\n\n", result.Score)
	b.WriteString("| Check | Points | Result |\n|---|---|---|\n")
	for _, entry := range result.ScoreBreakdown {
		status := "fail"
		if entry.Passed {
			status = "pass"
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", entry.Item, entry.Points, status)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Cookies (%d found, %d undeclared)\n\n", result.Cookies.Count, result.Cookies.Undeclared)
	for _, c := range result.Cookies.List {
		fmt.Fprintf(&b, "- `%s` (%s, %s)\n", c.Name, c.Category, c.Provider)
	}
	b.WriteString("\n")

	if len(result.Trackers) > 0 {
		fmt.Fprintf(&b, "## Trackers (%d)\n\n", len(result.Trackers))
		for _, t := range result.Trackers {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	if len(result.ExposedEmails) > 0 {
		fmt.Fprintf(&b, "## Exposed Email Addresses (%d)\n\n", len(result.ExposedEmails))
		for _, e := range result.ExposedEmails {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	if len(result.Breaches) > 0 {
		fmt.Fprintf(&b, "## Known Data Breaches (%d)\n\n", len(result.Breaches))
		for _, br := range result.Breaches {
			fmt.Fprintf(&b, "- %s (%s): %d accounts\n", br.Name, br.BreachDate, br.PwnCount)
		}
		b.WriteString("\n")
	}

	if result.RiskPrediction != nil {
		b.WriteString("## Risk Prediction\n\n")
		fmt.Fprintf(&b, "- Level: %s\n", result.RiskPrediction.RiskLevel)
		fmt.Fprintf(&b, "- Estimated fine exposure: EUR %d - %d\n", result.RiskPrediction.MinFine, result.RiskPrediction.MaxFine)
		fmt.Fprintf(&b, "- Enforcement probability: %d%%\n", result.RiskPrediction.Probability)
		fmt.Fprintf(&b, "- Recommendation: %s\n\n", result.RiskPrediction.Recommendation)
	}

	return b.String()
}

func generatePDFReportBytes(result *audit.AuditResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Privacy Compliance Report: %s", result.Domain), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Scan ID: %s", result.ScanID), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("URL: %s", result.URL), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Scanned: %s", result.Timestamp.Format("2006-01-02 15:04 UTC")), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tier: %s | Pages scanned: %d", result.Tier, result.PagesScanned), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Regulations: %s", strings.Join(result.Regulations, ", ")), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Score section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Compliance Score: %d/100", result.Score), "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, entry := range result.ScoreBreakdown {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		status := "FAIL"
		if entry.Passed {
			status = "PASS"
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s (%d)", status, entry.Item, entry.Points), "", 1, "", false, 0, "")
	}
	pdf.Ln(5)

	// Cookies section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Cookies: %d found, %d undeclared", result.Cookies.Count, result.Cookies.Undeclared), "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	for _, c := range result.Cookies.List {
		if pdf.GetY() > 270 {
			pdf.AddPage()
		}
		pdf.MultiCell(0, 4, fmt.Sprintf("  %s (%s, %s) - %s", c.Name, c.Category, c.Provider, c.Description), "", "", false)
	}
	pdf.Ln(3)

	// Trackers section
	if len(result.Trackers) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Third-Party Trackers (%d)", len(result.Trackers)), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, t := range result.Trackers {
			pdf.CellFormat(0, 5, "  "+t, "", 1, "", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Breaches section
	if len(result.Breaches) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Known Data Breaches (%d)", len(result.Breaches)), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, br := range result.Breaches {
			pdf.CellFormat(0, 5, fmt.Sprintf("  %s (%s): %d accounts", br.Name, br.BreachDate, br.PwnCount), "", 1, "", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Risk section
	if result.RiskPrediction != nil {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Risk Prediction", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Level: %s | Probability: %d%%", result.RiskPrediction.RiskLevel, result.RiskPrediction.Probability), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Estimated fine exposure: EUR %d - %d", result.RiskPrediction.MinFine, result.RiskPrediction.MaxFine), "", 1, "", false, 0, "")
		pdf.MultiCell(0, 5, "Recommendation: "+result.RiskPrediction.Recommendation, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	reportCmd.Flags().String("format", "md", "Output format: md|pdf")
	reportCmd.Flags().String("output", "", "Output path (defaults next to the result file)")
}
