package cmd

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// scan log header fields:
var scanLogHeader = []string{
	"timestamp",
	"scan_id",
	"domain",
	"tier",
	"score",
	"pages_scanned",
	"duration_seconds",
	"error",
}

// AppendScanRow appends a single scan row to results/<domain>/scans.csv
func AppendScanRow(domain, scanID, tier string, score, pagesScanned int, durationSeconds float64, errMsg string) error {
	// ensure domain-specific directory under resultsDir
	dir := filepath.Join(resultsDir, domain)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create results subdir failed: %w", err)
	}

	logPath := filepath.Join(dir, "scans.csv")
	// check if file exists
	exists := true
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		exists = false
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open scan log failed: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// if new file, write header first
	if !exists {
		_ = writer.Write(scanLogHeader)
		writer.Flush()
	}

	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		scanID,
		domain,
		tier,
		fmt.Sprintf("%d", score),
		fmt.Sprintf("%d", pagesScanned),
		fmt.Sprintf("%.3f", durationSeconds),
		errMsg,
	}

	_ = writer.Write(row)
	writer.Flush()

	return writer.Error()
}

// HashFileSHA256 computes and writes a .sha256 companion file
func HashFileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	sum := hex.EncodeToString(h.Sum(nil))
	hashPath := path + ".sha256"
	content := fmt.Sprintf("%s  %s\n", sum, filepath.Base(path))
	if err := os.WriteFile(hashPath, []byte(content), 0o644); err != nil {
		return "", err
	}
	return sum, nil
}
