package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// FetchTimeout bounds a single page fetch so one slow page cannot stall
	// a whole crawl wave.
	FetchTimeout = 15 * time.Second
	// MaxBodyBytes caps how much of a response body is read per page.
	MaxBodyBytes = 2 * 1024 * 1024
	// LookupTimeout bounds a single DNS-over-HTTPS lookup.
	LookupTimeout = 8 * time.Second
	// DefaultOverallTimeoutSecs is the default wall-clock budget for a full
	// scan, in seconds. High-tier scans can cover up to 1000 pages.
	DefaultOverallTimeoutSecs = 300
	// DefaultRateLimit is the default number of page fetches per second.
	DefaultRateLimit = 20
)

// UserAgent is sent on every page fetch so responses match what a real
// browser would receive.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36 PrivacyCheck/1.0"
