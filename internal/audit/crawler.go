package audit

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/privacycheck/privacycheck-cli/internal/extract"
	sharederrors "github.com/privacycheck/privacycheck-cli/internal/shared/errors"
)

// PageRecord summarizes one successfully fetched page, in crawl order.
type PageRecord struct {
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	CookiesFound  int      `json:"cookiesFound"`
	TrackersFound []string `json:"trackersFound"`
}

// CrawlResult is everything the crawl accumulated for downstream analysis.
type CrawlResult struct {
	Pages         []PageRecord
	CombinedHTML  string
	Cookies       []extract.Cookie
	Trackers      []string
	MainHeaders   http.Header
	MainSetCookie string
	MainTLSValid  bool
}

// Crawler expands a frontier of same-origin links from the main page,
// fetching additional pages in bounded concurrent waves.
type Crawler struct {
	Fetcher   *Fetcher
	Limits    TierLimits
	RateLimit int
	Logger    *zap.SugaredLogger
}

// Crawl runs the seed/expand/finalize phases. The main page is always
// fetched first and its failure aborts the audit; every later fetch failure
// just drops that page. No URL is ever fetched twice.
func (c *Crawler) Crawl(ctx context.Context, target *ScanTarget) (*CrawlResult, error) {
	limiter := rate.NewLimiter(rate.Limit(c.RateLimit), c.RateLimit)

	result := &CrawlResult{
		Pages:    make([]PageRecord, 0, c.Limits.MaxPages),
		Cookies:  make([]extract.Cookie, 0),
		Trackers: make([]string, 0),
	}
	cookieNames := make(map[string]struct{})
	trackerNames := make(map[string]struct{})
	scanned := map[string]struct{}{target.URL.String(): {}}

	// Seed phase: the main page is mandatory.
	mainPage := c.Fetcher.Fetch(ctx, target.URL.String())
	if mainPage == nil {
		return nil, fmt.Errorf("%w: %s", sharederrors.ErrMainPageUnreachable, target.URL)
	}
	result.MainHeaders = mainPage.Headers
	result.MainSetCookie = mainPage.SetCookie
	result.MainTLSValid = mainPage.TLSValid

	accumulate := func(pageURL string, page *FetchedPage) {
		cookies := extract.ExtractCookies(page.HTML, page.SetCookie)
		trackers := extract.DetectTrackers(page.HTML)

		result.Pages = append(result.Pages, PageRecord{
			URL:           pageURL,
			Title:         extract.ExtractTitle(page.HTML),
			CookiesFound:  len(cookies),
			TrackersFound: trackers,
		})
		result.CombinedHTML += page.HTML

		for _, cookie := range cookies {
			if _, ok := cookieNames[cookie.Name]; ok {
				continue
			}
			cookieNames[cookie.Name] = struct{}{}
			result.Cookies = append(result.Cookies, cookie)
		}
		for _, tracker := range trackers {
			if _, ok := trackerNames[tracker]; ok {
				continue
			}
			trackerNames[tracker] = struct{}{}
			result.Trackers = append(result.Trackers, tracker)
		}
	}

	accumulate(target.URL.String(), mainPage)

	frontierCeiling := c.Limits.MaxExtraPages * 2
	frontier := make([]string, 0)
	inFrontier := make(map[string]struct{})

	expand := func(html string) {
		for _, link := range ExtractInternalLinks(html, target.URL) {
			if len(frontier) >= frontierCeiling {
				return
			}
			if _, ok := inFrontier[link]; ok {
				continue
			}
			if _, ok := scanned[link]; ok {
				continue
			}
			inFrontier[link] = struct{}{}
			frontier = append(frontier, link)
		}
	}

	expand(mainPage.HTML)

	// Expand phase: consume the frontier in waves. The frontier grows online
	// as fetched pages reveal new links, so the cursor chases a moving tail.
	cursor := 0
	for cursor < len(frontier) && len(result.Pages) < c.Limits.MaxPages {
		batchSize := c.Limits.BatchSize
		if remaining := c.Limits.MaxPages - len(result.Pages); remaining < batchSize {
			batchSize = remaining
		}
		if remaining := len(frontier) - cursor; remaining < batchSize {
			batchSize = remaining
		}

		batch := frontier[cursor : cursor+batchSize]
		cursor += batchSize

		for _, pageURL := range batch {
			scanned[pageURL] = struct{}{}
		}

		// Parallel dispatch, joined before the merge. Results keep batch
		// order so page accumulation stays deterministic.
		fetched := make([]*FetchedPage, len(batch))
		var wg sync.WaitGroup
		for i, pageURL := range batch {
			wg.Add(1)
			go func(i int, pageURL string) {
				defer wg.Done()
				_ = limiter.Wait(ctx)
				fetched[i] = c.Fetcher.Fetch(ctx, pageURL)
			}(i, pageURL)
		}
		wg.Wait()

		// Sequential merge between waves; the accumulators are never touched
		// while fetches are in flight.
		for i, page := range fetched {
			if page == nil {
				if c.Logger != nil {
					c.Logger.Debugf("page dropped: %s", batch[i])
				}
				continue
			}
			accumulate(batch[i], page)
			expand(page.HTML)
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", sharederrors.ErrAuditTimeout, err)
		}
	}

	return result, nil
}
