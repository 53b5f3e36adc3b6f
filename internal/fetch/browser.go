package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserTimeout bounds a headless-browser page load.
const BrowserTimeout = 60 * time.Second

// MinContentLength is the threshold below which a plain HTTP fetch is
// assumed to have hit a JS-rendered shell.
const MinContentLength = 500

// WithBrowser retrieves a salary-source page using a headless browser.
// Some aggregators render their tables client-side, so the plain fetch
// sees an empty shell; this path waits for the DOM to settle first.
func WithBrowser(ctx context.Context, urlStr string) (*Result, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, BrowserTimeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "browser fetch failed", Cause: err}
	}

	return &Result{
		URL:         urlStr,
		HTML:        html,
		ContentType: "text/html",
		StatusCode:  200,
	}, nil
}

// ShouldUseBrowser reports whether a fetched page looks too thin to be
// the real content and needs the browser fallback.
func ShouldUseBrowser(result *Result) bool {
	if result == nil {
		return true
	}
	body := strings.TrimSpace(result.HTML)
	if len(body) < MinContentLength {
		return true
	}
	// A shell page with no table rows is another JS-rendering tell.
	return !strings.Contains(body, "<td") && strings.Contains(body, "<script")
}

// Page fetches a URL, falling back to the headless browser when the
// plain response looks JS-rendered.
func Page(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	result, err := URL(ctx, urlStr, opts)
	if err == nil && !ShouldUseBrowser(result) {
		return result, nil
	}
	return WithBrowser(ctx, urlStr)
}
