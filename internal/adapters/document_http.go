package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/shared"
	"github.com/Hajin-Jeon/KRGDB-parser/internal/types"
)

const DefaultSNPBaseURL = "https://www.ncbi.nlm.nih.gov/snp/"

// NCBI asks clients without an API key to stay under 3 requests/second.
const DefaultRequestDelay = 340 * time.Millisecond

const defaultHTTPTimeout = 60 * time.Second
const defaultUserAgent = "krgdb-parser/1.0 (+https://github.com/Hajin-Jeon/KRGDB-parser)"
const maxDocumentBytes = 32 << 20

// DocumentHTTPAdapter fetches dbSNP pages. Every Fetch waits Delay first;
// failures are returned as-is and never retried.
type DocumentHTTPAdapter struct {
	BaseURL   string
	Delay     time.Duration
	UserAgent string
	Client    *http.Client
	Sleep     func(ctx context.Context, d time.Duration) error
}

func NewDocumentHTTPAdapter(baseURL string, delay time.Duration, timeout time.Duration) DocumentHTTPAdapter {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultSNPBaseURL
	}
	if delay < 0 {
		delay = DefaultRequestDelay
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return DocumentHTTPAdapter{
		BaseURL:   baseURL,
		Delay:     delay,
		UserAgent: defaultUserAgent,
		Client:    &http.Client{Timeout: timeout},
		Sleep:     sleepContext,
	}
}

func (a DocumentHTTPAdapter) Fetch(ctx context.Context, id types.Identifier) (types.RawDocument, error) {
	sleep := a.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	if err := sleep(ctx, a.Delay); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("request canceled").
			WithCause(err)
	}
	url := a.documentURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create request").
			WithCause(err)
	}
	if a.UserAgent != "" {
		req.Header.Set("User-Agent", a.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	log.Ctx(ctx).Debug().Str("id", id.String()).Str("url", url).Msg("fetching document")
	resp, err := client.Do(req)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		code := errbuilder.CodeInternal
		if resp.StatusCode == http.StatusNotFound {
			code = errbuilder.CodeNotFound
		}
		return "", errbuilder.New().
			WithCode(code).
			WithMsg("failed to fetch document").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read document body").
			WithCause(err)
	}
	return types.RawDocument(body), nil
}

func (a DocumentHTTPAdapter) documentURL(id types.Identifier) string {
	base := a.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + id.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ ports.DocumentFetcherPort = DocumentHTTPAdapter{}
