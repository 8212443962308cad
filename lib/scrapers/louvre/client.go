package louvre

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"louvre-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://collections.louvre.fr"

// ArkPathPrefix is the path under which every artwork detail page lives.
// Appending ".json" to a detail path yields the structured payload instead
// of the rendered page.
const ArkPathPrefix = "/ark:/53355"

const SearchPath = "/recherche"

type FetchError struct {
	Url    string
	Status int
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Cause.Error())
	}
	return fmt.Sprintf("fetch %s: status %d", e.Url, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl when empty
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawBase := opts.BaseUrl
	if rawBase == "" {
		rawBase = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(rawBase)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(rawBase)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/louvre/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// DetailPath returns the site path of an artwork's detail page.
func DetailPath(id string) string {
	return ArkPathPrefix + "/" + id
}

// CanonicalUrl derives the fully qualified detail page URL for an
// artwork. It is always built from the configured base, never taken
// verbatim from scraped input.
func (c *Client) CanonicalUrl(id string) string {
	return c.BaseUrl.String() + DetailPath(id)
}

// FetchJson requests the structured payload at the given site path,
// appending the ".json" suffix when the path does not already carry one.
// Empty-valued query params are skipped. A transport failure or a
// non-2xx status surfaces as *FetchError; there are no retries.
func (c *Client) FetchJson(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}

	req := c.Http.R().SetContext(ctx)
	for k, v := range query {
		if v == "" {
			continue
		}
		req.SetQueryParam(k, v)
	}

	res, err := req.Get(path)
	if err != nil {
		return nil, &FetchError{Url: c.BaseUrl.String() + path, Cause: err}
	}
	if res.IsError() {
		return nil, &FetchError{Url: res.Request.URL, Status: res.StatusCode()}
	}
	return res.Body(), nil
}

// FetchHtml requests a rendered page, either by site path or by
// absolute URL, under the same error contract as FetchJson.
func (c *Client) FetchHtml(ctx context.Context, link string, query map[string]string) (string, error) {
	req := c.Http.R().SetContext(ctx)
	for k, v := range query {
		if v == "" {
			continue
		}
		req.SetQueryParam(k, v)
	}

	res, err := req.Get(link)
	if err != nil {
		return "", &FetchError{Url: link, Cause: err}
	}
	if res.IsError() {
		return "", &FetchError{Url: res.Request.URL, Status: res.StatusCode()}
	}
	return res.String(), nil
}
