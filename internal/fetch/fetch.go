// Package fetch loads web pages for the browser and proxy panels and reduces
// them to terminal-friendly text.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
)

// Page is a fetched document reduced to text
type Page struct {
	URL    string
	Status int
	Title  string
	Lines  []string
	Links  []Link
}

// Link is an anchor found on the page, resolved against the page URL
type Link struct {
	Text string
	Href string
}

// Options configures a Client
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Retries   int
}

// Client fetches pages over HTTP
type Client struct {
	http      *resty.Client
	sanitizer *bluemonday.Policy
}

// New creates a Client
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "demonos/6.6.6"
	}

	r := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(250*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	return &Client{
		http:      r,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Get fetches target and extracts its title, text blocks and links
func (c *Client) Get(ctx context.Context, target string) (*Page, error) {
	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	status := resp.StatusCode()
	if status < 200 || status >= 400 {
		return nil, fmt.Errorf("HTTP %d from %s", status, target)
	}

	page, err := c.Parse(target, resp.String())
	if err != nil {
		return nil, err
	}
	page.Status = status
	return page, nil
}

// Parse reduces an HTML document to a Page
func (c *Client) Parse(pageURL, html string) (*Page, error) {
	raw, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	title := collapse(raw.Find("title").First().Text())
	if title == "" {
		title = base.Host
	}

	body, err := raw.Find("body").Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}
	clean, err := goquery.NewDocumentFromReader(strings.NewReader(c.sanitizer.Sanitize(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sanitized HTML: %w", err)
	}

	page := &Page{URL: pageURL, Title: title}
	clean.Find("h1, h2, h3, h4, h5, h6, p, li, pre, blockquote").Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are reported by their innermost element.
		if s.Find("p, li, pre, blockquote").Length() > 0 {
			return
		}
		text := collapse(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			text = "# " + text
		case "li":
			text = "• " + text
		case "blockquote":
			text = "> " + text
		}
		page.Lines = append(page.Lines, text)
	})

	seen := make(map[string]bool)
	clean.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if seen[abs] {
			return
		}
		seen[abs] = true
		page.Links = append(page.Links, Link{Text: collapse(s.Text()), Href: abs})
	})

	return page, nil
}

// Render formats the page as wrapped-ready text with numbered links
func (p *Page) Render() string {
	var b strings.Builder
	for _, line := range p.Lines {
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	if len(p.Links) > 0 {
		b.WriteString("Links:\n")
		for i, l := range p.Links {
			label := l.Text
			if label == "" {
				label = l.Href
			}
			fmt.Fprintf(&b, "[%d] %s  %s\n", i+1, label, l.Href)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
