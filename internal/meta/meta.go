// Package meta fetches page metadata for a URL. A fetch races a fixed
// timeout; when the timeout wins the caller gets a bare record with only the
// URL, never an error. The losing request is abandoned rather than
// cancelled, which can waste a connection but cannot corrupt state.
package meta

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultTimeout bounds a metadata fetch.
const DefaultTimeout = 5 * time.Second

// Metadata holds scraped page metadata for a URL.
type Metadata struct {
	URL         string
	Title       string
	Description string
}

// Fetcher retrieves metadata over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher creates a Fetcher with the given timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		timeout: timeout,
	}
}

// Fetch issues a GET for url raced against the fetcher's timeout and
// extracts a title from the response body. Timeouts, network failures and
// unparsable bodies all degrade to a bare Metadata with only the URL set.
// Non-2xx responses are still scanned for a title.
func (f *Fetcher) Fetch(url string) Metadata {
	type result struct {
		meta Metadata
		ok   bool
	}

	done := make(chan result, 1)
	go func() {
		meta, ok := f.fetch(url)
		done <- result{meta: meta, ok: ok}
	}()

	select {
	case r := <-done:
		if r.ok {
			return r.meta
		}
		return Metadata{URL: url}
	case <-time.After(f.timeout):
		// The in-flight request keeps running in the background; its
		// result is discarded.
		return Metadata{URL: url}
	}
}

func (f *Fetcher) fetch(url string) (Metadata, bool) {
	resp, err := f.client.Get(url)
	if err != nil {
		return Metadata{}, false
	}
	defer resp.Body.Close()

	meta := Metadata{URL: url}
	title, description := extract(resp)
	meta.Title = title
	meta.Description = description
	return meta, true
}

// extract parses the response body and returns the best available title and
// description. og:title beats the document title when both exist.
func extract(resp *http.Response) (title, description string) {
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", ""
	}

	var docTitle, ogTitle, ogDescription, metaDescription string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "title":
				if docTitle == "" {
					docTitle = textContent(n)
				}
			case "meta":
				property := strings.ToLower(attr(n, "property"))
				name := strings.ToLower(attr(n, "name"))
				content := attr(n, "content")
				switch {
				case property == "og:title" && ogTitle == "":
					ogTitle = strings.TrimSpace(content)
				case property == "og:description" && ogDescription == "":
					ogDescription = strings.TrimSpace(content)
				case name == "description" && metaDescription == "":
					metaDescription = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	title = ogTitle
	if title == "" {
		title = docTitle
	}
	description = ogDescription
	if description == "" {
		description = metaDescription
	}
	return title, description
}

// attr returns the value of an attribute, case-insensitive.
func attr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val
		}
	}
	return ""
}

// textContent returns the trimmed text content of a node.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}
