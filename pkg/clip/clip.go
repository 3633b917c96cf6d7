// Package clip turns a web page into journal-ready text: title plus the
// main content, markup stripped.
package clip

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrDomainNotAllowed   = errors.New("domain not allowed")
	ErrUnsupportedContent = errors.New("unsupported content type")
	ErrPageTooLarge       = errors.New("page too large")
)

type Clipper struct {
	client   *http.Client
	allow    map[string]bool // empty means allow all
	maxBytes int
}

func New(allowedDomains string, maxBytes int) *Clipper {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &Clipper{
		client:   &http.Client{Timeout: 20 * time.Second},
		allow:    allow,
		maxBytes: maxBytes,
	}
}

func (cl *Clipper) Clip(rawURL string) (title, content string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", "", errors.New("bad url")
	}
	if len(cl.allow) > 0 && !cl.allow[strings.ToLower(u.Host)] {
		return "", "", ErrDomainNotAllowed
	}

	resp, err := cl.client.Get(rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(cl.maxBytes) {
		return "", "", ErrPageTooLarge
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(cl.maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/plain"):
		text := string(b)
		return guessTitleFromText(text), text, nil
	case strings.Contains(ct, "text/html"):
		return ExtractMainText(strings.NewReader(string(b)))
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedContent, ct)
	}
}

// ExtractMainText pulls the page title and the text of main/article headers,
// paragraphs and list items; the whole document is the fallback scope.
func ExtractMainText(r io.Reader) (title, content string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return title, cleanWhitespace(strings.Join(parts, "\n")), nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
