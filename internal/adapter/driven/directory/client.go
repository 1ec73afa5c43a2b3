// Package directory implements the Directory port against the legacy
// employee-finder HTTP endpoint.
package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/prherald/prherald/internal/domain/model"
	"github.com/prherald/prherald/internal/domain/port/driven"
	heralderrors "github.com/prherald/prherald/internal/errors"
)

// Compile-time interface satisfaction check.
var _ driven.Directory = (*Client)(nil)

// rowPattern matches one result row of the finder's HTML table. The endpoint
// has no machine-readable surface; the name sits in the first cell and the
// mail address in the last. Any markup change here breaks the lookup.
var rowPattern = regexp.MustCompile(`^<tr><td>(?P<name>.*?)</td>.*<td>(?P<email>.*?)</td></tr>$`)

// Client implements the driven.Directory port by scraping the finder's
// mini search page.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a directory client for the given base URL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(&http.Client{Timeout: 10 * time.Second}, baseURL)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Lookup resolves login to a directory contact. When the result table holds
// several parseable rows, the last one wins.
func (c *Client) Lookup(ctx context.Context, login string) (model.Contact, error) {
	lookupURL := fmt.Sprintf("%s/mini.php?q=%s", c.baseURL, url.QueryEscape(login))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return model.Contact{}, fmt.Errorf("building directory request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Contact{}, fmt.Errorf("querying directory for %s: %w", login, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Contact{}, fmt.Errorf("directory returned status %d for %s", resp.StatusCode, login)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Contact{}, fmt.Errorf("reading directory response: %w", err)
	}

	contact, found := parseContact(string(body))
	if !found {
		return model.Contact{}, fmt.Errorf("directory has no entry for %s: %w", login, heralderrors.ErrContactNotFound)
	}

	return contact, nil
}

// parseContact scans the response line by line for table rows.
func parseContact(body string) (model.Contact, bool) {
	var contact model.Contact
	var found bool

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := rowPattern.FindStringSubmatch(line); m != nil {
			contact = model.Contact{Name: m[1], Email: m[2]}
			found = true
		}
	}

	return contact, found
}
