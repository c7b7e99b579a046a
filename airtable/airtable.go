// Package airtable is the HTTP client for the park record store. It fetches
// park records (following the API's offset-based pagination) and patches the
// blog-tracking fields that keep the pipeline from generating a park twice.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// ErrStoreUnavailable wraps any transport, auth, or schema failure talking to
// the record store. Callers treat it as fatal for the current run.
var ErrStoreUnavailable = errors.New("record store unavailable")

var wikimediaURLPattern = regexp.MustCompile(`https://upload\.wikimedia\.org/[^\s\n]+`)

// Park is one record from the store plus its generation-tracking fields.
type Park struct {
	ID          string
	Name        string
	City        string
	State       string
	Description string
	Activities  []string
	Features    []string
	Images      []string

	// Position is the record's index in fetch order. The store keeps records
	// in a pre-shuffled order, so this doubles as a stable shuffle index.
	Position int

	BlogGenerated bool
	LastBlogDate  *time.Time
	BlogTopicUsed string
	BlogFileName  string
}

// Tracking holds the fields patched back after a successful generation.
type Tracking struct {
	Topic    string
	FileName string
}

// BlogStats summarizes generation progress across the table.
type BlogStats struct {
	TotalParks      int
	BloggedParks    int
	UnbloggedParks  int
	RecentlyBlogged int // last 30 days
	ProgressPercent int
}

// Client talks to one table of one base.
type Client struct {
	baseURL string
	token   string
	baseID  string
	table   string
	client  *http.Client
	verbose bool
	logger  *log.Logger
}

// New creates a Client. A nil http.Client gets a 60s-timeout default and a
// nil logger falls back to log.Default.
func New(token, baseID, table string, client *http.Client, verbose bool, logger *log.Logger) (*Client, error) {
	if token == "" || baseID == "" {
		return nil, errors.New("airtable token and base id are required")
	}
	if table == "" {
		table = "national-parks"
	}
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		baseID:  baseID,
		table:   table,
		client:  client,
		verbose: verbose,
		logger:  logger,
	}, nil
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

func (c *Client) infof(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	c.logger.Printf("[airtable] "+format, args...)
}

type listResponse struct {
	Records []rawRecord `json:"records"`
	Offset  string      `json:"offset"`
}

type rawRecord struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

// FetchAll returns every park in the table, following the offset continuation
// token until exhausted. Records keep their fetch order in Position.
func (c *Client) FetchAll(ctx context.Context) ([]Park, error) {
	tableURL := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.table))

	var raws []rawRecord
	offset := ""
	for {
		reqURL := tableURL
		if offset != "" {
			reqURL = tableURL + "?offset=" + url.QueryEscape(offset)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: list request: %v", ErrStoreUnavailable, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read list response: %v", ErrStoreUnavailable, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: list returned %d: %s", ErrStoreUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("%w: decode list response: %v", ErrStoreUnavailable, err)
		}

		raws = append(raws, page.Records...)
		c.infof("fetched %d parks (%d total so far)", len(page.Records), len(raws))

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	parks := make([]Park, 0, len(raws))
	for i, r := range raws {
		parks = append(parks, parseRecord(r, i))
	}
	c.infof("fetched %d parks total", len(parks))
	return parks, nil
}

// MarkBlogged patches the four tracking fields on one record. This is the
// sole write path preventing duplicate generation; it must run only after a
// successful file write.
func (c *Client) MarkBlogged(ctx context.Context, id string, tr Tracking) error {
	if id == "" {
		return errors.New("record id is required")
	}
	topic := tr.Topic
	if topic == "" {
		topic = "general"
	}
	fileName := tr.FileName
	if fileName == "" {
		fileName = "unknown"
	}

	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"Blog Generated":  true,
			"Last Blog Date":  time.Now().Format("2006-01-02"),
			"Blog Topic Used": topic,
			"Blog File Name":  fileName,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	patchURL := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.table), id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, patchURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: patch request: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: patch returned %d: %s", ErrStoreUnavailable, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	c.infof("marked park %s as blogged (topic=%s file=%s)", id, topic, fileName)
	return nil
}

// Stats fetches all parks and summarizes generation progress.
func (c *Client) Stats(ctx context.Context) (BlogStats, error) {
	parks, err := c.FetchAll(ctx)
	if err != nil {
		return BlogStats{}, err
	}

	stats := BlogStats{TotalParks: len(parks)}
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	for _, p := range parks {
		if p.BlogGenerated {
			stats.BloggedParks++
		} else {
			stats.UnbloggedParks++
		}
		if p.LastBlogDate != nil && p.LastBlogDate.After(thirtyDaysAgo) {
			stats.RecentlyBlogged++
		}
	}
	if stats.TotalParks > 0 {
		stats.ProgressPercent = stats.BloggedParks * 100 / stats.TotalParks
	}
	return stats, nil
}

// CheckConnection verifies the store is reachable and the schema carries the
// identity fields the pipeline depends on.
func (c *Client) CheckConnection(ctx context.Context) error {
	parks, err := c.FetchAll(ctx)
	if err != nil {
		return err
	}
	if len(parks) == 0 {
		return fmt.Errorf("%w: no parks found, check table name and permissions", ErrStoreUnavailable)
	}
	sample := parks[0]
	var missing []string
	if sample.Name == "Unknown Park" {
		missing = append(missing, "Name")
	}
	if sample.City == "Unknown City" {
		missing = append(missing, "City")
	}
	if sample.State == "Unknown State" {
		missing = append(missing, "States")
	}
	if len(missing) > 0 {
		c.logger.Printf("[airtable] sample record is missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseRecord(r rawRecord, position int) Park {
	p := Park{
		ID:          r.ID,
		Name:        stringField(r.Fields, "Name", "Unknown Park"),
		City:        stringField(r.Fields, "City", "Unknown City"),
		State:       stringField(r.Fields, "States", "Unknown State"),
		Description: stringField(r.Fields, "Description", ""),
		Position:    position,
	}

	// The images field is a free-text blob; pull out the Wikimedia URLs.
	if blob := stringField(r.Fields, "Wikimedia Images", ""); blob != "" {
		p.Images = wikimediaURLPattern.FindAllString(blob, -1)
	}
	p.Activities = splitList(stringField(r.Fields, "Activities (Simplified)", ""))
	p.Features = splitList(stringField(r.Fields, "Topics (Simplified)", ""))

	if v, ok := r.Fields["Blog Generated"].(bool); ok {
		p.BlogGenerated = v
	}
	if s := stringField(r.Fields, "Last Blog Date", ""); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			p.LastBlogDate = &t
		}
	}
	p.BlogTopicUsed = stringField(r.Fields, "Blog Topic Used", "")
	p.BlogFileName = stringField(r.Fields, "Blog File Name", "")

	return p
}

func stringField(fields map[string]interface{}, key, fallback string) string {
	if v, ok := fields[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated field, trimming whitespace and stray
// quotes around each entry.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		cleaned := strings.Trim(strings.TrimSpace(part), `"`)
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
