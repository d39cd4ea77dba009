package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// lookupTimeout bounds each peer call. It is deliberately short: listing N
// orders performs up to 2N of these, and a slow peer must not amplify into a
// slow orders listing.
const lookupTimeout = 3 * time.Second

// Client resolves user/product ids to display names by calling the peer
// resource services. Every lookup has two outcomes: the real name, or a
// deterministic placeholder when the peer cannot answer. It never returns an
// error to the caller; suppressed failures are logged.
type Client struct {
	http        *http.Client
	usersURL    string
	productsURL string
	log         *zap.Logger
}

// NewClient creates a new enrichment client for the given peer base URLs.
func NewClient(usersURL, productsURL string, log *zap.Logger) *Client {
	return &Client{
		http:        &http.Client{Timeout: lookupTimeout},
		usersURL:    strings.TrimRight(usersURL, "/"),
		productsURL: strings.TrimRight(productsURL, "/"),
		log:         log,
	}
}

// UserName returns the name of the referenced user, or "User #<id>" when the
// users service cannot provide it.
func (c *Client) UserName(ctx context.Context, id int64) string {
	name, err := c.lookup(ctx, c.usersURL, "users", id)
	if err != nil {
		c.log.Warn("user name lookup failed, using placeholder",
			zap.Int64("user_id", id), zap.Error(err))
		return fmt.Sprintf("User #%d", id)
	}
	return name
}

// ProductName returns the name of the referenced product, or "Product #<id>"
// when the products service cannot provide it.
func (c *Client) ProductName(ctx context.Context, id int64) string {
	name, err := c.lookup(ctx, c.productsURL, "products", id)
	if err != nil {
		c.log.Warn("product name lookup failed, using placeholder",
			zap.Int64("product_id", id), zap.Error(err))
		return fmt.Sprintf("Product #%d", id)
	}
	return name
}

// lookup fetches GET {base}/{resource}/{id} and extracts the name field.
func (c *Client) lookup(ctx context.Context, base, resource string, id int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/%d", base, resource, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("call %s: unexpected status %d", url, resp.StatusCode)
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode %s response: %w", url, err)
	}
	if body.Name == "" {
		return "", fmt.Errorf("%s response has no name field", url)
	}

	return body.Name, nil
}
