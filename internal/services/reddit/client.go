package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/redsight/redsight/internal/models"
	"github.com/redsight/redsight/internal/validation"
)

// maxResponseBytes caps how much of an upstream body is read.
// Reddit listings at limit=100 are well under 1 MiB.
const maxResponseBytes = 5 * 1024 * 1024

// ClientConfig holds the settings for the Reddit API client
type ClientConfig struct {
	// BaseURL is the Reddit API root, e.g. https://www.reddit.com
	BaseURL string
	// UserAgent is sent on every request; Reddit throttles generic agents hard
	UserAgent string
	// FetchLimit is the number of items requested per listing (1-100)
	FetchLimit int
	// Timeout applies per HTTP request
	Timeout time.Duration
	// RequestsPerSecond limits outbound request rate across all fetches
	RequestsPerSecond int
	// HTTPClient, when set, replaces the SSRF-guarded default client
	HTTPClient *http.Client
}

// Client fetches user activity from the public Reddit JSON API
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
	baseURL    string
	userAgent  string
	fetchLimit int
}

// NewClient creates a Reddit API client. Unless cfg.HTTPClient is supplied,
// requests go through an SSRF-guarded client that refuses private, loopback,
// link-local and metadata addresses at the dialer level, so a hostile
// redirect cannot reach internal infrastructure.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = newSafeHTTPClient(cfg.Timeout)
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		logger:     logger,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		fetchLimit: cfg.FetchLimit,
	}
}

// newSafeHTTPClient builds an HTTP client with SSRF protection.
// safeurl validates resolved IPs in the dialer's Control hook, which also
// covers DNS rebinding.
func newSafeHTTPClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	wrappedClient := safeurl.Client(config)
	return wrappedClient.Client
}

// FetchUserActivity retrieves the user's profile metadata, submitted posts
// and comments concurrently. The three endpoints are independent, so a
// failure on any one aborts the others via the group context.
func (c *Client) FetchUserActivity(ctx context.Context, username string) (*models.UserActivity, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}

	var (
		about    aboutEnvelope
		posts    listingEnvelope
		comments listingEnvelope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, fmt.Sprintf("%s/user/%s/about.json", c.baseURL, username), &about)
	})
	g.Go(func() error {
		return c.getJSON(gctx, fmt.Sprintf("%s/user/%s/submitted.json?limit=%d", c.baseURL, username, c.fetchLimit), &posts)
	})
	g.Go(func() error {
		return c.getJSON(gctx, fmt.Sprintf("%s/user/%s/comments.json?limit=%d", c.baseURL, username, c.fetchLimit), &comments)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activity := &models.UserActivity{
		Metadata: buildMetadata(username, about.Data),
		Posts:    buildRecords(posts.Data.Children, models.RecordKindPost),
		Comments: buildRecords(comments.Data.Children, models.RecordKindComment),
	}

	c.logger.Debug("reddit_activity_fetched",
		zap.String("username", username),
		zap.Int("posts", len(activity.Posts)),
		zap.Int("comments", len(activity.Comments)))

	return activity, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

func buildMetadata(username string, data aboutData) models.AccountMetadata {
	karma := data.TotalKarma
	if karma == 0 {
		// Older API responses omit total_karma
		karma = data.LinkKarma + data.CommentKarma
	}

	name := data.Name
	if name == "" {
		name = username
	}

	return models.AccountMetadata{
		Username:   name,
		TotalKarma: karma,
		CreatedAt:  time.Unix(int64(data.CreatedUTC), 0).UTC(),
	}
}

// buildRecords converts listing items into activity records. Items with a
// missing or non-positive created_utc are dropped here so downstream
// aggregation never sees an invalid timestamp.
func buildRecords(children []listingChild, kind models.RecordKind) []models.ActivityRecord {
	records := make([]models.ActivityRecord, 0, len(children))
	for _, child := range children {
		if child.Data.CreatedUTC <= 0 {
			continue
		}
		records = append(records, models.ActivityRecord{
			CreatedAt:   time.Unix(int64(child.Data.CreatedUTC), 0).UTC(),
			Category:    child.Data.Subreddit,
			Kind:        kind,
			Score:       child.Data.Score,
			NumComments: child.Data.NumComments,
			Flair:       child.Data.LinkFlairText,
		})
	}
	return records
}
