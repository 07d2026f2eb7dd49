package reddit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redsight/redsight/internal/validation"
)

// allowed reddit hosts for profile URLs
var profileHosts = map[string]bool{
	"reddit.com":     true,
	"www.reddit.com": true,
	"old.reddit.com": true,
	"np.reddit.com":  true,
	"new.reddit.com": true,
}

// ParseProfileURL extracts a username from a Reddit profile URL. Bare
// usernames are accepted as-is, so callers can feed user input straight
// through without caring which form it took.
func ParseProfileURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidProfileURL)
	}

	// Bare username shortcut
	if !strings.Contains(raw, "/") && !strings.Contains(raw, ":") {
		if err := validation.ValidateUsername(raw); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidUsername, raw)
		}
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidProfileURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidProfileURL)
	}
	if !profileHosts[strings.ToLower(u.Hostname())] {
		return "", fmt.Errorf("%w: host %q is not reddit.com", ErrInvalidProfileURL, u.Hostname())
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "user" && parts[0] != "u") {
		return "", fmt.Errorf("%w: path must be /user/<username>", ErrInvalidProfileURL)
	}

	username := parts[1]
	if err := validation.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidUsername, username)
	}
	return username, nil
}
