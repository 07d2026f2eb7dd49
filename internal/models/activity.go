package models

import (
	"time"
)

// RecordKind distinguishes posts from comments
type RecordKind string

const (
	RecordKindPost    RecordKind = "post"
	RecordKindComment RecordKind = "comment"
)

// ActivityRecord represents one post or one comment fetched from Reddit.
// Records are immutable once produced by the fetch layer; the analytics
// core never mutates them. Score, NumComments and Flair are only populated
// for posts and stay zero for comments.
type ActivityRecord struct {
	CreatedAt   time.Time  `json:"created_at"`
	Category    string     `json:"category"` // subreddit name
	Kind        RecordKind `json:"kind"`
	Score       int        `json:"score,omitempty"`
	NumComments int        `json:"num_comments,omitempty"`
	Flair       string     `json:"flair,omitempty"`
}

// AccountMetadata holds the account-level fields from the Reddit about endpoint.
// CreatedAt is not guaranteed to precede every record timestamp (platform
// clock skew), so nothing downstream may assume ordering between the two.
type AccountMetadata struct {
	Username   string    `json:"username"`
	TotalKarma int       `json:"total_karma"` // may be zero or negative
	CreatedAt  time.Time `json:"created_at"`
}

// UserActivity is the fully-materialized input triple for one analysis run.
// The fetch layer resolves all three parts before handing it over; there is
// no partial-input mode.
type UserActivity struct {
	Metadata AccountMetadata  `json:"metadata"`
	Posts    []ActivityRecord `json:"posts"`
	Comments []ActivityRecord `json:"comments"`
}
