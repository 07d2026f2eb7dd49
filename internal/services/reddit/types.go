package reddit

// Wire shapes for the reddit.com JSON endpoints. Only the fields the
// analytics pipeline consumes are declared; everything else is dropped
// during decode.

type aboutEnvelope struct {
	Data aboutData `json:"data"`
}

type aboutData struct {
	Name         string  `json:"name"`
	TotalKarma   int     `json:"total_karma"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	CreatedUTC   float64 `json:"created_utc"`
}

type listingEnvelope struct {
	Data listingData `json:"data"`
}

type listingData struct {
	Children []listingChild `json:"children"`
}

type listingChild struct {
	Data itemData `json:"data"`
}

type itemData struct {
	Subreddit     string  `json:"subreddit"`
	CreatedUTC    float64 `json:"created_utc"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	LinkFlairText string  `json:"link_flair_text"`
}
