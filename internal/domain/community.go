package domain

// Building categories used by the industry leaderboard filter. "All" is
// implicit.
var BuildingCategories = []string{
	"Mall",
	"Hotel",
	"Hospital",
	"Office",
}

// Community tab identifiers.
const (
	TabNews        = "news"
	TabChallenges  = "challenges"
	TabLeaderboard = "leaderboard"
)

// NewsPost is an industry news or best-practice post in the community feed.
type NewsPost struct {
	ID         string
	Author     string
	AuthorType string
	Title      string
	Content    string
	Topic      string
	Date       string
	Likes      int
	Liked      bool
}

// ItemID returns the post identifier.
func (p NewsPost) ItemID() string { return p.ID }

// Category returns the post topic tag.
func (p NewsPost) Category() string { return p.Topic }

// Status returns "" — posts carry no status tag.
func (p NewsPost) Status() string { return "" }

// SearchText returns the text matched by free-text search.
func (p NewsPost) SearchText() string {
	return p.Title + " " + p.Content + " " + p.Author
}

// Challenge is an industry-wide target buildings can participate in.
type Challenge struct {
	ID           string
	Title        string
	Description  string
	Participants int
	Deadline     string
	Reward       string
	Progress     int // percent
}

// ItemID returns the challenge identifier.
func (c Challenge) ItemID() string { return c.ID }

// Category returns "" — challenges carry no category tag.
func (c Challenge) Category() string { return "" }

// Status returns "" — challenges carry no status tag.
func (c Challenge) Status() string { return "" }

// SearchText returns the text matched by free-text search.
func (c Challenge) SearchText() string { return c.Title + " " + c.Description }

// ProgressPercent returns the challenge progress clamped to [0, 100].
func (c Challenge) ProgressPercent() int { return ClampPercent(c.Progress) }

// LeaderboardEntry is one building's row on the industry leaderboard.
type LeaderboardEntry struct {
	Rank          int
	Name          string
	BuildingType  string
	Location      string
	WasteDiverted string
	ESGScore      int
	Badge         string
}

// ItemID returns the building name; leaderboard rows have no separate ID.
func (e LeaderboardEntry) ItemID() string { return e.Name }

// Category returns the building type tag.
func (e LeaderboardEntry) Category() string { return e.BuildingType }

// Status returns "" — leaderboard rows carry no status tag.
func (e LeaderboardEntry) Status() string { return "" }

// SearchText returns the text matched by free-text search.
func (e LeaderboardEntry) SearchText() string { return e.Name + " " + e.Location }
