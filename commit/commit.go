package commit

// Source identifies which feed produced a commit.
type Source = string

var (
	Tracker  = Source("tracker")
	Activity = Source("activity-feed")
)

// UnknownTimestamp is the sentinel used when a source date string
// cannot be parsed. Records carrying it sort after every real
// timestamp under the descending order used by aggregation.
const UnknownTimestamp int64 = 0

// Commit is a single normalized commit record in the common schema
// shared by all sources. Fields that depend on pattern extraction
// (Project, Message, Hash) are empty when extraction fails; that is
// not an error and the record is still produced.
type Commit struct {
	Title     string `json:"title"`
	Project   string `json:"project"`
	Message   string `json:"message"`
	Hash      string `json:"hash"`
	Date      string `json:"date"`      // verbatim source timestamp string
	Timestamp int64  `json:"timestamp"` // Date parsed to epoch seconds, or UnknownTimestamp
	Link      string `json:"link"`
	Source    Source `json:"source"`
}

// ShortHash returns an abbreviated commit identifier for display.
func (c Commit) ShortHash() string {
	if len(c.Hash) < 8 {
		return c.Hash
	}
	return c.Hash[:8]
}
