package types

// Status is the row-level lifecycle of a persisted resource, independent of
// any domain status an entity may carry (lead status, quote status, ...).
// Deleted rows are kept for audit and excluded from queries by default.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
