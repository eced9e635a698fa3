package domain

// Channel holds channel level fields of a generated feed
type Channel struct {
	Name        string
	Title       string
	Link        string
	Description string
}
