package properties

// PropertyID identifies a rental property across the whole system.
type PropertyID string

// Property is the immutable per-property metadata taken from the feed.
type Property struct {
	ID          PropertyID
	DisplayName string
}
