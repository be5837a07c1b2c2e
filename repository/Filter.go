package repository

// ListFilter narrows an owner's listing. A nil IsPublic returns every record.
type ListFilter struct {
	IsPublic *bool
}
