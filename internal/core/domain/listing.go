package domain

type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortSpec names the ordering of a listing. Repositories accept only the
// fields they know about.
type SortSpec struct {
	Field     string
	Direction SortDirection
}

var (
	NewestFirst = SortSpec{Field: "created_at", Direction: Desc}
	OldestFirst = SortSpec{Field: "created_at", Direction: Asc}
)

type ListOptions struct {
	Sort SortSpec
	// Limit <= 0 means no limit.
	Limit int
}

func NewListOptions(sort SortSpec, limit int) ListOptions {
	return ListOptions{Sort: sort, Limit: limit}
}
