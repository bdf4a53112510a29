package igdb

// Order describes the direction of a sort clause.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)
