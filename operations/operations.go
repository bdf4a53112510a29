package operations

// Operation is a comparison operator of an Apicalypse where clause.
type Operation string

const (
	Eq Operation = "="
	Gt Operation = ">"
	Lt Operation = "<"
)
