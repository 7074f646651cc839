package mode

// Mode is the query interpretation strategy.
type Mode string

// Search mode constants.
const (
	// Exact matches the literal query tokens and explicit filters only.
	Exact Mode = "exact"
	// Natural additionally runs the dictionary interpreter, which infers
	// unit phrases and category constraints from conversational text.
	Natural Mode = "natural"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Exact || m == Natural
}

// View is the shape of a ranked result page.
type View string

// Result view constants.
const (
	// Products lists individual products.
	Products View = "product"
	// Vendors lists vendors, each with its matching products.
	Vendors View = "vendor"
)

// IsValid checks if the view is one of the supported values.
func (v View) IsValid() bool {
	return v == Products || v == Vendors
}
