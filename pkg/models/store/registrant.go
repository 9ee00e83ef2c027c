package store

// RegistrantRecord is one cleaned row of a regulator registrant-count
// extract, before census-month filtering.
type RegistrantRecord struct {
	Profession string
	Year       int
	Month      int
	Country    string
	Total      int
}

// FlowRecord is one cleaned row of a joiners or leavers extract.
type FlowRecord struct {
	Profession string
	Year       int
	Count      int
}
