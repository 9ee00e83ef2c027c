package store

// Pharmacy is one record from the consolidated pharmacy list datastore.
// OpeningHours maps an upper-case day name (MON..SUN) to the raw hours
// text published for that day.
type Pharmacy struct {
	ODSCode      string
	Name         string
	OpeningHours map[string]string
}
