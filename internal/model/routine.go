package model

// Routine is a recurring checklist definition. Part of the declared schema;
// no endpoint or computation reads or writes it yet.
type Routine struct {
	Name    string
	Cadence string // cron-like or simple "daily/mwf"
	Steps   []string
}
