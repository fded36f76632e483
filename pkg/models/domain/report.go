package domain

// NotAvailable is the sentinel rendered for attributes the provider did
// not return. Column elision in the exporter compares against it.
const NotAvailable = "N/A"

// ResourceDetails maps report column names to the extracted value for
// one resource. Absent attributes are pre-defaulted to NotAvailable.
type ResourceDetails map[string]string

// Get returns the value for a column, defaulting to NotAvailable.
func (d ResourceDetails) Get(column string) string {
	if v, ok := d[column]; ok {
		return v
	}
	return NotAvailable
}

// Section is one report chapter, one per distinct resource type.
// Content preserves first-seen order during aggregation.
type Section struct {
	Title       string
	Description string
	Content     []ResourceDetails
}

// Counts are the summary tallies surfaced in the report header.
// Subscriptions is the number of accounts queried; ResourceGroups is the
// set-deduplicated group count. Only four resource types tick a
// dedicated counter, everything else contributes to ResourceGroups only.
type Counts struct {
	Subscriptions   int
	ResourceGroups  int
	VirtualMachines int
	Disks           int
	StorageAccounts int
	VirtualNetworks int
}
