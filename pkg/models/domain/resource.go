package domain

// Resource is a single inventoried Azure object as returned by the
// resource-management listing. Empty string means the provider did not
// return the field.
type Resource struct {
	ID            string
	Name          string
	Type          string
	ResourceGroup string
	Location      string
	Kind          string
	SKUName       string
	Tags          map[string]string

	// AddressPrefixes is only populated when the provider includes the
	// address space on the record; the generic listing usually omits it.
	AddressPrefixes []string
}

// VirtualNetwork is the network-management view of a VNet, carrying the
// address-space detail the generic resource listing omits.
type VirtualNetwork struct {
	ID              string
	Name            string
	ResourceGroup   string
	Location        string
	AddressPrefixes []string
	Tags            map[string]string
}

// NetworkDetails aggregates network-management listings across all
// queried subscriptions.
type NetworkDetails struct {
	VirtualNetworks []VirtualNetwork
}
