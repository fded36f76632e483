package export

import (
	"strings"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/catalog"
)

// serviceName recovers the display name from a section title.
func serviceName(section domain.Section) string {
	return strings.TrimPrefix(section.Title, "Service: ")
}

// headersFor picks the column set for a section. Virtual-network
// sections always get the fixed address-space column set, whatever the
// header registry says for that display name.
func headersFor(section domain.Section) []string {
	name := serviceName(section)
	if name == catalog.VirtualNetworksService {
		return []string{"Name", "Resource Group", "Location", "Address Space", "Tags"}
	}
	return catalog.HeadersForService(name)
}

// pruneEmptyColumns drops every header whose value is the N/A sentinel
// for all resources in the section, and strips the dropped columns from
// the content. The check runs on pre-defaulted values: a field the
// provider returned as null and a field never requested look the same
// here.
func pruneEmptyColumns(headers []string, content []domain.ResourceDetails) ([]string, []domain.ResourceDetails) {
	kept := make([]string, 0, len(headers))
	for _, header := range headers {
		for _, item := range content {
			if item.Get(header) != domain.NotAvailable {
				kept = append(kept, header)
				break
			}
		}
	}

	pruned := make([]domain.ResourceDetails, 0, len(content))
	for _, item := range content {
		row := make(domain.ResourceDetails, len(kept))
		for _, header := range kept {
			if v, ok := item[header]; ok {
				row[header] = v
			}
		}
		pruned = append(pruned, row)
	}
	return kept, pruned
}
