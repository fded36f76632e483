package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/catalog"
)

// Process walks the grouped resources and produces one section per
// resource type plus the summary counts. subscriptionCount is the
// number of accounts queried this run, partial failures included.
func Process(ctx context.Context, idx *ResourceIndex, subscriptionCount int) ([]domain.Section, domain.Counts) {
	logger := zerolog.Ctx(ctx)

	counts := domain.Counts{Subscriptions: subscriptionCount}
	resourceGroups := make(map[string]struct{})

	sections := make([]domain.Section, 0, idx.Len())
	for _, resourceType := range idx.Types() {
		logger.Debug().Str("type", resourceType).Msg("processing resource type")
		info := catalog.LookupService(resourceType)
		if !catalog.Known(resourceType) {
			logger.Debug().Str("type", resourceType).Msg("resource type not in catalog, using fallback")
		}

		group := idx.Group(resourceType)
		content := make([]domain.ResourceDetails, 0, len(group))
		for _, res := range group {
			resourceGroups[orNA(res.ResourceGroup)] = struct{}{}
			switch resourceType {
			case catalog.TypeVirtualMachines:
				counts.VirtualMachines++
			case catalog.TypeDisks:
				counts.Disks++
			case catalog.TypeStorageAccounts:
				counts.StorageAccounts++
			case catalog.TypeVirtualNetworks:
				counts.VirtualNetworks++
			}

			details := domain.ResourceDetails{
				"Name":           orNA(res.Name),
				"Resource Group": orNA(res.ResourceGroup),
				"Location":       orNA(res.Location),
				"Kind":           orNA(res.Kind),
				"SKU":            orNA(res.SKUName),
				"Tags":           formatTags(res.Tags),
				"ID":             orNA(res.ID),
			}
			if resourceType == catalog.TypeVirtualNetworks {
				details["Address Space"] = strings.Join(res.AddressPrefixes, ", ")
			}
			content = append(content, details)
		}

		sections = append(sections, domain.Section{
			Title:       "Service: " + info.Name,
			Description: info.Description,
			Content:     content,
		})
	}

	counts.ResourceGroups = len(resourceGroups)

	logger.Info().
		Int("subscriptions", counts.Subscriptions).
		Int("resource_groups", counts.ResourceGroups).
		Int("virtual_machines", counts.VirtualMachines).
		Int("disks", counts.Disks).
		Int("storage_accounts", counts.StorageAccounts).
		Int("vnets", counts.VirtualNetworks).
		Msg("processed resource data")

	return sections, counts
}

func orNA(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}

// formatTags renders tags as a stable "k=v, k=v" list so table cells
// and elision behave deterministically.
func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return domain.NotAvailable
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+tags[k])
	}
	return strings.Join(pairs, ", ")
}
