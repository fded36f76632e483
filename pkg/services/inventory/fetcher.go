// Package inventory aggregates Azure resource listings across
// subscriptions and distills them into report sections and summary
// counts. Fetching is strictly sequential; one subscription's failure
// is logged and skipped so a run always produces whatever it could
// gather.
package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/azure"
)

// ResourceIndex groups resources by their raw type string. Type order
// is first-encounter order across subscriptions processed in input
// order; group content keeps listing order.
type ResourceIndex struct {
	order  []string
	groups map[string][]domain.Resource
}

func NewResourceIndex() *ResourceIndex {
	return &ResourceIndex{groups: make(map[string][]domain.Resource)}
}

// Add appends a resource to its type group, registering the type on
// first sight.
func (idx *ResourceIndex) Add(res domain.Resource) {
	if _, ok := idx.groups[res.Type]; !ok {
		idx.order = append(idx.order, res.Type)
	}
	idx.groups[res.Type] = append(idx.groups[res.Type], res)
}

// Types returns the distinct type strings in first-encounter order.
func (idx *ResourceIndex) Types() []string {
	return append([]string(nil), idx.order...)
}

// Group returns the resources recorded for a type.
func (idx *ResourceIndex) Group(resourceType string) []domain.Resource {
	return idx.groups[resourceType]
}

// Len is the number of distinct resource types.
func (idx *ResourceIndex) Len() int {
	return len(idx.order)
}

// Size is the total number of resources across all groups.
func (idx *ResourceIndex) Size() int {
	n := 0
	for _, group := range idx.groups {
		n += len(group)
	}
	return n
}

// FetchResources lists all resources for every client set and groups
// them by type. A failed subscription is logged with its ID and
// skipped; the remaining subscriptions still contribute.
func FetchResources(ctx context.Context, sets []*azure.ClientSet) *ResourceIndex {
	logger := zerolog.Ctx(ctx)
	idx := NewResourceIndex()
	for _, set := range sets {
		logger.Info().Str("subscription_id", set.SubscriptionID).Msg("fetching resources")
		resources, err := set.Resources.ListResources(ctx)
		if err != nil {
			logger.Error().Err(err).Str("subscription_id", set.SubscriptionID).Msg("failed to fetch resources")
			continue
		}
		for _, res := range resources {
			idx.Add(res)
		}
	}
	logger.Info().Int("types", idx.Len()).Int("resources", idx.Size()).Msg("resource fetch completed")
	return idx
}
