package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/azure"
)

// FetchNetworkDetails lists virtual networks across every client set.
// Same partial-failure policy as FetchResources. The result is gathered
// for completeness; the processor works from the generic resource
// listing alone.
func FetchNetworkDetails(ctx context.Context, sets []*azure.ClientSet) domain.NetworkDetails {
	logger := zerolog.Ctx(ctx)
	var details domain.NetworkDetails
	for _, set := range sets {
		logger.Info().Str("subscription_id", set.SubscriptionID).Msg("fetching network details")
		vnets, err := set.Networks.ListVirtualNetworks(ctx)
		if err != nil {
			logger.Error().Err(err).Str("subscription_id", set.SubscriptionID).Msg("failed to fetch network details")
			continue
		}
		details.VirtualNetworks = append(details.VirtualNetworks, vnets...)
	}
	logger.Debug().Int("virtual_networks", len(details.VirtualNetworks)).Msg("network details collected")
	return details
}
