package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
)

// ResourceLister lists every resource in one subscription.
type ResourceLister interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
}

// VirtualNetworkLister lists every virtual network in one subscription.
type VirtualNetworkLister interface {
	ListVirtualNetworks(ctx context.Context) ([]domain.VirtualNetwork, error)
}

// ClientSet bundles the management clients for one subscription.
type ClientSet struct {
	SubscriptionID string
	Resources      ResourceLister
	Networks       VirtualNetworkLister
}

// NewClientSets builds one ClientSet per subscription ID from a shared
// credential.
func NewClientSets(cred azcore.TokenCredential, subscriptionIDs []string) ([]*ClientSet, error) {
	sets := make([]*ClientSet, 0, len(subscriptionIDs))
	for _, subID := range subscriptionIDs {
		resourceClient, err := armresources.NewClient(subID, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create resource client for subscription %s: %w", subID, err)
		}
		networkClient, err := armnetwork.NewVirtualNetworksClient(subID, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create network client for subscription %s: %w", subID, err)
		}
		sets = append(sets, &ClientSet{
			SubscriptionID: subID,
			Resources:      &resourceLister{client: resourceClient},
			Networks:       &networkLister{client: networkClient},
		})
	}
	return sets, nil
}

type resourceLister struct {
	client *armresources.Client
}

func (l *resourceLister) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var resources []domain.Resource
	pager := l.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resources: %w", err)
		}
		for _, res := range page.Value {
			resources = append(resources, fromGenericResource(res))
		}
	}
	return resources, nil
}

type networkLister struct {
	client *armnetwork.VirtualNetworksClient
}

func (l *networkLister) ListVirtualNetworks(ctx context.Context) ([]domain.VirtualNetwork, error) {
	var vnets []domain.VirtualNetwork
	pager := l.client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual networks: %w", err)
		}
		for _, vnet := range page.Value {
			vnets = append(vnets, fromVirtualNetwork(vnet))
		}
	}
	return vnets, nil
}
