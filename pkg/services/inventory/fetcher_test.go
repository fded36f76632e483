package inventory

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/azure"
)

type fakeResourceLister struct {
	resources []domain.Resource
	err       error
}

func (f *fakeResourceLister) ListResources(_ context.Context) ([]domain.Resource, error) {
	return f.resources, f.err
}

type fakeNetworkLister struct {
	vnets []domain.VirtualNetwork
	err   error
}

func (f *fakeNetworkLister) ListVirtualNetworks(_ context.Context) ([]domain.VirtualNetwork, error) {
	return f.vnets, f.err
}

func loggingCtx(buf *bytes.Buffer) context.Context {
	logger := zerolog.New(buf)
	return logger.WithContext(context.Background())
}

func vm(name, rg string) domain.Resource {
	return domain.Resource{
		ID:            "/subscriptions/sub/resourceGroups/" + rg + "/providers/Microsoft.Compute/virtualMachines/" + name,
		Name:          name,
		Type:          "Microsoft.Compute/virtualMachines",
		ResourceGroup: rg,
		Location:      "westeurope",
	}
}

func storageAccount(name, rg string) domain.Resource {
	return domain.Resource{
		ID:            "/subscriptions/sub/resourceGroups/" + rg + "/providers/Microsoft.Storage/storageAccounts/" + name,
		Name:          name,
		Type:          "Microsoft.Storage/storageAccounts",
		ResourceGroup: rg,
		Location:      "westeurope",
	}
}

func TestFetchResources_GroupsByTypeInFirstSeenOrder(t *testing.T) {
	var buf bytes.Buffer
	sets := []*azure.ClientSet{
		{
			SubscriptionID: "sub-1",
			Resources: &fakeResourceLister{resources: []domain.Resource{
				vm("vm1", "rg1"),
				storageAccount("sa1", "rg1"),
				vm("vm2", "rg2"),
			}},
		},
		{
			SubscriptionID: "sub-2",
			Resources: &fakeResourceLister{resources: []domain.Resource{
				storageAccount("sa2", "rg3"),
			}},
		},
	}

	idx := FetchResources(loggingCtx(&buf), sets)

	assert.Equal(t, []string{"Microsoft.Compute/virtualMachines", "Microsoft.Storage/storageAccounts"}, idx.Types())
	assert.Len(t, idx.Group("Microsoft.Compute/virtualMachines"), 2)
	assert.Len(t, idx.Group("Microsoft.Storage/storageAccounts"), 2)
	assert.Equal(t, "sa1", idx.Group("Microsoft.Storage/storageAccounts")[0].Name)
	assert.Equal(t, "sa2", idx.Group("Microsoft.Storage/storageAccounts")[1].Name)
	assert.Equal(t, 4, idx.Size())
}

func TestFetchResources_PartialFailureIsIsolated(t *testing.T) {
	var buf bytes.Buffer
	sets := []*azure.ClientSet{
		{
			SubscriptionID: "sub-1",
			Resources:      &fakeResourceLister{resources: []domain.Resource{vm("vm1", "rg1")}},
		},
		{
			SubscriptionID: "sub-2",
			Resources:      &fakeResourceLister{err: errors.New("boom")},
		},
		{
			SubscriptionID: "sub-3",
			Resources:      &fakeResourceLister{resources: []domain.Resource{vm("vm3", "rg3")}},
		},
	}

	idx := FetchResources(loggingCtx(&buf), sets)

	group := idx.Group("Microsoft.Compute/virtualMachines")
	assert.Len(t, group, 2)
	assert.Equal(t, "vm1", group[0].Name)
	assert.Equal(t, "vm3", group[1].Name)
	assert.Contains(t, buf.String(), "sub-2")
	assert.Contains(t, buf.String(), "failed to fetch resources")
}

func TestFetchResources_NoClients(t *testing.T) {
	var buf bytes.Buffer
	idx := FetchResources(loggingCtx(&buf), nil)
	assert.Zero(t, idx.Len())
	assert.Zero(t, idx.Size())
}
