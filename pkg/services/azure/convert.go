package azure

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
)

func fromGenericResource(res *armresources.GenericResourceExpanded) domain.Resource {
	r := domain.Resource{
		ID:       deref(res.ID),
		Name:     deref(res.Name),
		Type:     deref(res.Type),
		Location: deref(res.Location),
		Kind:     deref(res.Kind),
		Tags:     fromTags(res.Tags),
	}
	if res.SKU != nil {
		r.SKUName = deref(res.SKU.Name)
	}
	r.ResourceGroup = ResourceGroupFromID(r.ID)
	return r
}

func fromVirtualNetwork(vnet *armnetwork.VirtualNetwork) domain.VirtualNetwork {
	v := domain.VirtualNetwork{
		ID:       deref(vnet.ID),
		Name:     deref(vnet.Name),
		Location: deref(vnet.Location),
		Tags:     fromTags(vnet.Tags),
	}
	v.ResourceGroup = ResourceGroupFromID(v.ID)
	if vnet.Properties != nil && vnet.Properties.AddressSpace != nil {
		for _, prefix := range vnet.Properties.AddressSpace.AddressPrefixes {
			if prefix != nil {
				v.AddressPrefixes = append(v.AddressPrefixes, *prefix)
			}
		}
	}
	return v
}

// ResourceGroupFromID extracts the resource group segment from an ARM
// resource ID. The listing API does not return the group as a field.
func ResourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i < len(parts)-1; i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}

func fromTags(tags map[string]*string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
