// Package catalog holds the static registries mapping Azure resource
// types to report-facing service names, descriptions and table columns.
// Both registries are pure configuration data with documented fallbacks;
// lookups never fail.
package catalog

import "sort"

// ServiceInfo is the report-facing identity of one Azure service.
type ServiceInfo struct {
	Name        string
	Description string
}

// DefaultDescription is used for resource types not present in the
// registry. Unknown types are not an error.
const DefaultDescription = "Description not available."

// VirtualNetworksService is the display name whose sections force a
// fixed column set in the exporter regardless of the header registry.
const VirtualNetworksService = "Azure Virtual Networks"

// Resource types with dedicated counters in the report summary.
const (
	TypeVirtualMachines = "Microsoft.Compute/virtualMachines"
	TypeDisks           = "Microsoft.Compute/disks"
	TypeStorageAccounts = "Microsoft.Storage/storageAccounts"
	TypeVirtualNetworks = "Microsoft.Network/virtualNetworks"
)

var serviceRegistry = map[string]ServiceInfo{
	"Microsoft.CognitiveServices/accounts":              {"Azure Cognitive Services", "Provides AI and machine learning services."},
	TypeVirtualMachines:                                 {"Azure Virtual Machines", "Scalable computing resources for running applications."},
	TypeVirtualNetworks:                                 {VirtualNetworksService, "Enables secure connections between Azure services."},
	TypeStorageAccounts:                                 {"Azure Storage Accounts", "Scalable cloud storage solutions."},
	"Microsoft.Web/sites":                               {"Azure App Service", "Platform for building and hosting web apps."},
	"Microsoft.Sql/servers":                             {"Azure SQL Database", "Managed database service for SQL Server."},
	"Microsoft.KeyVault/vaults":                         {"Azure Key Vault", "Securely stores and manages access to secrets."},
	"Microsoft.ContainerRegistry/registries":            {"Azure Container Registry", "Stores and manages container images."},
	"Microsoft.Kubernetes/connectedClusters":            {"Azure Arc-enabled Kubernetes", "Manages Kubernetes clusters across environments."},
	"Microsoft.Network/publicIPAddresses":               {"Azure Public IP Addresses", "Provides static and dynamic public IP addresses."},
	"Microsoft.Network/networkSecurityGroups":           {"Azure Network Security Groups", "Controls inbound and outbound traffic to resources."},
	"Microsoft.Network/loadBalancers":                   {"Azure Load Balancers", "Distributes traffic among multiple servers."},
	"Microsoft.Network/applicationGateways":             {"Azure Application Gateways", "Manages application delivery and load balancing."},
	"Microsoft.Network/dnszones":                        {"Azure DNS Zones", "Hosts DNS domains and manages DNS records."},
	"Microsoft.Network/expressRouteCircuits":            {"Azure ExpressRoute Circuits", "Private connections between on-premises networks and Azure."},
	"Microsoft.Network/virtualNetworkGateways":          {"Azure Virtual Network Gateways", "Connects on-premises networks to Azure VNets."},
	"Microsoft.Network/routeTables":                     {"Azure Route Tables", "Defines routes for network traffic."},
	"Microsoft.ContainerInstance/containerGroups":       {"Azure Container Instances", "Runs containers without managing servers."},
	"Microsoft.ContainerService/managedClusters":        {"Azure Kubernetes Service (AKS)", "Managed Kubernetes service for containerized applications."},
	"Microsoft.DocumentDB/databaseAccounts":             {"Azure Cosmos DB", "Globally distributed multi-model database service."},
	"Microsoft.EventHub/namespaces":                     {"Azure Event Hubs", "Big data streaming platform and event ingestion service."},
	"Microsoft.Insights/components":                     {"Azure Application Insights", "Monitors and diagnoses application performance issues."},
	"Microsoft.Logic/workflows":                         {"Azure Logic Apps", "Automates workflows and integrates apps and data."},
	"Microsoft.MachineLearningServices/workspaces":      {"Azure Machine Learning", "Platform for building and deploying machine learning models."},
	"Microsoft.ManagedIdentity/userAssignedIdentities":  {"Azure Managed Identities", "Provides identity management for Azure resources."},
	"Microsoft.OperationalInsights/workspaces":          {"Azure Log Analytics", "Collects and analyzes log data."},
	"Microsoft.Relay/namespaces":                        {"Azure Relay", "Enables hybrid applications by bridging on-premises and cloud environments."},
	"Microsoft.Search/searchServices":                   {"Azure Cognitive Search", "Search-as-a-service for building search experiences."},
	"Microsoft.ServiceBus/namespaces":                   {"Azure Service Bus", "Fully managed enterprise message broker."},
	"Microsoft.SignalRService/signalr":                  {"Azure SignalR Service", "Real-time messaging service for web applications."},
	"Microsoft.Sql/servers/databases":                   {"Azure SQL Databases", "Managed relational database service."},
	"Microsoft.StreamAnalytics/streamingjobs":           {"Azure Stream Analytics", "Real-time data processing service."},
	"Microsoft.Synapse/workspaces":                      {"Azure Synapse Analytics", "Analytics service that brings together big data and data warehousing."},
	"Microsoft.Web/serverfarms":                         {"Azure App Service Plans", "Plans for hosting web apps, mobile apps, and API apps."},
}

var serviceHeaders = map[string][]string{
	"Azure Virtual Machines": {"Name", "Resource Group", "Location", "Size", "OS Type", "Tags"},
	VirtualNetworksService:   {"Name", "Resource Group", "Location", "Address Space", "Tags"},
	"Azure Storage Accounts": {"Name", "Resource Group", "Location", "SKU", "Access Tier", "Tags"},
	"Azure App Service":      {"Name", "Resource Group", "Location", "App Service Plan", "State", "Tags"},
	"Azure SQL Database":     {"Name", "Resource Group", "Location", "Database Edition", "Service Objective", "Tags"},
}

// LookupService resolves a provider resource type to its report
// identity. Unknown types fall back to the raw type string with
// DefaultDescription.
func LookupService(resourceType string) ServiceInfo {
	if info, ok := serviceRegistry[resourceType]; ok {
		return info
	}
	return ServiceInfo{Name: resourceType, Description: DefaultDescription}
}

// Known reports whether the resource type has a registry entry.
func Known(resourceType string) bool {
	_, ok := serviceRegistry[resourceType]
	return ok
}

// HeadersForService returns the ordered column set for a service display
// name. Unmapped services get the default column set.
func HeadersForService(serviceName string) []string {
	if headers, ok := serviceHeaders[serviceName]; ok {
		return append([]string(nil), headers...)
	}
	return []string{"Name", "Resource Group", "Location", "Kind", "SKU", "Tags"}
}

// ServiceTypes returns all registered resource types in lexical order.
func ServiceTypes() []string {
	types := make([]string, 0, len(serviceRegistry))
	for t := range serviceRegistry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
