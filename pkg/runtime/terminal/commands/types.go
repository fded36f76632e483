package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/de-tools/azure-asbuilt/pkg/services/catalog"
)

func NewTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List known resource types and their service mappings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, resourceType := range catalog.ServiceTypes() {
				info := catalog.LookupService(resourceType)
				fmt.Fprintf(w, "%s\t%s\n", resourceType, info.Name)
			}
			return w.Flush()
		},
	}
	return cmd
}
