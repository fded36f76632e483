package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
)

// Reporter prints a run summary to the console after the document has
// been written.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type runSummary struct {
	Output   string
	Counts   domain.Counts
	Sections []domain.Section
}

func (c *Reporter) Handle(output string, sections []domain.Section, counts domain.Counts) error {
	tmpl := `
As-Built Document written to {{.Output}}

Subscriptions:    {{.Counts.Subscriptions}}
Resource Groups:  {{.Counts.ResourceGroups}}
Virtual Machines: {{.Counts.VirtualMachines}}
Disks:            {{.Counts.Disks}}
Storage Accounts: {{.Counts.StorageAccounts}}
Virtual Networks: {{.Counts.VirtualNetworks}}

Sections:
{{range .Sections}}- {{.Title}} ({{len .Content}} resources)
{{end}}`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, runSummary{Output: output, Counts: counts, Sections: sections})
}
