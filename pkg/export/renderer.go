// Package export renders the aggregated inventory into a styled Word
// document.
package export

import (
	"context"
	"fmt"
	"io"

	docx "github.com/fumiama/go-docx"
	"github.com/rs/zerolog"

	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
)

const (
	baseFont = "Aptos"
	baseSize = "24" // half-points, 12pt
	black    = "000000"
	white    = "FFFFFF"
	// Header cell fill, light sky blue.
	headerFill = "87CEEB"
	// Table width in twips, roughly the usable width of an A4 page.
	tableWidth = 9026
)

const summaryText = "This As-Built Document provides a comprehensive overview of the current state of Azure resources " +
	"within the specified subscription IDs. It includes detailed information about various services, " +
	"such as Virtual Machines, Storage Accounts, Virtual Networks, and more. Each section contains " +
	"a description of the service, a table of key resource attributes, and unique resource IDs."

// Renderer writes sections and counts as a .docx document.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the full document to w. A write failure is returned to
// the caller and is fatal for the run: a partially written report is
// not a valid deliverable.
func (r *Renderer) Render(ctx context.Context, w io.Writer, sections []domain.Section, counts domain.Counts) error {
	logger := zerolog.Ctx(ctx)
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText("As-Built Document").Bold().Size(baseSize).Color(black).Font(baseFont, baseFont, baseFont, "")
	for i := 0; i < 5; i++ {
		doc.AddParagraph()
	}

	r.addHeading(doc, "Summary")
	r.addText(doc, summaryText)

	r.addHeading(doc, "Total Counts")
	r.addText(doc, fmt.Sprintf("Subscriptions: %d", counts.Subscriptions))
	r.addText(doc, fmt.Sprintf("Resource Groups: %d", counts.ResourceGroups))
	r.addText(doc, fmt.Sprintf("Virtual Machines: %d", counts.VirtualMachines))
	r.addText(doc, fmt.Sprintf("Disks: %d", counts.Disks))
	r.addText(doc, fmt.Sprintf("Storage Accounts: %d", counts.StorageAccounts))
	r.addText(doc, fmt.Sprintf("Virtual Networks: %d", counts.VirtualNetworks))

	r.addHeading(doc, "Table of Contents")
	for i, section := range sections {
		// Page numbers are a static placeholder: the front matter is
		// assumed to span five pages.
		r.addText(doc, fmt.Sprintf("%d. %s ................... Page %d", i+1, section.Title, i+6))
	}

	doc.AddParagraph().AddPageBreaks()

	for _, section := range sections {
		r.renderSection(logger, doc, section)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (r *Renderer) renderSection(logger *zerolog.Logger, doc *docx.Docx, section domain.Section) {
	r.addHeading(doc, section.Title)
	r.addText(doc, section.Description)

	headers, content := pruneEmptyColumns(headersFor(section), section.Content)
	if len(headers) > 0 {
		r.renderTable(doc, headers, content)
	}

	// Resource IDs come from the full content: the ID column is not part
	// of any table header set, so pruning never touches it.
	for _, item := range section.Content {
		resourceID := item.Get("ID")
		logger.Info().Str("resource_id", resourceID).Msg("adding resource id")
		idPara := doc.AddParagraph()
		idPara.AddText("ID: "+resourceID).Bold().Size(baseSize).Color(black).Font(baseFont, baseFont, baseFont, "")
	}

	doc.AddParagraph()
}

func (r *Renderer) renderTable(doc *docx.Docx, headers []string, content []domain.ResourceDetails) {
	table := doc.AddTable(len(content)+1, len(headers), tableWidth, nil)
	table.TableProperties.TableBorders = tableBorders()

	headerRow := table.TableRows[0]
	for i, header := range headers {
		cell := headerRow.TableCells[i]
		cell.Shade("clear", "auto", headerFill)
		run := cell.AddParagraph().AddText(header)
		run.Bold().Size(baseSize).Color(white).Font(baseFont, baseFont, baseFont, "")
	}

	for ri, item := range content {
		row := table.TableRows[ri+1]
		for ci, header := range headers {
			cell := row.TableCells[ci].AddParagraph().AddText(item.Get(header))
			cell.Size(baseSize).Color(black).Font(baseFont, baseFont, baseFont, "")
		}
	}
}

// tableBorders builds the single-line, size-6, automatic-color border
// set applied to every table edge and interior gridline.
func tableBorders() *docx.WTableBorders {
	border := func() *docx.WTableBorder {
		return &docx.WTableBorder{Val: "single", Size: 6, Space: 0, Color: "auto"}
	}
	return &docx.WTableBorders{
		Top:     border(),
		Left:    border(),
		Bottom:  border(),
		Right:   border(),
		InsideH: border(),
		InsideV: border(),
	}
}

func (r *Renderer) addHeading(doc *docx.Docx, text string) {
	para := doc.AddParagraph().Style("Heading1")
	para.AddText(text)
}

func (r *Renderer) addText(doc *docx.Docx, text string) {
	doc.AddParagraph().AddText(text).Size(baseSize).Color(black).Font(baseFont, baseFont, baseFont, "")
}
