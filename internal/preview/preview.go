// Package preview renders a composed selection as an HTML page with the
// doctors side by side in independently scrolling panes.
package preview

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gyeh/drbill/internal/layout"
	"github.com/gyeh/drbill/internal/model"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/page.html.tmpl"))

// View is the data behind one preview render.
type View struct {
	// Doctors lists the roster in display order; empty hides the pickers.
	Doctors []string
	// Selected holds up to two chosen doctor names, in selection order.
	Selected []string
	// Page must be composed for the layout.Preview target.
	Page layout.Page
	// Summary describes the last ingest, if any.
	Summary *model.IngestSummary
}

type viewData struct {
	View
	Slots             []string
	BodyTable         layout.Body
	TableHeaders      [4]string
	TotalLabel        string
	PreparedByLabel   string
	ReceiverSignLabel string
}

// Render writes the preview page for v.
func Render(w io.Writer, v View) error {
	if v.Page.Target != layout.Preview {
		return fmt.Errorf("preview: page composed for %s target", v.Page.Target)
	}

	slots := make([]string, layout.MaxDoctorsPerPage)
	copy(slots, v.Selected)

	data := viewData{
		View:              v,
		Slots:             slots,
		BodyTable:         layout.BodyTable,
		TableHeaders:      layout.TableHeaders,
		TotalLabel:        layout.TotalLabel,
		PreparedByLabel:   layout.PreparedByLabel,
		ReceiverSignLabel: layout.ReceiverSignLabel,
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
