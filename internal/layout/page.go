package layout

import "github.com/gyeh/drbill/internal/model"

// Page is a composed selection: zero, one or two blocks. On the print
// target an empty selection carries Placeholder text instead.
type Page struct {
	Target      Target
	Blocks      []Block
	Placeholder string
}

// Empty reports whether the page has no doctor blocks.
func (p Page) Empty() bool {
	return len(p.Blocks) == 0
}

// ComposePage lays out the selected doctors, first selected first (top on
// paper, left in the preview).
func ComposePage(selected []model.DoctorSummary, target Target, opts Options) (Page, error) {
	if len(selected) > MaxDoctorsPerPage {
		return Page{}, ErrTooManyDoctors
	}

	page := Page{Target: target}
	if len(selected) == 0 {
		if target == Print {
			page.Placeholder = NoSelectionText
		}
		return page, nil
	}

	page.Blocks = make([]Block, len(selected))
	for i, d := range selected {
		page.Blocks[i] = BuildBlock(d, len(selected), target, opts)
	}
	return page, nil
}
