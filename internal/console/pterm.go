package console

import (
	"io"

	"github.com/pterm/pterm"
)

// PtermPresenter writes tab-indented lines to an io.Writer, colored with pterm
// when color is enabled.
type PtermPresenter struct {
	w     io.Writer
	color bool
}

// NewPtermPresenter returns a presenter writing to w. Color is applied per call
// and never touches pterm's global switches.
func NewPtermPresenter(w io.Writer, color bool) *PtermPresenter {
	return &PtermPresenter{w: w, color: color}
}

func (p *PtermPresenter) style(c pterm.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func (p *PtermPresenter) Prompt(text string) {
	pterm.Fprint(p.w, "\t"+text)
}

func (p *PtermPresenter) Header(title string) {
	pterm.Fprintln(p.w, p.style(pterm.FgLightGreen, "\n\t****** "+title+" Information ******\n"))
}

func (p *PtermPresenter) Info(msg string) {
	pterm.Fprintln(p.w, p.style(pterm.FgLightCyan, "\t"+msg))
}

func (p *PtermPresenter) Success(msg string) {
	pterm.Fprintln(p.w, p.style(pterm.FgLightGreen, "\t"+msg))
}

func (p *PtermPresenter) Error(msg string) {
	pterm.Fprintln(p.w, p.style(pterm.FgLightRed, "\t"+msg))
}

var _ Presenter = (*PtermPresenter)(nil)
