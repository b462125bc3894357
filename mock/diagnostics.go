package mock

import "github.com/fwojciec/rfz"

var _ rfz.Diagnostics = (*Diagnostics)(nil)

// Diagnostics is a mock implementation of rfz.Diagnostics.
type Diagnostics struct {
	ReportFn func(d rfz.Diagnostic)
}

func (d *Diagnostics) Report(diag rfz.Diagnostic) {
	d.ReportFn(diag)
}
