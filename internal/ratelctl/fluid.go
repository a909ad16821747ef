package ratelctl

import (
	"fmt"
	"text/tabwriter"

	"github.com/ratelproject/ratel-runner/pkg/fluid"
)

// FluidEncode prints id in the requested format, or in every format when
// format is nil.
func (a *App) FluidEncode(id uint64, format *fluid.Format) error {
	if format != nil {
		fmt.Fprintln(a.Out, fluid.Encode(id, *format))
		return nil
	}
	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	for _, f := range fluid.Formats {
		fmt.Fprintf(w, "%s:\t%s\n", f, fluid.Encode(id, f))
	}
	return w.Flush()
}

// FluidDecode parses s, auto-detecting the format unless one is given, and
// prints the decimal identifier.
func (a *App) FluidDecode(s string, format *fluid.Format) error {
	var (
		id  uint64
		err error
	)
	if format != nil {
		id, err = fluid.DecodeAs(s, *format)
	} else {
		id, err = fluid.Decode(s)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, fluid.Encode(id, fluid.Decimal))
	return nil
}
