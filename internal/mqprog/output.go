// Public domain.

package mqprog

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	sexa "github.com/soniakeys/sexagesimal"

	"github.com/soniakeys/mpcquery/mpc"
)

func printPayload(w io.Writer, p mpc.Payload) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s=%s\n", k, p[k])
	}
}

// printObject lists the fields of rec, then a summary of its orbit if
// rec carries orbital elements.  A nil rec, no match, prints nothing.
func printObject(w io.Writer, rec mpc.Record) {
	if rec == nil {
		return
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%-30s %s\n", k, rec.Text(mpc.Field(k)))
	}
	e, err := rec.Elements()
	if err != nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-30s %.1s\n", "Inclination", sexa.FmtAngle(e.Inclination))
	fmt.Fprintf(w, "%-30s %.4f AU\n", "Perihelion distance", e.PerihelionDistance())
	if q := e.AphelionDistance(); !math.IsInf(q, 1) {
		fmt.Fprintf(w, "%-30s %.4f AU\n", "Aphelion distance", q)
		fmt.Fprintf(w, "%-30s %.1f days\n", "Period", e.Period())
	}
	fmt.Fprintf(w, "%-30s %.3f\n", "Tisserand (Jupiter)", e.TisserandJupiter())
	if !e.Epoch.IsZero() {
		fmt.Fprintf(w, "%-30s %s\n", "Epoch", e.Epoch.Format("2 Jan 2006"))
	}
	if cs := e.Classes(); len(cs) > 0 {
		abbr := make([]string, len(cs))
		for i, c := range cs {
			abbr[i] = c.Abbr
		}
		fmt.Fprintf(w, "%-30s %s\n", "Orbit classes", strings.Join(abbr, " "))
	}
}

// printTable writes t as tab aligned columns followed by a record count.
func printTable(w io.Writer, t *mpc.Table) {
	if t.Len() > 0 {
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
		for i := 0; i < t.Len(); i++ {
			fmt.Fprintln(tw, strings.Join(t.Cells(i), "\t"))
		}
		tw.Flush()
	}
	fmt.Fprintf(w, "%d records\n", t.Len())
}
