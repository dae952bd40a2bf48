// SPDX-License-Identifier: MIT

package catalogue

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lonelu/Informed-Proteomics/modification"
)

// Describe writes one row per combination of cat: index, number of placed
// modifications, the modifications, their summed mass delta, and the
// outgoing transitions as "typeID→index". Full combinations show "-".
func Describe(w io.Writer, cat *Catalogue) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tSIZE\tMODIFICATIONS\tMASS\tNEXT")

	m := cat.NumModificationTypes()
	next := make([]string, 0, m)
	for i := 0; i < cat.Len(); i++ {
		comb, err := cat.At(i)
		if err != nil {
			return err
		}

		next = next[:0]
		for t := 0; t < m; t++ {
			d, err := cat.Transition(i, t)
			if err != nil {
				break // full: no type has a transition
			}
			next = append(next, fmt.Sprintf("%d→%d", t, d))
		}
		nextCol := "-"
		if len(next) > 0 {
			nextCol = strings.Join(next, " ")
		}

		fmt.Fprintf(tw, "%d\t%d\t%s\t%+.6f\t%s\n",
			i, comb.Len(), comb, modification.MassDelta(comb.Modifications()), nextCol)
	}

	return tw.Flush()
}

// Summary is a one-line description of a catalogue.
func Summary(name string, cat *Catalogue) string {
	mods := cat.Modifications()
	names := make([]string, len(mods))
	for i, mod := range mods {
		names[i] = mod.String()
	}

	return fmt.Sprintf("%s: %d types [%s], K=%d, %d combinations, %d transitions",
		name, len(mods), strings.Join(names, ", "), cat.MaxModifications(), cat.Len(), cat.NumTransitions())
}
