package sim

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/model"
)

// WriteReport prints a learned-skill table per character.
// Resistances are omitted.
func WriteReport(w io.Writer, catalog *data.SkillCatalog, locale string, chars []*model.Character) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range chars {
		fmt.Fprintf(tw, "%s\tlv %d\texp %d\tactions: %s\n",
			c.Name(), c.Level(), c.Experience(), strings.Join(c.Actions(), ","))
		fmt.Fprintln(tw, "  SKILL\tLEVEL\tEXP\tPOTENTIAL")
		c.Skills().Each(func(id data.SkillID, r model.SkillRecord) {
			if id.Kind() == data.KindResistance {
				return
			}
			fmt.Fprintf(tw, "  %s\t%d\t%d\t%d%%\n", catalog.Name(id, locale), r.BaseLevel, r.Experience, r.Potential)
		})
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
