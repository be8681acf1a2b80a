package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List known content types in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tTEXT\tEXTENSIONS\tSIGNATURES")
			for _, d := range a.resolver.Catalog().All() {
				sigs := make([]string, 0, len(d.Signatures()))
				for _, s := range d.Signatures() {
					sigs = append(sigs, hex.EncodeToString(s))
				}
				fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n",
					d.Name(),
					d.IsTextDecodable(),
					strings.Join(d.Extensions(), ","),
					strings.Join(sigs, ","),
				)
			}
			return tw.Flush()
		},
	}
}
