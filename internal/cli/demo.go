package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joomcode/statelessrnd/lcg"
	"github.com/joomcode/statelessrnd/lcgdumb"
)

func (c *Command) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show value semantics of generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.params()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			seed := c.v.GetUint64("seed")

			rnd := lcg.SeedWith(p, seed, true)
			rnd2 := rnd.Next()
			fmt.Fprintf(out, "seed(%d):\t%d\n", seed, rnd.Value())
			fmt.Fprintf(out, "next():\t%d\n", rnd2.Value())
			fmt.Fprintf(out, "unchanged:\t%d\n", rnd.Value())

			raw := lcg.SeedWith(p, seed, false)
			fmt.Fprintf(out, "seed(%d, no skip):\t%d\n", seed, raw.Value())

			ref := lcgdumb.New(p.Multiplier(), p.Increment(), p.Modulus(), raw.Value())
			ref.Discard(100)
			fmt.Fprintf(out, "reference after 100:\t%d\n", ref.Next())
			fmt.Fprintf(out, "discard(101):\t%d\n", raw.Discard(101).Value())

			observed := ref.Next()
			fmt.Fprintf(out, "reseeded from %d:\t%d\n", observed, lcg.SeedWith(p, observed, true).Value())
			fmt.Fprintf(out, "reference next:\t%d\n", ref.Next())
			return nil
		},
	}
}
