package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joomcode/statelessrnd/lcg"
	"github.com/joomcode/statelessrnd/lcgdumb"
)

var defaultOffsets = []string{"0", "1", "100", "101", "1102"}

func (c *Command) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare generator with reference engine",
		Long: `Compare generator with plain mutable engine at given offsets. For example:
  statelessrnd check --seed=42 --offsets=0,1,100,101,1102
Note that reference engine takes seed modulo M while generator clamps it,
so seeds outside of [1, M-1] are expected to diverge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.params()
			if err != nil {
				return err
			}
			offsets, err := c.offsets()
			if err != nil {
				return err
			}
			seed := c.v.GetUint64("seed")
			g := lcg.SeedWith(p, seed, true)
			out := cmd.OutOrStdout()
			for _, off := range offsets {
				ref := lcgdumb.New(p.Multiplier(), p.Increment(), p.Modulus(), seed)
				ref.Discard(off)
				expected := ref.Next()
				actual := g.Discard(off).Value()
				if expected != actual {
					err := ErrMismatch.New("generator diverged from reference").
						WithProperty(EKOffset, off).
						WithProperty(EKExpected, expected).
						WithProperty(EKActual, actual)
					c.logger.Report(LogMismatch, err)
					return err
				}
				fmt.Fprintf(out, "%d\t%d\tok\n", off, actual)
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("offsets", defaultOffsets, "offsets to compare")
	c.bind(cmd.Flags())
	return cmd
}

func (c *Command) offsets() ([]uint64, error) {
	var res []uint64
	// environment gives whole list as one string
	for _, item := range c.v.GetStringSlice("offsets") {
		for _, s := range strings.Split(item, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			off, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, ErrConfig.Wrap(err, "offset is not a number").WithProperty(EKKey, "offsets")
			}
			res = append(res, off)
		}
	}
	return res, nil
}
