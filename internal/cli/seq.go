package cli

import (
	"bufio"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joomcode/statelessrnd/lcg"
)

const seqBatch = 16 * lcg.DefaultChunk

func (c *Command) seqCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Print generator values",
		Long: `Print values of generator, one per line. For example:
  statelessrnd seq --seed=42 --count=3
  statelessrnd seq --seed=42 --discard=1102 --count=1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.params()
			if err != nil {
				return err
			}
			count := c.v.GetInt("count")
			if count < 0 {
				return ErrConfig.New("count should not be negative").WithProperty(EKKey, "count")
			}

			g := lcg.SeedWith(p, c.v.GetUint64("seed"), c.v.GetBool("skip-first"))
			g = g.Discard(c.v.GetUint64("discard"))

			// values are produced in batches, so memory doesn't grow with count
			batch := count
			if batch > seqBatch {
				batch = seqBatch
			}
			vals := make([]uint64, batch)
			w := bufio.NewWriter(cmd.OutOrStdout())
			var buf []byte
			for left := count; left > 0; left -= len(vals) {
				if left < len(vals) {
					vals = vals[:left]
				}
				g = lcg.FillParallel(g, vals, 0)
				for _, v := range vals {
					buf = strconv.AppendUint(buf[:0], v, 10)
					buf = append(buf, '\n')
					if _, err := w.Write(buf); err != nil {
						return err
					}
				}
			}
			return w.Flush()
		},
	}

	flags := cmd.Flags()
	flags.Bool("skip-first", true, "do not output seed itself")
	flags.Uint64("discard", 0, "skip this many values before printing")
	flags.IntP("count", "n", 10, "number of values to print")
	c.bind(flags)
	return cmd
}
