package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jcalabro/poolprobe"
)

type cli struct {
	Seed     *uint64 `help:"Seed for a reproducible pool. Unseeded when omitted."`
	PoolSize int     `help:"Number of values in the pool." default:"100000"`
	Min      int     `help:"Smallest value the pool may contain." default:"0"`
	Max      int     `help:"Largest value the pool may contain." default:"1000000"`
	Probes   int     `help:"Number of probe values, counting up from zero." default:"10000"`
	Verbose  bool    `short:"v" help:"Log run statistics to stderr."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("poolprobe"),
		kong.Description("Count how many probe values occur in a pool of random integers."),
	)
	err := cli.run(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}

func (c *cli) config() poolprobe.Config {
	return poolprobe.Config{
		PoolSize: c.PoolSize,
		Min:      c.Min,
		Max:      c.Max,
		Probes:   c.Probes,
		Seed:     c.Seed,
	}
}

func (c *cli) run(stdout, stderr io.Writer) error {
	res, err := poolprobe.Run(c.config())
	if err != nil {
		return err
	}

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		attrs := []any{
			slog.Int("pool_size", res.PoolSize),
			slog.Int("min", res.Min),
			slog.Int("max", res.Max),
			slog.Int("probes", res.Probes),
			slog.Int("hits", res.Hits),
			slog.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)),
			slog.Duration("elapsed", res.Elapsed),
		}
		if res.Seeded {
			attrs = append(attrs, slog.Uint64("seed", res.Seed))
		}
		logger.Info("run complete", attrs...)
	}

	_, err = fmt.Fprintln(stdout, res.Hits)
	return err
}
