package poolprobe

import "time"

// CountRange returns how many values in [start, end) are present in the pool.
// An empty or inverted range yields 0.
func CountRange(p *Pool, start, end int) int {
	var hits int
	for v := start; v < end; v++ {
		if Contains(p, v) {
			hits++
		}
	}
	return hits
}

// Count returns how many of the probe values 0 through probes-1 are present
// in the pool. The result is always within [0, max(probes, 0)].
func Count(p *Pool, probes int) int {
	return CountRange(p, 0, probes)
}

// Config describes a full run.
type Config struct {
	PoolSize int
	Min      int
	Max      int
	Probes   int
	// Seed makes the pool reproducible when non-nil.
	Seed *uint64
}

// DefaultConfig returns the configuration of an unseeded default run.
func DefaultConfig() Config {
	return Config{
		PoolSize: DefaultPoolSize,
		Min:      DefaultMin,
		Max:      DefaultMax,
		Probes:   DefaultProbes,
	}
}

// Result holds the outcome of Run.
type Result struct {
	Hits        int
	Probes      int
	PoolSize    int
	Min         int
	Max         int
	Seed        uint64
	Seeded      bool
	Fingerprint uint64
	Elapsed     time.Duration
}

// Run generates a pool according to cfg and counts the probe values found in
// it. Elapsed covers generation and counting.
func Run(cfg Config) (Result, error) {
	opts := []Option{WithRange(cfg.Min, cfg.Max)}
	if cfg.Seed != nil {
		opts = append(opts, WithSeed(*cfg.Seed))
	}
	g := NewGenerator(opts...)

	start := time.Now()
	pool, err := g.Generate(cfg.PoolSize)
	if err != nil {
		return Result{}, err
	}
	hits := Count(pool, cfg.Probes)
	elapsed := time.Since(start)

	seed, seeded := g.Seed()
	return Result{
		Hits:        hits,
		Probes:      cfg.Probes,
		PoolSize:    pool.Len(),
		Min:         pool.Min(),
		Max:         pool.Max(),
		Seed:        seed,
		Seeded:      seeded,
		Fingerprint: pool.Fingerprint(),
		Elapsed:     elapsed,
	}, nil
}
