// Package poolprobe measures how many values of a probe range occur in a
// pool of random integers.
//
// A pool is an ordered, immutable sequence of integers drawn uniformly with
// replacement from an inclusive range. Membership is decided by a plain linear
// scan: no sorting, hashing or other index is built, so every check costs time
// proportional to the pool size. That cost is the point of the program.
//
// # Usage
//
// The default run draws 100,000 values from [0, 1,000,000] and checks the
// probe values 0 through 9,999:
//
//	pool, err := poolprobe.Generate(poolprobe.DefaultPoolSize)
//	if err != nil {
//		return err
//	}
//	hits := poolprobe.Count(pool, poolprobe.DefaultProbes)
//
// [Run] wraps the same steps and reports a [Result].
//
// # Reproducibility
//
// Pools are not reproducible by default. Pass [WithSeed] to [NewGenerator] for
// a deterministic sequence, or build a pool from fixed values with
// [FromValues]. Either way, [Count] is then exactly predictable.
//
// [Pool.Fingerprint] hashes a pool's binary encoding with xxh3, which makes
// two pools cheap to compare in logs.
//
// # Thread Safety
//
// A [Pool] is never mutated after construction and may be read from any
// number of goroutines. A [Generator] is NOT safe for concurrent use.
package poolprobe
