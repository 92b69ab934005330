package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/jcalabro/poolprobe"
)

func parse(t *testing.T, args ...string) *cli {
	t.Helper()

	var c cli
	parser, err := kong.New(&c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &c
}

func TestDefaults(t *testing.T) {
	c := parse(t)

	if c.Seed != nil {
		t.Errorf("expected no seed by default, got %d", *c.Seed)
	}
	if got := c.config(); got != poolprobe.DefaultConfig() {
		t.Errorf("default flags = %+v, want %+v", got, poolprobe.DefaultConfig())
	}
}

func TestRunPrintsSingleInteger(t *testing.T) {
	c := parse(t, "--seed", "1", "--pool-size", "1000")

	var stdout, stderr bytes.Buffer
	if err := c.run(&stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	out := stdout.String()
	if !strings.HasSuffix(out, "\n") || strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line of output, got %q", out)
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output %q is not an integer: %v", out, err)
	}
	if n < 0 || n > poolprobe.DefaultProbes {
		t.Errorf("count %d outside [0, %d]", n, poolprobe.DefaultProbes)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected no stderr output without --verbose, got %q", stderr.String())
	}
}

func TestRunSeededIsReproducible(t *testing.T) {
	args := []string{"--seed", "42", "--pool-size", "5000", "--max", "20000", "--probes", "2000"}

	var first, second bytes.Buffer
	if err := parse(t, args...).run(&first, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := parse(t, args...).run(&second, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	if first.String() != second.String() {
		t.Errorf("seeded runs differ: %q vs %q", first.String(), second.String())
	}
}

func TestRunEmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty pool", []string{"--pool-size", "0"}},
		{"no probes", []string{"--probes", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := parse(t, tt.args...).run(&stdout, &bytes.Buffer{}); err != nil {
				t.Fatal(err)
			}
			if stdout.String() != "0\n" {
				t.Errorf("expected %q, got %q", "0\n", stdout.String())
			}
		})
	}
}

func TestRunVerbose(t *testing.T) {
	c := parse(t, "-v", "--seed", "9", "--pool-size", "10")

	var stdout, stderr bytes.Buffer
	if err := c.run(&stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	log := stderr.String()
	for _, want := range []string{"run complete", "pool_size=10", "seed=9", "fingerprint="} {
		if !strings.Contains(log, want) {
			t.Errorf("expected %q in log output %q", want, log)
		}
	}
}

func TestRunInvalidRange(t *testing.T) {
	c := parse(t, "--min", "10", "--max", "5")

	err := c.run(&bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, poolprobe.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestRunInvalidPoolSize(t *testing.T) {
	c := parse(t, "--pool-size=-1")

	err := c.run(&bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, poolprobe.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
}
