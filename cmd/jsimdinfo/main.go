// Command jsimdinfo reports which JPEG kernels run on vector hardware.
//
// Usage:
//
//	jsimdinfo [flags] [op-name ...]
//
// Without arguments it prints the resolved capabilities and every
// operation.
//
// Examples:
//
//	jsimdinfo
//	jsimdinfo idct_islow idct_float
//	jsimdinfo -check 1000 -seed 7
//	JSIMD_FORCENONE=1 jsimdinfo
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-jsimd/internal/cpu"
	"github.com/cwbudde/algo-jsimd/internal/reference"
	"github.com/cwbudde/algo-jsimd/internal/testutil"
	"github.com/cwbudde/algo-jsimd/jsimd"
)

func main() {
	check := flag.Int("check", 0, "decode N random blocks with idct_islow and compare against the exact transform")
	seed := flag.Int64("seed", 1, "seed of the first random block for -check")
	amp := flag.Int("amp", 64, "coefficient amplitude for -check")
	ops := flag.Bool("ops", true, "print the per-operation table")
	verbose := flag.Bool("v", false, "log capability resolution to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jsimdinfo [flags] [op-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the vector capabilities of this host and which JPEG\n")
		fmt.Fprintf(os.Stderr, "operations are accelerated. Op names restrict the table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %s, %s, %s, %s\n",
			cpu.EnvForceNone, cpu.EnvForceMSA, cpu.EnvNoHuffEnc, cpu.EnvCPUInfo)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  jsimdinfo\n")
		fmt.Fprintf(os.Stderr, "  jsimdinfo idct_islow idct_float\n")
		fmt.Fprintf(os.Stderr, "  jsimdinfo -ops=false -check 1000\n")
	}
	flag.Parse()

	if *verbose {
		jsimd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	d := jsimd.Default()
	printFeatures(d)

	if *ops {
		selected, err := selectOps(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printOps(d, selected)
	}

	if *check > 0 {
		if err := runCheck(d, *check, *seed, *amp); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printFeatures(d *jsimd.Dispatcher) {
	f := d.Features()
	fmt.Printf("arch:         %s\n", f.Architecture)
	fmt.Printf("capabilities: %s (source: %s)\n", f.Caps, f.Source)
	if f.ForceGeneric {
		fmt.Printf("forced:       generic\n")
	}
	fmt.Printf("host vector:  %s\n", cpu.HostVectorUnit())
	fmt.Printf("backend:      %s\n", d.Backend())
	fmt.Println()
}

func selectOps(names []string) ([]jsimd.Op, error) {
	if len(names) == 0 {
		return jsimd.Ops(), nil
	}

	byName := make(map[string]jsimd.Op)
	for _, op := range jsimd.Ops() {
		byName[op.String()] = op
	}

	var result []jsimd.Op
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		op, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown operation %q\n", name)
			continue
		}
		result = append(result, op)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no matching operations")
	}
	return result, nil
}

func printOps(d *jsimd.Dispatcher, ops []jsimd.Op) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Operation\tAccelerated\n---------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, op := range ops {
		state := "no"
		if d.Can(op) {
			state = "yes"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", op, state); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// runCheck decodes n random blocks through the bound islow kernel, or the
// scalar reference when none is bound, and reports the error against the
// exact floating-point transform.
func runCheck(d *jsimd.Dispatcher, n int, seed int64, amp int) error {
	exact, err := reference.NewExactIDCT()
	if err != nil {
		return err
	}

	path := "scalar"
	if d.CanIDCTIslow() {
		path = d.Backend()
	}

	var stats reference.Stats
	for i := range n {
		s := seed + int64(i)
		coef := testutil.RandomBlock(s, amp)
		quant := testutil.RandomQuant(s, 4)

		out := testutil.SampleRows(8, 8, 0)
		if d.CanIDCTIslow() {
			comp, block := toComponent(quant), toBlock(coef)
			d.IDCTIslow(nil, comp, block, out, 0)
		} else {
			reference.IDCTIslow(coef[:], quant[:], out, 0)
		}

		var in, want [64]float64
		reference.Dequantize(&in, coef[:], quant[:])
		if err := exact.Transform(&want, &in); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		stats.Add(reference.Compare(out, 0, &want))
	}

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Path\tBlocks\tPeak\tMSE\n----\t------\t----\t---\n")
	_, _ = fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.6f\n", path, stats.Blocks, stats.Peak, stats.MSE())
	return tw.Flush()
}

func toComponent(quant *[64]int16) *jsimd.Component {
	var q [64]jsimd.IslowMult
	for i, v := range quant {
		q[i] = jsimd.IslowMult(v)
	}
	return &jsimd.Component{QuantTable: &q}
}

func toBlock(coef *[64]int16) *jsimd.Block {
	var b jsimd.Block
	for i, v := range coef {
		b[i] = jsimd.Coef(v)
	}
	return &b
}
