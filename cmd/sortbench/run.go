package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/cheynewallace/tabby"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ajroetker/go-pivotsort/hwy"
	"github.com/ajroetker/go-pivotsort/hwy/contrib/workerpool"
	"github.com/ajroetker/go-pivotsort/internal/gen"
	"github.com/ajroetker/go-pivotsort/sort"
	"github.com/ajroetker/go-pivotsort/sort/psort"
)

const (
	flagConfig   = "config"
	flagStrategy = "strategy"
	flagSize     = "size"
	flagDist     = "dist"
	flagType     = "type"
	flagPivots   = "pivots"
	flagRepeat   = "repeat"
	flagSeed     = "seed"
	flagWorkers  = "workers"
)

// ErrUnsorted is returned when a strategy produced output out of order.
var ErrUnsorted = errors.New("output not sorted")

// Result is the outcome of one Case.
type Result struct {
	Case
	Best  time.Duration
	Mean  time.Duration
	Stats sort.Stats
}

func newRunCommand(logger func() *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time strategies on generated inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := planFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			cases, err := plan.cases()
			if err != nil {
				return err
			}
			log := logger()
			log.Info("starting",
				zap.Int("cases", len(cases)),
				zap.Int("repeat", plan.Repeat),
				zap.Stringer("simd", hwy.CurrentLevel()),
				zap.Int("workers", plan.Workers))

			r := newRunner(plan, log)
			defer r.close()
			results, err := r.runAll(cmd.Context(), cases)
			printResults(cmd.OutOrStdout(), results)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringP(flagConfig, "c", "", "TOML plan file; replaces the run flags below")
	flags.StringSliceP(flagStrategy, "s", nil, "strategies to run (default all)")
	flags.IntSliceP(flagSize, "n", []int{1000, 100000}, "input sizes")
	flags.StringSliceP(flagDist, "d", []string{gen.Random.String()}, "input distributions")
	flags.StringP(flagType, "t", "float32", "element type: float32, float64, int32 or int64")
	flags.IntP(flagPivots, "k", sort.DefaultBucketPivots, "bucket strategy pivot count")
	flags.IntP(flagRepeat, "r", 3, "timed repetitions per case")
	flags.Uint64(flagSeed, 1, "input generator seed")
	flags.IntP(flagWorkers, "w", 0, "sort on a pool of this many workers (0 sorts on one goroutine)")
	return cmd
}

func planFromFlags(flags *pflag.FlagSet) (*Plan, error) {
	if path, _ := flags.GetString(flagConfig); path != "" {
		return loadPlan(path)
	}
	var (
		p    Plan
		r    RunSpec
		errs []error
	)
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	var err error
	r.Strategy, err = flags.GetStringSlice(flagStrategy)
	collect(err)
	r.Size, err = flags.GetIntSlice(flagSize)
	collect(err)
	r.Dist, err = flags.GetStringSlice(flagDist)
	collect(err)
	r.Type, err = flags.GetString(flagType)
	collect(err)
	r.Pivots, err = flags.GetInt(flagPivots)
	collect(err)
	p.Repeat, err = flags.GetInt(flagRepeat)
	collect(err)
	p.Seed, err = flags.GetUint64(flagSeed)
	collect(err)
	p.Workers, err = flags.GetInt(flagWorkers)
	collect(err)
	if len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "read flags")
	}
	p.Runs = []RunSpec{r}
	return &p, nil
}

type runner struct {
	plan *Plan
	log  *zap.Logger
	pool *workerpool.Pool
}

func newRunner(plan *Plan, log *zap.Logger) *runner {
	r := &runner{plan: plan, log: log}
	if plan.Workers > 0 {
		r.pool = workerpool.New(plan.Workers)
	}
	return r
}

func (r *runner) close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// runAll runs cases in order and stops at the first failure or when ctx is
// cancelled. Results of completed cases are returned either way.
func (r *runner) runAll(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, errors.Wrap(err, "interrupted")
		}
		res, err := r.run(c)
		if err != nil {
			return results, errors.Wrapf(err, "%v/%s/%v/%d", c.Strategy, c.Type, c.Dist, c.Size)
		}
		r.log.Debug("case done",
			zap.Stringer("strategy", c.Strategy),
			zap.String("type", c.Type),
			zap.Stringer("dist", c.Dist),
			zap.Int("size", c.Size),
			zap.Duration("best", res.Best),
			zap.Int("partitions", res.Stats.Partitions))
		results = append(results, res)
	}
	return results, nil
}

func (r *runner) run(c Case) (Result, error) {
	switch c.Type {
	case "float32":
		return runCase[float32](r, c)
	case "float64":
		return runCase[float64](r, c)
	case "int32":
		return runCase[int32](r, c)
	case "int64":
		return runCase[int64](r, c)
	}
	return Result{}, errors.Errorf("unknown type %q", c.Type)
}

// sorter is what runCase needs from sort.Sorter and psort.Sorter.
type sorter[T sort.Sortable] interface {
	Sort(data []T)
	Stats() sort.Stats
}

func runCase[T sort.Sortable](r *runner, c Case) (Result, error) {
	var s sorter[T]
	if r.pool != nil {
		s = psort.New[T](r.pool, c.Strategy, sort.WithPivots(c.Pivots))
	} else {
		s = sort.New[T](c.Strategy, sort.WithPivots(c.Pivots))
	}
	orig := gen.Slice[T](c.Dist, c.Size, r.plan.Seed)
	data := make([]T, len(orig))

	res := Result{Case: c, Best: time.Duration(1<<63 - 1)}
	var total time.Duration
	for range r.plan.Repeat {
		copy(data, orig)
		start := time.Now()
		s.Sort(data)
		elapsed := time.Since(start)
		total += elapsed
		res.Best = min(res.Best, elapsed)
		if !sort.IsSorted(data) {
			return res, errors.WithStack(ErrUnsorted)
		}
	}
	if !sameMultiset(orig, data) {
		return res, errors.New("output is not a permutation of the input")
	}
	res.Mean = total / time.Duration(r.plan.Repeat)
	res.Stats = s.Stats()
	return res, nil
}

// sameMultiset compares against a stdlib sort of the input.
func sameMultiset[T sort.Sortable](orig, sorted []T) bool {
	want := slices.Clone(orig)
	slices.SortFunc(want, sort.Compare[T])
	for i := range want {
		if sort.Compare(want[i], sorted[i]) != 0 {
			return false
		}
	}
	return true
}

func printResults(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}
	t := tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
	t.AddHeader("STRATEGY", "TYPE", "DIST", "SIZE", "BEST", "MEAN", "NS/ELEM", "PARTITIONS", "DEPTH")
	for _, r := range results {
		nsPerElem := "-"
		if r.Size > 0 {
			nsPerElem = fmt.Sprintf("%.2f", float64(r.Best.Nanoseconds())/float64(r.Size))
		}
		name := r.Strategy.String()
		if r.Strategy == sort.Bucket {
			name = fmt.Sprintf("%s(%d)", name, r.Pivots)
		}
		t.AddLine(name, r.Type, r.Dist, r.Size, r.Best, r.Mean, nsPerElem, r.Stats.Partitions, r.Stats.MaxDepth)
	}
	t.Print()
}
