package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-pivotsort/internal/gen"
	"github.com/ajroetker/go-pivotsort/sort"
)

// elemTypes are the element type names a run may ask for.
var elemTypes = []string{"float32", "float64", "int32", "int64"}

// Plan is the TOML form of a benchmark session:
//
//	repeat = 5
//	seed = 42
//	workers = 0
//
//	[[run]]
//	strategy = ["bucket", "quad-pivot"]
//	size = [1000, 1000000]
//	dist = ["random", "sorted"]
//	type = "float32"
//	pivots = 8
type Plan struct {
	Repeat  int       `toml:"repeat"`
	Seed    uint64    `toml:"seed"`
	Workers int       `toml:"workers"`
	Runs    []RunSpec `toml:"run"`
}

// RunSpec describes the cross product of its lists.
type RunSpec struct {
	Strategy []string `toml:"strategy"`
	Size     []int    `toml:"size"`
	Dist     []string `toml:"dist"`
	Type     string   `toml:"type"`
	Pivots   int      `toml:"pivots"`
}

// Case is a single timed configuration.
type Case struct {
	Strategy sort.Strategy
	Size     int
	Dist     gen.Distribution
	Type     string
	Pivots   int
}

func loadPlan(path string) (*Plan, error) {
	var p Plan
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, errors.Wrapf(err, "decode plan %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("plan %s: unknown keys %v", path, undecoded)
	}
	return &p, nil
}

// cases validates the plan and expands every run into its cases, in the
// order strategy, distribution, size.
func (p *Plan) cases() ([]Case, error) {
	if p.Repeat <= 0 {
		p.Repeat = 1
	}
	if len(p.Runs) == 0 {
		return nil, errors.New("plan has no runs")
	}
	var out []Case
	for i, r := range p.Runs {
		cs, err := r.cases()
		if err != nil {
			return nil, errors.Wrapf(err, "run %d", i)
		}
		out = append(out, cs...)
	}
	return out, nil
}

func (r RunSpec) cases() ([]Case, error) {
	if len(r.Strategy) == 0 {
		r.Strategy = sort.StrategyNames()
	}
	if len(r.Dist) == 0 {
		r.Dist = []string{gen.Random.String()}
	}
	if r.Type == "" {
		r.Type = "float32"
	}
	if r.Pivots == 0 {
		r.Pivots = sort.DefaultBucketPivots
	}
	if len(r.Size) == 0 {
		return nil, errors.New("no sizes")
	}
	if !lo.Contains(elemTypes, r.Type) {
		return nil, errors.Errorf("unknown type %q (want one of %v)", r.Type, elemTypes)
	}
	if r.Pivots < sort.MinBucketPivots || r.Pivots > sort.MaxBucketPivots {
		return nil, errors.Errorf("pivots %d outside [%d, %d]", r.Pivots, sort.MinBucketPivots, sort.MaxBucketPivots)
	}
	if bad, ok := lo.Find(r.Size, func(n int) bool { return n < 0 }); ok {
		return nil, errors.Errorf("negative size %d", bad)
	}

	strategies := make([]sort.Strategy, 0, len(r.Strategy))
	for _, name := range r.Strategy {
		s, err := sort.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	dists := make([]gen.Distribution, 0, len(r.Dist))
	for _, name := range r.Dist {
		d, err := gen.ParseDistribution(name)
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}

	return lo.FlatMap(strategies, func(s sort.Strategy, _ int) []Case {
		return lo.FlatMap(dists, func(d gen.Distribution, _ int) []Case {
			return lo.Map(r.Size, func(n int, _ int) Case {
				return Case{Strategy: s, Size: n, Dist: d, Type: r.Type, Pivots: r.Pivots}
			})
		})
	}), nil
}
