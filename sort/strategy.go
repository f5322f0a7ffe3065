package sort

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Strategy selects the partitioning scheme a Sorter uses.
type Strategy int

const (
	Hoare Strategy = iota
	HoareBlock
	Lomuto
	LomutoBlock
	DualPivot
	DualPivotBlock
	DualPivotRotate
	TriplePivot
	QuadPivot
	Bucket
)

var strategyNames = map[Strategy]string{
	Hoare:           "hoare",
	HoareBlock:      "hoare-block",
	Lomuto:          "lomuto",
	LomutoBlock:     "lomuto-block",
	DualPivot:       "dual-pivot",
	DualPivotBlock:  "dual-pivot-block",
	DualPivotRotate: "dual-pivot-rotate",
	TriplePivot:     "triple-pivot",
	QuadPivot:       "quad-pivot",
	Bucket:          "bucket",
}

var strategyByName = lo.Invert(strategyNames)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown strategy")

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy returns the strategy with the given name. Matching ignores
// case and accepts '_' in place of '-'.
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	s, ok := strategyByName[norm]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownStrategy, "%q (want one of %s)", name, strings.Join(StrategyNames(), ", "))
	}
	return s, nil
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	all := lo.Keys(strategyNames)
	slices.Sort(all)
	return all
}

// StrategyNames returns the names of Strategies, in the same order.
func StrategyNames() []string {
	return lo.Map(Strategies(), func(s Strategy, _ int) string { return s.String() })
}
