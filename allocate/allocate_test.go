package allocate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transport/allocate"
	"github.com/katalvlaran/transport/matrix"
)

// TestNorthwestCorner_Small pins the diagonal sweep on the 2×3 fixture.
func TestNorthwestCorner_Small(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.NorthwestCorner(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{Supplier: 0, Consumer: 0, Quantity: 10},
		{Supplier: 0, Consumer: 1, Quantity: 10},
		{Supplier: 1, Consumer: 1, Quantity: 15},
		{Supplier: 1, Consumer: 2, Quantity: 15},
	}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 280.0, cost)
}

// TestNorthwestCorner_Textbook checks R+C-1 cells and the textbook cost.
func TestNorthwestCorner_Textbook(t *testing.T) {
	f := textbookFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.NorthwestCorner(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{0, 0, 5}, {0, 1, 2}, {1, 1, 6}, {1, 2, 3}, {2, 2, 4}, {2, 3, 14},
	}, plan)
	assert.Len(t, plan, len(f.supply)+len(f.demand)-1)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 1015.0, cost)
}

// TestNorthwestCorner_DegenerateAdvancesBoth verifies that a simultaneous
// exhaustion moves both cursors and no zero entry is produced.
func TestNorthwestCorner_DegenerateAdvancesBoth(t *testing.T) {
	costs := dense(t, [][]float64{{1, 2}, {3, 4}})

	plan, err := allocate.NorthwestCorner(costs, []float64{10, 10}, []float64{10, 10})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 10}, {1, 1, 10}}, plan)
}

// TestMinimumCost_Small pins the cost-ascending pass on the 2×3 fixture.
func TestMinimumCost_Small(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.MinimumCost(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{Supplier: 1, Consumer: 1, Quantity: 25},
		{Supplier: 0, Consumer: 0, Quantity: 10},
		{Supplier: 0, Consumer: 2, Quantity: 10},
		{Supplier: 1, Consumer: 2, Quantity: 5},
	}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 240.0, cost)
}

// TestMinimumCost_Textbook checks the order and the textbook cost of 814.
func TestMinimumCost_Textbook(t *testing.T) {
	f := textbookFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.MinimumCost(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{2, 1, 8}, {0, 3, 7}, {2, 3, 7}, {1, 2, 7}, {2, 0, 3}, {1, 0, 2},
	}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 814.0, cost)
}

// TestMinimumCost_TieBreak verifies that equal costs fall back to
// (supplier, consumer) order.
func TestMinimumCost_TieBreak(t *testing.T) {
	costs := dense(t, [][]float64{{5, 5}, {5, 5}})

	plan, err := allocate.MinimumCost(costs, []float64{3, 4}, []float64{4, 3})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 3}, {1, 0, 1}, {1, 1, 3}}, plan)
}

// TestVogel_Small pins the penalty-driven order on the 2×3 fixture; the
// first step picks column 1 (penalty 3) over the rows (penalty 2).
func TestVogel_Small(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.Vogel(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{Supplier: 1, Consumer: 1, Quantity: 25},
		{Supplier: 0, Consumer: 0, Quantity: 10},
		{Supplier: 1, Consumer: 2, Quantity: 5},
		{Supplier: 0, Consumer: 2, Quantity: 10},
	}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 240.0, cost)
}

// TestVogel_Textbook pins the full selection sequence and the cost of 779.
func TestVogel_Textbook(t *testing.T) {
	f := textbookFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.Vogel(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{
		{2, 1, 8}, {0, 0, 5}, {2, 3, 10}, {0, 3, 2}, {1, 3, 2}, {1, 2, 7},
	}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 779.0, cost)
}

// TestVogel_RowWinsPenaltyTie verifies that equal best row and column
// penalties select the row, and that the lowest row index wins among rows.
func TestVogel_RowWinsPenaltyTie(t *testing.T) {
	// Row penalties 2 and 2, column penalties 1 and 1: row 0 goes first.
	costs := dense(t, [][]float64{{1, 3}, {2, 4}})
	plan, err := allocate.Vogel(costs, []float64{5, 5}, []float64{5, 5})
	require.NoError(t, err)
	require.NotEmpty(t, plan)
	assert.Equal(t, allocate.Allocation{Supplier: 0, Consumer: 0, Quantity: 5}, plan[0])

	// Equal row and column penalty (both 2): the row must win.
	costs = dense(t, [][]float64{{1, 3}, {3, 1}})
	plan, err = allocate.Vogel(costs, []float64{4, 6}, []float64{6, 4})
	require.NoError(t, err)
	require.NotEmpty(t, plan)
	assert.Equal(t, allocate.Allocation{Supplier: 0, Consumer: 0, Quantity: 4}, plan[0])
}

// TestVogel_SingleRow: the row penalty is 0 while each column scores its
// single cost, so columns are served first in index order.
func TestVogel_SingleRow(t *testing.T) {
	costs := dense(t, [][]float64{{1, 1}})
	plan, err := allocate.Vogel(costs, []float64{6}, []float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 2}, {0, 1, 4}}, plan)
}

// TestVogel_ImbalanceTerminates ensures the loop ends under excess supply.
func TestVogel_ImbalanceTerminates(t *testing.T) {
	costs := dense(t, [][]float64{{1}, {2}})

	plan, err := allocate.Vogel(costs, []float64{10, 5}, []float64{8})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{1, 0, 5}, {0, 0, 3}}, plan)
	assert.ErrorIs(t, allocate.Verify(plan, []float64{10, 5}, []float64{8}, tolExact), allocate.ErrSupplyMismatch)
}

// TestSequentialSteps_Small checks the row-major scan on the 2×3 fixture.
func TestSequentialSteps_Small(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	plan, err := allocate.SequentialSteps(costs, f.supply, f.demand)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 10}, {0, 1, 10}, {1, 1, 15}, {1, 2, 15}}, plan)
}

// TestSequentialSteps_SkipsExhaustedConsumers verifies that a zero-demand
// consumer is skipped rather than receiving an empty entry.
func TestSequentialSteps_SkipsExhaustedConsumers(t *testing.T) {
	costs := dense(t, [][]float64{{1, 1, 1}, {1, 1, 1}})

	plan, err := allocate.SequentialSteps(costs, []float64{4, 6}, []float64{5, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 4}, {1, 0, 1}, {1, 2, 5}}, plan)
}

// TestModifiedDistribution_MatchesMinimumCost checks the default entry point.
func TestModifiedDistribution_MatchesMinimumCost(t *testing.T) {
	for _, f := range []fixture{smallFixture(), textbookFixture()} {
		costs := dense(t, f.costs)
		want, err := allocate.MinimumCost(costs, f.supply, f.demand)
		require.NoError(t, err)
		got, err := allocate.ModifiedDistribution(costs, f.supply, f.demand)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestModifiedDistributionWithPrior_EmptyPrior equals the default entry point.
func TestModifiedDistributionWithPrior_EmptyPrior(t *testing.T) {
	f := textbookFixture()
	costs := dense(t, f.costs)

	want, err := allocate.ModifiedDistribution(costs, f.supply, f.demand)
	require.NoError(t, err)

	got, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, allocate.Plan{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestModifiedDistributionWithPrior_Seeded replays a prior entry first and
// completes greedily around it.
func TestModifiedDistributionWithPrior_Seeded(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	prior := allocate.Plan{{Supplier: 0, Consumer: 2, Quantity: 15}}
	plan, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, prior)
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 2, 15}, {1, 1, 25}, {0, 0, 5}, {1, 0, 5}}, plan)
	require.NoError(t, allocate.Verify(plan, f.supply, f.demand, tolExact))

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, 240.0, cost)
}

// TestModifiedDistributionWithPrior_FullPlan replays a complete plan verbatim.
func TestModifiedDistributionWithPrior_FullPlan(t *testing.T) {
	f := textbookFixture()
	costs := dense(t, f.costs)

	nw, err := allocate.NorthwestCorner(costs, f.supply, f.demand)
	require.NoError(t, err)

	plan, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, nw)
	require.NoError(t, err)
	assert.Equal(t, nw, plan)
}

// TestModifiedDistributionWithPrior_Errors covers every fail-fast path.
func TestModifiedDistributionWithPrior_Errors(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	cases := []struct {
		name  string
		prior allocate.Plan
		want  error
	}{
		{"ExceedsSupply", allocate.Plan{{0, 0, 25}}, allocate.ErrAllocationExceedsCapacity},
		{"ExceedsDemand", allocate.Plan{{1, 1, 26}}, allocate.ErrAllocationExceedsCapacity},
		{"ExceedsRemaining", allocate.Plan{{0, 0, 10}, {1, 0, 1}}, allocate.ErrAllocationExceedsCapacity},
		{"OutOfRange", allocate.Plan{{2, 0, 1}}, allocate.ErrIndexOutOfRange},
		{"Negative", allocate.Plan{{0, 0, -1}}, allocate.ErrNegativeQuantity},
		{"NaN", allocate.Plan{{0, 0, math.NaN()}}, allocate.ErrNaNInf},
		{"Duplicate", allocate.Plan{{0, 0, 1}, {0, 0, 1}}, allocate.ErrDuplicateCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, tc.prior)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, plan, "no partial plan on failure")
		})
	}
}

// TestModifiedDistributionWithPrior_CapacityErrorDetail inspects the typed error.
func TestModifiedDistributionWithPrior_CapacityErrorDetail(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	_, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, allocate.Plan{{0, 0, 25}})
	var capErr *allocate.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 0, capErr.Supplier)
	assert.Equal(t, 0, capErr.Consumer)
	assert.Equal(t, 25.0, capErr.Requested)
	assert.Equal(t, 20.0, capErr.Supply)
	assert.Equal(t, 10.0, capErr.Demand)
}

// TestModifiedDistributionWithPrior_ZeroEntriesIgnored drops empty seeds.
func TestModifiedDistributionWithPrior_ZeroEntriesIgnored(t *testing.T) {
	f := smallFixture()
	costs := dense(t, f.costs)

	want, err := allocate.ModifiedDistribution(costs, f.supply, f.demand)
	require.NoError(t, err)

	got, err := allocate.ModifiedDistributionWithPrior(costs, f.supply, f.demand, allocate.Plan{{0, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestEpsilon_TinyResidueNotRecorded shows Epsilon absorbing float dust.
func TestEpsilon_TinyResidueNotRecorded(t *testing.T) {
	costs := dense(t, [][]float64{{1}, {1}})
	supply := []float64{5, 1e-12}
	demand := []float64{5 + 1e-12}

	exact, err := allocate.NorthwestCorner(costs, supply, demand)
	require.NoError(t, err)
	require.Len(t, exact, 2)
	assert.InDelta(t, 1e-12, exact[1].Quantity, 1e-15)

	loose, err := allocate.NorthwestCornerWithOptions(costs, supply, demand, allocate.Options{Epsilon: 1e-9})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 5}}, loose)
}

// TestInputValidation covers the shared workspace checks.
func TestInputValidation(t *testing.T) {
	costs := dense(t, [][]float64{{1, 2}, {3, 4}})

	_, err := allocate.MinimumCost(nil, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, allocate.ErrNilMatrix)

	_, err = allocate.MinimumCost(costs, []float64{1}, []float64{1, 0})
	assert.ErrorIs(t, err, allocate.ErrDimensionMismatch)

	_, err = allocate.MinimumCost(costs, []float64{1, 1}, []float64{2})
	assert.ErrorIs(t, err, allocate.ErrDimensionMismatch)

	_, err = allocate.Vogel(costs, []float64{-1, 3}, []float64{1, 1})
	assert.ErrorIs(t, err, allocate.ErrNegativeQuantity)

	_, err = allocate.SequentialSteps(costs, []float64{1, 1}, []float64{math.NaN(), 2})
	assert.ErrorIs(t, err, allocate.ErrNaNInf)

	_, err = allocate.NorthwestCorner(sliceMatrix{a: [][]float64{{math.NaN()}}}, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, allocate.ErrNaNInf)

	_, err = allocate.NorthwestCorner(sliceMatrix{}, nil, nil)
	assert.ErrorIs(t, err, allocate.ErrEmptyProblem)

	_, err = allocate.NorthwestCornerWithOptions(costs, []float64{1, 1}, []float64{1, 1}, allocate.Options{Epsilon: -1})
	assert.ErrorIs(t, err, allocate.ErrInvalidOptions)
}

// TestNegativeCostsAccepted: negative costs are not validated away.
func TestNegativeCostsAccepted(t *testing.T) {
	costs := dense(t, [][]float64{{-2, 1}, {3, -1}})

	plan, err := allocate.MinimumCost(costs, []float64{5, 5}, []float64{5, 5})
	require.NoError(t, err)
	assert.Equal(t, allocate.Plan{{0, 0, 5}, {1, 1, 5}}, plan)

	cost, err := allocate.TotalCost(plan, costs)
	require.NoError(t, err)
	assert.Equal(t, -15.0, cost)
}

// TestTotalCost_Errors covers nil and out-of-range inputs.
func TestTotalCost_Errors(t *testing.T) {
	_, err := allocate.TotalCost(allocate.Plan{{0, 0, 1}}, nil)
	assert.ErrorIs(t, err, allocate.ErrNilMatrix)

	costs := dense(t, [][]float64{{1}})
	_, err = allocate.TotalCost(allocate.Plan{{0, 1, 1}}, costs)
	assert.ErrorIs(t, err, allocate.ErrIndexOutOfRange)

	cost, err := allocate.TotalCost(nil, costs)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
}

// TestVerify_Errors exercises every invariant Verify enforces.
func TestVerify_Errors(t *testing.T) {
	supply := []float64{5, 5}
	demand := []float64{4, 6}

	assert.NoError(t, allocate.Verify(allocate.Plan{{0, 0, 4}, {0, 1, 1}, {1, 1, 5}}, supply, demand, tolExact))
	assert.ErrorIs(t, allocate.Verify(allocate.Plan{{0, 2, 1}}, supply, demand, tolExact), allocate.ErrIndexOutOfRange)
	assert.ErrorIs(t, allocate.Verify(allocate.Plan{{0, 0, 0}}, supply, demand, tolExact), allocate.ErrNonPositiveQuantity)
	assert.ErrorIs(t, allocate.Verify(allocate.Plan{{0, 0, 2}, {0, 0, 2}}, supply, demand, tolExact), allocate.ErrDuplicateCell)
	assert.ErrorIs(t, allocate.Verify(allocate.Plan{{0, 0, 4}, {1, 1, 6}}, supply, demand, tolExact), allocate.ErrSupplyMismatch)
	assert.ErrorIs(t, allocate.Verify(allocate.Plan{{0, 0, 5}, {1, 1, 5}}, supply, demand, tolExact), allocate.ErrDemandMismatch)
}

// TestLookup resolves ids and rejects unknown ones.
func TestLookup(t *testing.T) {
	m, err := allocate.Lookup(allocate.VogelID)
	require.NoError(t, err)
	assert.Equal(t, "Vogel Approximation", m.Name)

	_, err = allocate.Lookup("stepping-stone")
	assert.ErrorIs(t, err, allocate.ErrUnknownMethod)

	ids := make([]string, 0, 5)
	for _, m := range allocate.Methods() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"northwest", "vogel", "mincost", "sequential", "modi"}, ids)
}

// TestMethod_ZeroValue: a Method not taken from the registry fails cleanly.
func TestMethod_ZeroValue(t *testing.T) {
	costs := dense(t, [][]float64{{1}})

	plan, err := allocate.Method{}.Solve(costs, []float64{1}, []float64{1}, allocate.DefaultOptions())
	assert.ErrorIs(t, err, allocate.ErrUnknownMethod)
	assert.Nil(t, plan)

	_, err = allocate.Method{ID: "custom"}.Func(allocate.DefaultOptions())(costs, []float64{1}, []float64{1})
	assert.ErrorIs(t, err, allocate.ErrUnknownMethod)
}

// TestTypedNilMatrix: a nil *matrix.Dense behind the interface is rejected.
func TestTypedNilMatrix(t *testing.T) {
	var costs *matrix.Dense
	for _, m := range allocate.Methods() {
		_, err := m.Solve(costs, []float64{1}, []float64{1}, allocate.DefaultOptions())
		assert.ErrorIs(t, err, allocate.ErrNilMatrix, m.ID)
	}
}

// TestOptionsValidate covers the exported options check.
func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, allocate.DefaultOptions().Validate())
	assert.NoError(t, allocate.Options{Epsilon: 1e-9}.Validate())
	assert.ErrorIs(t, allocate.Options{Epsilon: -1}.Validate(), allocate.ErrInvalidOptions)
	assert.ErrorIs(t, allocate.Options{Epsilon: math.Inf(1)}.Validate(), allocate.ErrInvalidOptions)
	assert.ErrorIs(t, allocate.Options{Epsilon: math.NaN()}.Validate(), allocate.ErrInvalidOptions)
}
