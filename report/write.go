package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/transport/compare"
	"github.com/katalvlaran/transport/matrix"
	"github.com/katalvlaran/transport/problem"
)

// Column headers.
const (
	headMethod    = "METHOD"
	headCost      = "TOTAL COST"
	headRoutes    = "ROUTES"
	headSupplier  = "SUPPLIER"
	headConsumer  = "CONSUMER"
	headQuantity  = "QUANTITY"
	headUnitCost  = "UNIT COST"
	headLineCost  = "LINE COST"
	headSupply    = "SUPPLY"
	headDemand    = "DEMAND"
	headTotal     = "TOTAL"
	headCorner    = "S\\C"
	failedMessage = "failed: "
)

// Num formats a value the way every table prints it: shortest exact form,
// no exponent for ordinary magnitudes.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func row(cells ...string) string {
	return strings.Join(cells, "\t") + "\n"
}

// WriteSummary prints one line per method: name, total cost, routes used.
// Failed methods print their error instead of a cost.
func WriteSummary(w io.Writer, c *compare.Comparison) error {
	if c == nil {
		return ErrNilInput
	}
	tw := newTable(w)
	fmt.Fprint(tw, row(headMethod, headCost, headRoutes))
	for _, r := range c.Results {
		if !r.OK() {
			fmt.Fprint(tw, row(r.Method.Name, failedMessage+r.Err.Error(), "-"))
			continue
		}
		fmt.Fprint(tw, row(r.Method.Name, Num(r.Cost), strconv.Itoa(r.Routes())))
	}

	return tw.Flush()
}

// WriteProblem prints the cost grid with a supply column and a demand row.
func WriteProblem(w io.Writer, p *problem.Problem) error {
	if p == nil || p.Costs == nil {
		return ErrNilInput
	}
	grid, err := matrix.ToRows(p.Costs)
	if err != nil {
		return err
	}

	tw := newTable(w)
	cols := len(grid[0])
	header := append([]string{headCorner}, Labels(cols)...)
	fmt.Fprint(tw, row(append(header, headSupply)...))
	for i, line := range grid {
		cells := []string{Label(i)}
		for _, v := range line {
			cells = append(cells, Num(v))
		}
		cells = append(cells, Num(p.Supply[i]))
		fmt.Fprint(tw, row(cells...))
	}
	cells := []string{headDemand}
	for _, v := range p.Demand {
		cells = append(cells, Num(v))
	}
	cells = append(cells, Num(floats.Sum(p.Demand)))
	fmt.Fprint(tw, row(cells...))

	return tw.Flush()
}

// WriteDetail lists every allocation of r with its unit and line cost,
// followed by the total.
func WriteDetail(w io.Writer, p *problem.Problem, r compare.Result) error {
	if p == nil || p.Costs == nil {
		return ErrNilInput
	}
	if !r.OK() {
		_, err := fmt.Fprintf(w, "%s: %s%v\n", r.Method.Name, failedMessage, r.Err)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", r.Method.Name); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprint(tw, row(headSupplier, headConsumer, headQuantity, headUnitCost, headLineCost))
	for _, a := range r.Plan {
		unit, err := p.Costs.At(a.Supplier, a.Consumer)
		if err != nil {
			return err
		}
		fmt.Fprint(tw, row(Label(a.Supplier), Label(a.Consumer), Num(a.Quantity), Num(unit), Num(unit*a.Quantity)))
	}
	fmt.Fprint(tw, row(headTotal, "", "", "", Num(r.Cost)))

	return tw.Flush()
}

// WriteContribution prints the quantity·cost matrix of r with row totals.
func WriteContribution(w io.Writer, p *problem.Problem, r compare.Result) error {
	if p == nil || p.Costs == nil {
		return ErrNilInput
	}
	if !r.OK() {
		_, err := fmt.Fprintf(w, "%s: %s%v\n", r.Method.Name, failedMessage, r.Err)
		return err
	}
	m, err := Contribution(r.Plan, p.Costs)
	if err != nil {
		return err
	}

	rows, cols := m.Dims()
	totals := RowTotals(m)
	tw := newTable(w)
	header := append([]string{headSupplier}, Labels(cols)...)
	fmt.Fprint(tw, row(append(header, headTotal)...))
	for i := 0; i < rows; i++ {
		cells := []string{Label(i)}
		for _, v := range m.RawRowView(i) {
			cells = append(cells, Num(v))
		}
		cells = append(cells, Num(totals[i]))
		fmt.Fprint(tw, row(cells...))
	}
	last := make([]string, cols+2)
	last[0], last[cols+1] = headTotal, Num(floats.Sum(totals))
	fmt.Fprint(tw, row(last...))

	return tw.Flush()
}
