package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/covergap/covergap/internal/domain"
)

// netWorthChart draws the projection curve as a fixed-size ASCII grid with
// a right-aligned man-won axis. Negative net worth renders below the zero
// line like any other value.
type netWorthChart struct {
	Width  int
	Height int
}

func newNetWorthChart() *netWorthChart {
	return &netWorthChart{Width: 64, Height: 12}
}

func (c *netWorthChart) Render(points []domain.ProjectionPoint) string {
	if len(points) == 0 {
		return helpStyle.Render("no projection data")
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i], _ = p.NetWorth.Float64()
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if minVal == maxVal {
		maxVal = minVal + 1
	}
	pad := (maxVal - minVal) * 0.1
	minVal -= pad
	maxVal += pad

	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	plot := func(i int) (x, y int) {
		x = 0
		if len(values) > 1 {
			x = int(float64(i) / float64(len(values)-1) * float64(chartWidth-1))
		}
		y = c.Height - 1 - int((values[i]-minVal)/(maxVal-minVal)*float64(c.Height-1))
		return x, y
	}

	prevX, prevY := plot(0)
	grid[prevY][prevX] = '*'
	for i := 1; i < len(values); i++ {
		x, y := plot(i)
		drawLine(grid, prevX, prevY, x, y)
		grid[y][x] = '*'
		prevX, prevY = x, y
	}

	var out strings.Builder
	for i, row := range grid {
		yVal := maxVal - (float64(i)/float64(c.Height-1))*(maxVal-minVal)
		out.WriteString(fmt.Sprintf("%*s |%s\n", yAxisWidth-2, formatChartValue(yVal), string(row)))
	}

	// X axis: first, retirement-ish middle, last age.
	axis := fmt.Sprintf("%*s +%s", yAxisWidth-2, "", strings.Repeat("-", chartWidth))
	ages := fmt.Sprintf("%*s  %-d%*s%d", yAxisWidth-2, "", points[0].Age,
		chartWidth-len(fmt.Sprintf("%d%d", points[0].Age, points[len(points)-1].Age)), "",
		points[len(points)-1].Age)
	out.WriteString(axis + "\n" + ages)
	return out.String()
}

// drawLine fills vertical gaps between adjacent plotted points so the
// curve reads as connected.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	steps := maxInt(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		return
	}
	for s := 1; s < steps; s++ {
		x := x0 + (x1-x0)*s/steps
		y := y0 + (y1-y0)*s/steps
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = '.'
		}
	}
}

// formatChartValue renders a man-won amount compactly for the Y axis.
func formatChartValue(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}
	return fmt.Sprintf("%.0f", v)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
