package table

// Border overhead of a rendered table: the two outer border glyphs with
// their padding spaces (2 each) plus one " │ " separator per internal
// column boundary.
func borderOverhead(columns int) int {
	return 4 + 3*(columns-1)
}

// naturalWidths sizes each column to its longest raw content line, header
// included, with a floor of 1 so an all-empty column still occupies a
// grid cell. Used when no explicit render width was requested.
func naturalWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, column := range columns {
		widths[i] = longestLine(column)
	}
	for _, row := range rows {
		for i, cell := range row {
			if l := longestLine(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

// allocateWidths computes per-column budgets whose total, plus border
// overhead, equals target exactly. Every column starts at an equal share;
// the rounding error is then redistributed one character at a time against
// the current largest (or smallest) column, ties broken by first index.
// O(N·difference), fine for CLI-sized column counts.
func allocateWidths(columns int, target int) []int {
	widths := make([]int, columns)
	for i := range widths {
		widths[i] = target / columns
		if widths[i] < 1 {
			widths[i] = 1
		}
	}

	difference := sum(widths) + borderOverhead(columns) - target

	for difference > 0 {
		i := indexOfMax(widths)
		if widths[i] <= 1 {
			// Target narrower than one cell per column plus borders;
			// nothing left to take.
			break
		}
		widths[i]--
		difference--
	}

	for difference < 0 {
		widths[indexOfMin(widths)]++
		difference++
	}

	return widths
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func indexOfMax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func indexOfMin(values []int) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}

// longestLine returns the rune count of the longest physical line of text.
func longestLine(text string) int {
	longest := 0
	current := 0
	for _, r := range text {
		if r == '\n' {
			if current > longest {
				longest = current
			}
			current = 0
			continue
		}
		current++
	}
	if current > longest {
		longest = current
	}
	return longest
}
