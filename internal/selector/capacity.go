package selector

import "github.com/Ramsha-Haris/table/internal/model"

// Capacity sums the capacity of every table whose code is selected.
func Capacity(tables []model.Table, selected model.Codes) int {
	total := 0
	for _, t := range tables {
		if selected.Contains(t.CodeString()) {
			total += t.Capacity
		}
	}
	return total
}

// Remaining is the number of guests not yet seated, never negative.
func Remaining(guests, capacity int) int {
	return max(guests-capacity, 0)
}

// Toggle adds code when absent and removes it when present. The input is not
// modified.
func Toggle(selected model.Codes, code string) model.Codes {
	if selected.Contains(code) {
		out := make(model.Codes, 0, len(selected))
		for _, c := range selected {
			if c != code {
				out = append(out, c)
			}
		}
		return out
	}
	return append(append(model.Codes(nil), selected...), code)
}
