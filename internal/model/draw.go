package model

import "time"

// Draw is one historical lottery draw. Numbers are kept sorted ascending.
type Draw struct {
	Contest int
	Date    time.Time
	Numbers []int
}

// Sum returns the sum of the drawn numbers.
func (d Draw) Sum() int {
	total := 0
	for _, n := range d.Numbers {
		total += n
	}
	return total
}

// EvenCount returns how many drawn numbers are even.
func (d Draw) EvenCount() int {
	evens := 0
	for _, n := range d.Numbers {
		if n%2 == 0 {
			evens++
		}
	}
	return evens
}
