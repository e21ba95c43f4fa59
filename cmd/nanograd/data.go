package main

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dataset is a two-feature binary classification set. Labels are -1 or +1.
type Dataset struct {
	X [][2]float64
	Y []float64
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Y)
}

// MakeMoons generates two interleaving half circles, half of the samples per
// class, with Gaussian noise of the given standard deviation. Features are
// standardized to zero mean and unit variance.
func MakeMoons(n int, noise float64, rng *rand.Rand) *Dataset {
	nOuter := n / 2
	nInner := n - nOuter

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	labels := make([]float64, 0, n)

	for i := 0; i < nOuter; i++ {
		theta := math.Pi * float64(i) / float64(max(nOuter-1, 1))
		xs = append(xs, math.Cos(theta))
		ys = append(ys, math.Sin(theta))
		labels = append(labels, -1)
	}
	for i := 0; i < nInner; i++ {
		theta := math.Pi * float64(i) / float64(max(nInner-1, 1))
		xs = append(xs, 1-math.Cos(theta))
		ys = append(ys, 0.5-math.Sin(theta))
		labels = append(labels, 1)
	}

	for i := range xs {
		xs[i] += rng.NormFloat64() * noise
		ys[i] += rng.NormFloat64() * noise
	}

	standardize(xs)
	standardize(ys)

	d := &Dataset{X: make([][2]float64, n), Y: labels}
	for i := range d.X {
		d.X[i] = [2]float64{xs[i], ys[i]}
	}

	rng.Shuffle(n, func(i, j int) {
		d.X[i], d.X[j] = d.X[j], d.X[i]
		d.Y[i], d.Y[j] = d.Y[j], d.Y[i]
	})
	return d
}

// standardize rescales x in place to zero mean and unit variance.
func standardize(x []float64) {
	if len(x) < 2 {
		return
	}
	mean, std := stat.MeanStdDev(x, nil)
	floats.AddConst(-mean, x)
	if std > 0 {
		floats.Scale(1/std, x)
	}
}
