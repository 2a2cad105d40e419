// Package histo builds histograms of squared displacements, one per frame,
// over a fixed set of dividers.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i counts the values v with
// dividers[i] <= v < dividers[i+1]. Values outside the dividers are left out.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Uniform returns n+1 evenly spaced dividers from lo to hi, i.e. the
// dividers for n bins of equal width. It panics if n < 1 or hi <= lo.
func Uniform(lo, hi float64, n int) []float64 {
	if n < 1 || hi <= lo {
		panic(fmt.Sprintf("golammps/histo.Uniform: invalid range %v-%v with %d bins", lo, hi, n))
	}
	return floats.Span(make([]float64, n+1), lo, hi)
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created. Neither
// slice is modified or kept. If an ID for the histogram is given, it will be set.
// If not, the ID will be set to -1. It panics if there are less than 2 dividers
// or they are not sorted.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("golammps/histo.NewData: at least 2 sorted dividers are needed")
	}
	d := new(Data)
	d.dividers = append([]float64(nil), dividers...)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.rehisto(rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

// FromRows returns one histogram per row, with the row index as ID. It is
// meant for the per-frame results of the msd package.
func FromRows(rows [][]float64, dividers []float64) []*Data {
	ret := make([]*Data, len(rows))
	for i, v := range rows {
		ret[i] = NewData(dividers, v, i)
	}
	return ret
}

//rehisto fills the histogram from scratch with rawdata.
func (D *Data) rehisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	data = data[:maxi]
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

// AddData adds the given data point(s) to the histogram. Points outside
// the dividers are ignored.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := D.dividers[len(D.dividers)-1]
	for _, v := range point {
		if v < D.dividers[0] || v >= last {
			continue
		}
		//first divider larger than v, the bin is the one before it.
		i := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		D.histo[i-1]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

// ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

// Total returns the number of points in the histogram.
func (D *Data) Total() int {
	return D.total
}

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize divides each bin by the total number of points, so the bins add to 1.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize returns the bins to counts.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// View returns the bins. Changes to the slice are reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Dividers returns a copy of the dividers.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// String returns a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("golammps/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
