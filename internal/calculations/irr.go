package calculations

import (
	"math"
)

const (
	// Поиск идет по ln(g), g = 1 + r: от e^-40 (r ≈ -1) до e^40
	irrLogSpan    = 40.0
	irrFineSpan   = 3.0
	irrFineStep   = 0.002
	irrCoarseStep = 0.05
	irrTolerance  = 1e-12
	irrMaxIter    = 200
)

// IRR рассчитывает внутреннюю норму доходности за период потока.
// Возвращает false, если поток не меняет знак или корень не найден.
// Из нескольких корней выбирается ближайший к нулю.
func IRR(flows []float64) (float64, bool) {
	if !hasSignChange(flows) {
		return 0, false
	}

	grid := irrGrid()
	best := math.NaN()

	consider := func(g float64) {
		r := g - 1
		if math.IsNaN(best) || math.Abs(r) < math.Abs(best) {
			best = r
		}
	}

	prevG := grid[0]
	prevV := npvSign(flows, prevG)
	if prevV == 0 {
		consider(prevG)
	}

	for _, g := range grid[1:] {
		v := npvSign(flows, g)
		switch {
		case math.IsNaN(v) || math.IsNaN(prevV):
		case v == 0:
			consider(g)
		case prevV != 0 && (prevV < 0) != (v < 0):
			consider(bisect(flows, prevG, g, prevV))
		}
		prevG, prevV = g, v
	}

	if math.IsNaN(best) || math.IsInf(best, 0) {
		return 0, false
	}
	return best, true
}

// Annualize переводит месячную ставку в годовую: (1+r)^12 - 1
func Annualize(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}

// NPV рассчитывает чистую приведенную стоимость потока по ставке rate
func NPV(flows []float64, rate float64) float64 {
	g := 1 + rate
	sum := 0.0
	for t := len(flows) - 1; t >= 0; t-- {
		sum = sum/g + flows[t]
	}
	return sum
}

// npvSign возвращает величину с тем же знаком и теми же нулями, что и NPV.
// При g >= 1 это сама NPV, при g < 1 NPV умножается на g^T,
// чтобы длинные потоки не переполняли float64.
func npvSign(flows []float64, g float64) float64 {
	if g >= 1 {
		return NPV(flows, g-1)
	}
	sum := 0.0
	for _, v := range flows {
		sum = sum*g + v
	}
	return sum
}

func bisect(flows []float64, lo, hi, loV float64) float64 {
	for i := 0; i < irrMaxIter && hi-lo > irrTolerance*math.Max(1, hi); i++ {
		mid := (lo + hi) / 2
		v := npvSign(flows, mid)
		if v == 0 {
			return mid
		}
		if (v < 0) == (loV < 0) {
			lo, loV = mid, v
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// irrGrid строит сетку по g, симметричную по ln(g) относительно g = 1.
// Около g = 1 шаг мелкий, на краях крупный.
func irrGrid() []float64 {
	offsets := []float64{0}
	for o := 0.0; o < irrLogSpan; {
		if o < irrFineSpan {
			o += irrFineStep
		} else {
			o += irrCoarseStep
		}
		offsets = append(offsets, o)
	}

	grid := make([]float64, 0, 2*len(offsets)-1)
	for i := len(offsets) - 1; i > 0; i-- {
		grid = append(grid, math.Exp(-offsets[i]))
	}
	grid = append(grid, 1)
	for _, o := range offsets[1:] {
		grid = append(grid, math.Exp(o))
	}
	return grid
}

func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, v := range flows {
		if v > 0 {
			pos = true
		} else if v < 0 {
			neg = true
		}
	}
	return pos && neg
}
