package model

import "fmt"

type regressor interface {
	predict(x []float64) float64
}

type linearRegressor struct {
	intercept    float64
	coefficients []float64
}

func newLinear(p *LinearParams, width int) (*linearRegressor, error) {
	if p == nil {
		return nil, fmt.Errorf("linear parameters missing")
	}
	if len(p.Coefficients) != width {
		return nil, fmt.Errorf("linear model has %d coefficients for %d features", len(p.Coefficients), width)
	}
	coef := make([]float64, width)
	copy(coef, p.Coefficients)
	return &linearRegressor{intercept: p.Intercept, coefficients: coef}, nil
}

func (l *linearRegressor) predict(x []float64) float64 {
	y := l.intercept
	for i, c := range l.coefficients {
		y += c * x[i]
	}
	return y
}

type tree struct {
	left      []int
	right     []int
	feature   []int
	threshold []float64
	value     []float64
}

// newTree checks the node arrays so that walking can neither index out of
// range nor loop: every child index is greater than its parent's.
func newTree(d TreeData, width int) (*tree, error) {
	n := len(d.ChildrenLeft)
	if n == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	if len(d.ChildrenRight) != n || len(d.Feature) != n || len(d.Threshold) != n || len(d.Value) != n {
		return nil, fmt.Errorf("tree node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		l, r := d.ChildrenLeft[i], d.ChildrenRight[i]
		if l == -1 {
			if r != -1 {
				return nil, fmt.Errorf("node %d: leaf with a right child", i)
			}
			continue
		}
		if l <= i || l >= n || r <= i || r >= n {
			return nil, fmt.Errorf("node %d: child index out of order", i)
		}
		if f := d.Feature[i]; f < 0 || f >= width {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, f)
		}
	}
	return &tree{
		left:      d.ChildrenLeft,
		right:     d.ChildrenRight,
		feature:   d.Feature,
		threshold: d.Threshold,
		value:     d.Value,
	}, nil
}

func (t *tree) predict(x []float64) float64 {
	i := 0
	for t.left[i] != -1 {
		if x[t.feature[i]] <= t.threshold[i] {
			i = t.left[i]
		} else {
			i = t.right[i]
		}
	}
	return t.value[i]
}

type ensemble struct {
	trees        []*tree
	mean         bool
	baseScore    float64
	learningRate float64
}

func newEnsemble(p *EnsembleParams, width int) (*ensemble, error) {
	if p == nil {
		return nil, fmt.Errorf("ensemble parameters missing")
	}
	e := &ensemble{
		mean:         p.Aggregation == AggregationMean,
		baseScore:    p.BaseScore,
		learningRate: 1,
	}
	if p.LearningRate != nil {
		e.learningRate = *p.LearningRate
	}
	if len(p.Trees) == 0 {
		return nil, fmt.Errorf("ensemble has no trees")
	}
	for i, td := range p.Trees {
		t, err := newTree(td, width)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		e.trees = append(e.trees, t)
	}
	return e, nil
}

func (e *ensemble) predict(x []float64) float64 {
	var sum float64
	for _, t := range e.trees {
		sum += t.predict(x)
	}
	if e.mean {
		return sum / float64(len(e.trees))
	}
	return e.baseScore + e.learningRate*sum
}
