package analytic_test

import (
	"fmt"

	"github.com/tuneinsight/analytic/analytic"
)

func ExamplePolynomial_Solve() {
	p := analytic.NewPolynomial(0, -1, 0, 1)
	roots, err := p.Solve(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(analytic.RealRoots(roots))
	// Output: [-1 1]
}

func ExampleCompose() {
	p := analytic.NewPolynomial(0, 1, 0, 1)
	e, err := analytic.Compose(p, analytic.Shifting{Offset: 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output: 2 + 2*x + x^2
}

func ExampleAdd() {
	fmt.Println(analytic.Add(analytic.Identity{}, 2))
	fmt.Println(analytic.Mul(analytic.Scaling{Factor: 2}, analytic.Shifting{Offset: -1}))
	fmt.Println(analytic.Div(analytic.NewPolynomial(0, 1, 2), analytic.NewPolynomial(0, 0, 0, 1)))
	fmt.Println(analytic.Div(analytic.NewPolynomial(0, 1, 2), analytic.NewPolynomial(0, 1, 1)))
	// Output:
	// x + 2
	// -2*x + 2*x^2
	// x^-2 + 2*x^-1
	// (1 + 2*x)/(1 + x)
}

func ExamplePolynomial_IntegralOver() {
	p := analytic.NewPolynomial(-1, 1, 0, 3)
	fmt.Printf("%.6f\n", p.IntegralOver(1, 2))
	// Output: 5.193147
}
