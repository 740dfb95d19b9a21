// Package main demonstrates the extended-resolution GCC propagator suite
// against the reference engine in pkg/gccengine.
package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/JasperHeijne/gcc-extended-res/pkg/gcc"
	"github.com/JasperHeijne/gcc-extended-res/pkg/gccengine"
)

func main() {
	fmt.Println("=== GCC Extended Resolution Examples ===")
	fmt.Println()

	intersectionExample()
	transitiveExample()
	upperBoundClassExample()
	inequalitySetsConflictExample()
	searchExample()
}

// intersectionExample reproduces S1: x1 in [1,5], x2 in [3,7], lit12 :=
// true narrows both domains to their intersection {3,4,5}.
func intersectionExample() {
	fmt.Println("1. Intersection:")

	e := gccengine.NewEngine(nil)
	x1 := e.NewIntVar(1, 5)
	x2 := e.NewIntVar(3, 7)
	lit := e.NewLiteral()

	eq := gcc.NewEqualityMap()
	eq.Set(0, 1, lit)

	c := gcc.NewExtendedResolutionGCC([]gcc.Entity{x1, x2}, nil, eq)
	if err := e.Post(c); err != nil {
		fmt.Printf("   post failed: %v\n", err)
		return
	}

	if _, err := e.Store.AssignLiteral(lit, true, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	if err := e.Propagate(); err != nil {
		fmt.Printf("   propagation failed: %v\n", err)
		return
	}

	fmt.Printf("   dom(x1) = %s, dom(x2) = %s\n", describe(e, x1), describe(e, x2))
	fmt.Println()
}

// transitiveExample reproduces S2: lit12 := true, lit23 := true forces
// lit13 := true by transitivity of equality.
func transitiveExample() {
	fmt.Println("2. Transitive closure of equality:")

	e := gccengine.NewEngine(nil)
	x1 := e.NewIntVar(1, 5)
	x2 := e.NewIntVar(1, 5)
	x3 := e.NewIntVar(1, 5)
	l12, l23, l13 := e.NewLiteral(), e.NewLiteral(), e.NewLiteral()

	eq := gcc.NewEqualityMap()
	eq.Set(0, 1, l12)
	eq.Set(1, 2, l23)
	eq.Set(0, 2, l13)

	c := gcc.NewExtendedResolutionGCC([]gcc.Entity{x1, x2, x3}, nil, eq)
	if err := e.Post(c); err != nil {
		fmt.Printf("   post failed: %v\n", err)
		return
	}

	if _, err := e.Store.AssignLiteral(l12, true, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	if _, err := e.Store.AssignLiteral(l23, true, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	if err := e.Propagate(); err != nil {
		fmt.Printf("   propagation failed: %v\n", err)
		return
	}

	fmt.Printf("   lit13 true? %v\n", e.Store.IsLiteralTrue(l13))
	fmt.Println()
}

// upperBoundClassExample reproduces S5: a size-2 equality class competing
// for two values capped at one occurrence each is forced onto the
// remaining value.
func upperBoundClassExample() {
	fmt.Println("3. GCC upper-bound class propagation:")

	e := gccengine.NewEngine(nil)
	x1 := e.NewIntVar(1, 3)
	x2 := e.NewIntVar(1, 3)
	x3 := e.NewIntVar(1, 3)
	lit := e.NewLiteral()

	eq := gcc.NewEqualityMap()
	eq.Set(0, 1, lit)

	values := []gcc.ValueSpec{
		gcc.NewValueSpec(1, 0, 1),
		gcc.NewValueSpec(2, 0, 1),
		gcc.NewValueSpec(3, 0, 2),
	}
	c := gcc.NewExtendedResolutionGCC([]gcc.Entity{x1, x2, x3}, values, eq)
	if err := e.Post(c); err != nil {
		fmt.Printf("   post failed: %v\n", err)
		return
	}

	if _, err := e.Store.AssignLiteral(lit, true, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	if err := e.Propagate(); err != nil {
		fmt.Printf("   propagation failed: %v\n", err)
		return
	}

	fmt.Printf("   dom(x1) = %s, dom(x2) = %s\n", describe(e, x1), describe(e, x2))
	fmt.Println()
}

// inequalitySetsConflictExample reproduces S4: three pairwise-unequal
// Boolean variables cannot be packed into two values.
func inequalitySetsConflictExample() {
	fmt.Println("4. Inequality-sets conflict:")

	logger := logrus.New()
	e := gccengine.NewEngine(nil)
	x1 := e.NewIntVar(0, 1)
	x2 := e.NewIntVar(0, 1)
	x3 := e.NewIntVar(0, 1)
	l12, l13, l23 := e.NewLiteral(), e.NewLiteral(), e.NewLiteral()

	eq := gcc.NewEqualityMap()
	eq.Set(0, 1, l12)
	eq.Set(0, 2, l13)
	eq.Set(1, 2, l23)

	c := gcc.NewExtendedResolutionGCC([]gcc.Entity{x1, x2, x3}, nil, eq)
	props := c.Build()
	for _, p := range props {
		if wl, ok := p.(gcc.WithLogger); ok {
			wl.SetLogger(logger.WithField("component", "example"))
		}
	}
	if err := e.PostPropagators(props); err != nil {
		fmt.Printf("   post failed: %v\n", err)
		return
	}

	if _, err := e.Store.AssignLiteral(l12, false, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	if _, err := e.Store.AssignLiteral(l13, false, nil); err != nil {
		fmt.Printf("   assign failed: %v\n", err)
		return
	}
	_, assignErr := e.Store.AssignLiteral(l23, false, nil)
	propErr := assignErr
	if assignErr == nil {
		propErr = e.Propagate()
	}
	if propErr != nil {
		fmt.Printf("   expected conflict: %v\n", propErr)
	} else {
		fmt.Println("   unexpectedly no conflict")
	}
	fmt.Println()
}

// searchExample runs a small labeling search over a GCC with a cap of one
// occurrence per value and an equality literal for every pair, which forces
// an all-different assignment.
func searchExample() {
	fmt.Println("5. Labeling search with Prometheus statistics:")

	stats := gccengine.NewPrometheusStatistics(prometheus.NewRegistry())
	e := gccengine.NewEngine(stats)
	x1 := e.NewIntVar(1, 3)
	x2 := e.NewIntVar(1, 3)
	x3 := e.NewIntVar(1, 3)

	eq := gcc.NewEqualityMap()
	eq.Set(0, 1, e.NewLiteral())
	eq.Set(0, 2, e.NewLiteral())
	eq.Set(1, 2, e.NewLiteral())
	values := []gcc.ValueSpec{
		gcc.NewValueSpec(1, 0, 1),
		gcc.NewValueSpec(2, 0, 1),
		gcc.NewValueSpec(3, 0, 1),
	}
	c := gcc.NewExtendedResolutionGCC([]gcc.Entity{x1, x2, x3}, values, eq)
	if err := e.Post(c); err != nil {
		fmt.Printf("   post failed: %v\n", err)
		return
	}

	sol, ok := e.Search([]gcc.Entity{x1, x2, x3})
	if !ok {
		fmt.Println("   no solution found")
		return
	}
	fmt.Printf("   x1=%d x2=%d x3=%d\n", sol[x1], sol[x2], sol[x3])
	fmt.Println()
}

func describe(e *gccengine.Engine, x gcc.Entity) string {
	s := "{"
	first := true
	e.Store.IterateDomain(x, func(v int) {
		if !first {
			s += ","
		}
		s += fmt.Sprintf("%d", v)
		first = false
	})
	return s + "}"
}
