package route_test

import (
	"fmt"

	"github.com/katalvlaran/navgrid/gridgraph"
	"github.com/katalvlaran/navgrid/route"
)

// ExampleFind walks around a two-cell wall.
//
//	@ - -
//	8 8 -
//	- - *
func ExampleFind() {
	g, _ := gridgraph.New(1, 3, 3, gridgraph.Coord{}, gridgraph.Coord{X: 2, Y: 2})
	_ = g.InsertNodes([]float64{
		8, -1, -1,
		3, 3, -1,
		-1, -1, 0,
	})

	res, err := route.Find(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Len(), res.Route)

	// Output:
	// true 4 [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleWithOnDeadEnd reports the backtrack out of the lower-left pocket.
// The tied first step goes down to (1,0), which has nowhere further to go.
//
//	@ - - 8
//	- 8 - *
func ExampleWithOnDeadEnd() {
	g, _ := gridgraph.New(1, 2, 4, gridgraph.Coord{}, gridgraph.Coord{X: 1, Y: 3})
	_ = g.InsertNodes([]float64{
		8, -1, -1, 3,
		-1, 3, -1, 0,
	})

	res, _ := route.Find(g, route.WithOnDeadEnd(func(c gridgraph.Coord) error {
		fmt.Println("dead end", c)
		return nil
	}))
	fmt.Println(res.Committed, "committed:", res.Route)

	// Output:
	// dead end (1,0)
	// 6 committed: [(0,0) (0,1) (0,2) (1,2) (1,3)]
}
