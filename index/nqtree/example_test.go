package nqtree_test

import (
	"fmt"

	"github.com/viant/nqtree/geom"
	"github.com/viant/nqtree/index/nqtree"
)

func Example() {
	tree, err := nqtree.New[int]([][2]float64{{0, 100}, {0, 100}, {10, 200}, {100, 300}}, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	_, _ = tree.Insert(1, 15, 18, 20, 115)
	_, _ = tree.Insert(2, 20, 20, 82, 123)
	_, _ = tree.Insert(3, 30, 30, 30, 131)

	box, _ := geom.NewBox(geom.NewPoint(15, 15, 25, 115), geom.NewPoint(35, 35, 35, 135))
	inBox, _ := tree.Search(box)
	for _, item := range inBox {
		fmt.Println("box:", item.Value, item.Point)
	}

	inSphere, _ := tree.Search(geom.NewSphere(geom.NewPoint(20, 22, 23, 122), 20))
	for _, item := range inSphere {
		fmt.Println("sphere:", item.Value, item.Point)
	}
	fmt.Println(tree)
	// Output:
	// box: 3 (30, 30, 30, 131)
	// sphere: 1 (15, 18, 20, 115)
	// sphere: 3 (30, 30, 30, 131)
	// NQTree(min=(0, 0, 10, 100), max=(100, 100, 200, 300), divided=true, points=2)
}
