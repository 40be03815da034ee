package labeled_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/labeled"
)

// ExampleNew builds a small labeled chain and queries it.
func ExampleNew() {
	g, err := labeled.New(
		[][]int{{1}, {2}, {}},
		[]string{"person", "knows", "person"},
		map[labeled.Edge]string{{From: 0, To: 1}: "subj", {From: 1, To: 2}: "obj"},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("children of 0:", g.Children(0))
	fmt.Println("label 1→2:", g.EdgeLabel(1, 2))
	fmt.Println("persons:", g.LabelIndex("person"))

	// Output:
	// children of 0: [1]
	// label 1→2: obj
	// persons: [0 2]
}
