package rpnresolver_test

import (
	"fmt"

	rpnresolver "github.com/davassi/RpnResolver"
)

func ExampleResolveString() {
	n, err := rpnresolver.ResolveString("4 + 4 * 2 / ( 1 - 5 )")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 2
}

func ExampleResolver_Set() {
	r, _ := rpnresolver.Parse("x^2 + 1")
	for x := int64(1); x <= 3; x++ {
		r.Set("x", rpnresolver.NaturalInt64(x))
		n, _ := r.Resolve()
		fmt.Println(n)
	}
	// Output:
	// 2
	// 5
	// 10
}
