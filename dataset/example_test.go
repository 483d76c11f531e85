package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/histmetric/dataset"
)

// ExampleDataset layers counting statistics and a flat relative systematic
// on a two-histogram batch, then reads back the combined per-bin errors.
func ExampleDataset() {
	d, err := dataset.New([][]float64{
		{9, 16},
		{16, 9},
	})
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	if err := d.AddPoisson(); err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	for _, row := range d.Errors() {
		fmt.Println(row)
	}
	fmt.Println("norms:", d.Norms())

	// Output:
	// [3 4]
	// [4 3]
	// norms: [25 25]
}

// ExampleDataset_normalized shows the normalized view: each histogram is
// divided by its own norm while the stored contents stay untouched.
func ExampleDataset_normalized() {
	d, err := dataset.New([][]float64{{1, 3}})
	if err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	fmt.Println(d.Normalized()[0])

	raw, _ := d.Data()
	fmt.Println(raw[0])

	// Output:
	// [0.25 0.75]
	// [1 3]
}
