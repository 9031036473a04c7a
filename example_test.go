package colorsep_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/blobstore"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/hupe1980/colorsep/vector"
)

// Example_separate demonstrates a two-ink separation in sRGB.
func Example_separate() {
	profile, err := colorspace.Lookup("sRGB")
	if err != nil {
		log.Fatal(err)
	}

	setup := colorsep.DefaultSetup(profile,
		vector.New(102, 51, 153).Div(255), // rebeccapurple
		vector.New(255, 200, 0).Div(255),
	)
	setup.Size = 4
	setup.Target = 100

	res, err := colorsep.Separate(context.Background(), setup, colorsep.WithWorkers(2))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("resolution:", res.Stats.Resolution)
	fmt.Println("candidates:", res.Stats.Candidates)
	fmt.Println("cells:", len(res.Secondary))
	fmt.Println("channels:", len(res.Channels))
	// Output:
	// resolution: 10
	// candidates: 100
	// cells: 64
	// channels: 2
}

// Example_write demonstrates writing the LUTs of a separation.
func Example_write() {
	profile, err := colorspace.Lookup("Rec709")
	if err != nil {
		log.Fatal(err)
	}

	setup := colorsep.DefaultSetup(profile, vector.New(0, 0.5, 1))
	setup.Size = 2
	setup.Target = 8

	ctx := context.Background()
	res, err := colorsep.Separate(ctx, setup)
	if err != nil {
		log.Fatal(err)
	}

	store := blobstore.NewMemoryStore()
	files, err := colorsep.WriteLUTs(ctx, store, "teal.cube", res)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		fmt.Println(f.Name)
	}
	// Output:
	// teal.cube
	// teal_0.cube
	// teal_0m.cube
}
