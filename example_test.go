package grib_test

import (
	"fmt"

	"github.com/nwpgo/grib"
	"github.com/nwpgo/grib/message"
)

func ExampleDataset_Variables() {
	msgs := []*message.Message{
		synthetic(0), synthetic(6), synthetic(12),
	}
	ds := grib.NewDataset(message.NewStream("synthetic.grib", msgs))
	defer ds.Close()

	vars, err := ds.Variables()
	if err != nil {
		panic(err)
	}
	v := vars["t"]
	fmt.Println(v.Name(), v.Dimensions(), v.Shape())
	// Output: t [endStep] [3]
}

func synthetic(endStep int64) *message.Message {
	return message.New().
		Set("paramId", message.Int(130)).
		Set("shortName", message.String("t")).
		Set("units", message.String("K")).
		Set("gridType", message.String("regular_ll")).
		Set("dataDate", message.Int(20200101)).
		Set("dataTime", message.Int(0)).
		Set("endStep", message.Int(endStep)).
		Set("topLevel", message.Int(0)).
		Set("number", message.Int(0)).
		Set("numberOfDataPoints", message.Int(496)).
		Set("Ni", message.Int(16)).
		Set("Nj", message.Int(31))
}
