// Package grib exposes a GRIB file as a structured dataset: a set of named
// variables, each with typed coordinates, dimensions and attributes inferred
// from per-message metadata.
//
// # Quick Start
//
//	ds, err := grib.Open("era5.grib", grib.WithDecoder(dec))
//	if err != nil { ... }
//	defer ds.Close()
//
//	vars, err := ds.Variables()
//	if err != nil { ... }
//	for name, v := range vars {
//	    fmt.Println(name, v.Dimensions(), v.Shape())
//	}
//
// Object storage works the same way through a blobstore.Store:
//
//	store := miniostore.NewStore(client, "forecasts", "2026/")
//	ds, err := grib.OpenStore(ctx, store, "t2m.grib", grib.WithDecoder(dec))
//
// # Schema inference
//
// Messages are grouped into variables by parameter id. For each group a
// leader message determines the significant metadata keys (the
// edition-independent keys plus the keys of its grid type); an index over
// those keys then yields the variable's attributes (keys that collapse to a
// single value across the group) and coordinates (the candidate keys whose
// distinct values form the variable's axes). Coordinates with more than one
// value become dimensions, in fixed candidate order.
//
// Payload decoding is out of scope: a variable's backing array is allocated
// lazily and filled with NaN sentinels.
package grib
