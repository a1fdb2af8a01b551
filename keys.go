package grib

// Edition-independent keys in the ecCodes namespaces.
var (
	// ParameterKeys describe the physical quantity a message encodes.
	ParameterKeys = []string{"centre", "paramId", "shortName", "units", "name"}

	// TimeKeys describe the reference and forecast time of a message.
	TimeKeys = []string{
		"dataDate", "endStep", "startStep", "stepRange", "stepUnits", "dataTime",
		"validityDate", "validityTime", "stepType",
	}

	// GeographyKeys identify the horizontal grid.
	GeographyKeys = []string{"gridType"}

	// VerticalKeys describe the vertical level of a message.
	VerticalKeys = []string{"bottomLevel", "level", "pv", "topLevel", "typeOfLevel"}

	// DataKeys describe the packed payload.
	DataKeys = []string{"numberOfDataPoints", "packingType"}

	// EnsembleKeys identify the ensemble member. Apparently
	// edition-independent, though undocumented.
	EnsembleKeys = []string{"number"}
)

// NamespaceKeys is the concatenation of the documented namespace catalogs.
var NamespaceKeys = concat(ParameterKeys, TimeKeys, GeographyKeys, VerticalKeys)

// EditionIndependentKeys is the full candidate set for significance sniffing.
var EditionIndependentKeys = concat(NamespaceKeys, DataKeys, EnsembleKeys)

// VariableAttrsKeys are the keys collapsed into variable attributes. Each is
// expected to hold one value across all messages of a variable.
//
// Mixed 'isobaricInPa' and 'isobaricInhPa' level types are not supported.
var VariableAttrsKeys = []string{
	"centre", "paramId", "shortName", "units", "name",
	"stepUnits", "stepType",
	"typeOfLevel",
	"gridType",
	"numberOfDataPoints",
}

// RawCoordinateKeys are the candidate coordinate keys, in the fixed order
// that dimensions and shape follow.
var RawCoordinateKeys = []string{"number", "dataDate", "dataTime", "endStep", "topLevel"}

// GroupingKey partitions messages into variables.
const GroupingKey = "paramId"

// shortNameKey supplies the variable name when no explicit name is given.
const shortNameKey = "shortName"

// sizeKey declares the message's point count.
const sizeKey = "numberOfDataPoints"

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
