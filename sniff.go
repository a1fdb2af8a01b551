package grib

import (
	"github.com/nwpgo/grib/message"
)

// SignificantKeys returns the metadata keys worth indexing for the variable
// represented by leader: the edition-independent keys followed by the keys
// of the leader's grid type, filtered to those present and non-null on the
// leader.
//
// An uncataloged grid type degrades gracefully: the grid-specific set is
// empty, a warning is logged, and the edition-independent keys are kept.
func SignificantKeys(leader *message.Message, eiKeys []string, catalog Catalog, logger *Logger) []string {
	gridType := GridTypeUnknown
	if v, ok := leader.Get("gridType"); ok {
		if s, ok := v.AsString(); ok {
			gridType = GridType(s)
		}
	}
	gridTypeKeys, ok := catalog.Keys(gridType)
	if !ok {
		logger.Warn("unknown gridType", "gridType", string(gridType))
		gridTypeKeys = nil
	}

	significant := make([]string, 0, len(eiKeys)+len(gridTypeKeys))
	for _, key := range concat(eiKeys, gridTypeKeys) {
		if v, ok := leader.Get(key); ok && !v.IsNull() {
			significant = append(significant, key)
		}
	}
	return significant
}

// VariableAttrs collapses each attribute key's observed values to a single
// scalar. The grid type is read from the index's first gridType value; its
// catalog keys are appended to attrKeys, so on a key collision the
// grid-specific value wins. A key observed with more than one distinct
// value yields ErrInconsistentAttribute and no partial result; a key the
// index never observed is skipped.
func VariableAttrs(idx *message.Index, attrKeys []string, catalog Catalog) (map[string]message.Value, error) {
	gridType := GridTypeUnknown
	if vs := idx.Values("gridType"); len(vs) > 0 {
		if s, ok := vs[0].AsString(); ok {
			gridType = GridType(s)
		}
	}
	gridTypeKeys, _ := catalog.Keys(gridType)

	attrs := make(map[string]message.Value)
	for _, key := range concat(attrKeys, gridTypeKeys) {
		values := idx.Values(key)
		if len(values) > 1 {
			return nil, &ErrInconsistentAttribute{Key: key, Values: values}
		}
		if len(values) == 0 {
			continue
		}
		attrs[key] = values[0]
	}
	return attrs, nil
}

// RawCoordinates extracts, for each candidate coordinate key, the index's
// distinct-value sequence verbatim, preserving index order. Multiplicity is
// meaningful here: no collapsing happens and singleton sequences are kept.
// A key with no index entries yields ErrMissingCoordinate.
func RawCoordinates(idx *message.Index, coordKeys []string) (map[string][]message.Value, error) {
	coords := make(map[string][]message.Value, len(coordKeys))
	for _, key := range coordKeys {
		values := idx.Values(key)
		if len(values) == 0 {
			return nil, &ErrMissingCoordinate{Key: key}
		}
		coords[key] = values
	}
	return coords, nil
}
