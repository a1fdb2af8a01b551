// Package message provides access to the metadata of GRIB messages.
//
// A Stream splits a GRIB file into raw records and hands each record to a
// Decoder, which produces one Message of metadata key/value pairs. An Index
// built over a Stream records, for a chosen set of keys, the ordered distinct
// values observed across all messages and supports constraint-based selection
// of the matching messages.
//
// Payload decoding is out of scope: a Decoder is only required to produce
// metadata, never grid values.
package message
