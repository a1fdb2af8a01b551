package grib

import (
	"github.com/nwpgo/grib/message"
)

// Mode selects the access mode a dataset is opened with.
type Mode string

const (
	// ModeRead opens a dataset read-only. This is the default.
	ModeRead Mode = "r"
	// ModeWrite is accepted for interface compatibility; nothing in this
	// package writes GRIB data.
	ModeWrite Mode = "w"
)

type options struct {
	logger       *Logger
	catalog      Catalog
	decoder      message.Decoder
	mode         Mode
	variableName string
}

// Option configures Open and OpenStore.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:  NewLogger(nil),
		catalog: DefaultCatalog,
		mode:    ModeRead,
	}
}

// WithLogger sets the logger used for schema-inference warnings.
// If nil is passed, the default logger is kept.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCatalog replaces the grid-type key catalog used for sniffing.
func WithCatalog(c Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithDecoder sets the Decoder used to read message metadata from raw
// records. Required by Open and OpenStore.
func WithDecoder(d message.Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

// WithMode sets the access mode.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithVariableName overrides the sniffed variable name. It applies to every
// variable the dataset discovers, so it is only useful for single-parameter
// files.
func WithVariableName(name string) Option {
	return func(o *options) {
		o.variableName = name
	}
}
