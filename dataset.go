package grib

import (
	"context"
	"sync"

	"github.com/nwpgo/grib/blobstore"
	"github.com/nwpgo/grib/message"
)

// Dataset owns a message stream and the variables discovered over it.
//
// Variables are discovered lazily on first access and memoized; a failure
// during discovery is memoized too, so no partial dataset is ever
// published. A Dataset is not safe for concurrent first access from
// multiple goroutines beyond the sync.Once guard on discovery.
type Dataset struct {
	stream *message.Stream
	opts   *options

	once     sync.Once
	vars     map[string]*Variable
	varNames []string
	err      error
}

// Open opens a local GRIB file as a Dataset. A message decoder must be
// supplied via WithDecoder unless the stream is built elsewhere.
func Open(path string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	stream, err := message.Open(path, message.WithDecoder(o.decoder))
	if err != nil {
		return nil, err
	}
	return &Dataset{stream: stream, opts: o}, nil
}

// OpenStore opens a GRIB object from a blob store as a Dataset.
func OpenStore(ctx context.Context, store blobstore.Store, name string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	stream, err := message.OpenStore(ctx, store, name, message.WithDecoder(o.decoder))
	if err != nil {
		return nil, err
	}
	return &Dataset{stream: stream, opts: o}, nil
}

// NewDataset wraps an existing Stream as a Dataset.
func NewDataset(stream *message.Stream, opts ...Option) *Dataset {
	return &Dataset{stream: stream, opts: applyOptions(opts)}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Path returns the path or object name the dataset was opened from.
func (d *Dataset) Path() string {
	return d.stream.Path()
}

// Mode returns the access mode the dataset was opened with.
func (d *Dataset) Mode() Mode {
	return d.opts.mode
}

// Variables discovers and returns the dataset's variables keyed by resolved
// name. Discovery builds a coarse index over the grouping key and
// constructs one Variable per distinct value, in index order. The first
// failing variable aborts the whole discovery.
//
// When two groups resolve to the same name the later one wins; a warning is
// logged so the collision is not silent.
func (d *Dataset) Variables() (map[string]*Variable, error) {
	d.once.Do(func() {
		d.vars, d.varNames, d.err = d.discover()
	})
	return d.vars, d.err
}

// VariableNames returns the resolved variable names in discovery order.
func (d *Dataset) VariableNames() ([]string, error) {
	if _, err := d.Variables(); err != nil {
		return nil, err
	}
	return d.varNames, nil
}

// Close releases the underlying stream.
func (d *Dataset) Close() error {
	return d.stream.Close()
}

func (d *Dataset) discover() (map[string]*Variable, []string, error) {
	index, err := d.stream.Index([]string{GroupingKey})
	if err != nil {
		return nil, nil, err
	}
	vars := make(map[string]*Variable)
	var names []string
	for _, groupValue := range index.Values(GroupingKey) {
		v, err := newVariable(d.stream, groupValue, d.opts)
		if err != nil {
			return nil, nil, err
		}
		if prev, ok := vars[v.Name()]; ok {
			d.opts.logger.Warn("duplicate variable name, keeping later group",
				"name", v.Name(),
				"previous", prev.GroupValue().String(),
				"group", v.GroupValue().String())
		} else {
			names = append(names, v.Name())
		}
		vars[v.Name()] = v
	}
	return vars, names, nil
}
