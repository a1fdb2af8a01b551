package message

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/nwpgo/grib/blobstore"
)

// ErrNoDecoder is returned by Open when no Decoder has been configured and
// none is registered via SetDefaultDecoder.
var ErrNoDecoder = errors.New("no decoder configured")

// StreamOption configures Open and OpenStore.
type StreamOption func(*streamOptions)

type streamOptions struct {
	decoder Decoder
}

// WithDecoder sets the Decoder used to turn raw records into messages.
func WithDecoder(d Decoder) StreamOption {
	return func(o *streamOptions) {
		o.decoder = d
	}
}

// Stream is a read-only handle to the messages of one GRIB file.
//
// Messages are decoded once, on first use, and cached for the life of the
// Stream. A Stream is not safe for concurrent use.
type Stream struct {
	path string
	blob blobstore.Blob
	dec  Decoder

	once sync.Once
	msgs []*Message
	err  error
}

// Open opens a local GRIB file. Gzip-compressed files are handled
// transparently. A Decoder must be supplied via WithDecoder or registered
// via SetDefaultDecoder.
func Open(path string, opts ...StreamOption) (*Stream, error) {
	o := applyStreamOptions(opts)
	if o.decoder == nil {
		return nil, ErrNoDecoder
	}
	blob, err := blobstore.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Stream{path: path, blob: blob, dec: o.decoder}, nil
}

// OpenStore opens a GRIB object from a blob store.
func OpenStore(ctx context.Context, store blobstore.Store, name string, opts ...StreamOption) (*Stream, error) {
	o := applyStreamOptions(opts)
	if o.decoder == nil {
		return nil, ErrNoDecoder
	}
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Stream{path: name, blob: blob, dec: o.decoder}, nil
}

// NewStream creates a Stream over already-decoded messages. It is the
// entry point for callers that hold message metadata from another source.
func NewStream(path string, msgs []*Message) *Stream {
	s := &Stream{path: path, msgs: msgs}
	s.once.Do(func() {})
	return s
}

func applyStreamOptions(opts []StreamOption) *streamOptions {
	o := &streamOptions{}
	for _, fn := range opts {
		fn(o)
	}
	if o.decoder == nil {
		o.decoder = defaultDecoder
	}
	return o
}

// Path returns the path or object name the stream was opened from.
func (s *Stream) Path() string {
	return s.path
}

// Messages decodes and returns all messages in file order.
// The result is cached; repeated calls return the same slice.
func (s *Stream) Messages() ([]*Message, error) {
	s.once.Do(func() {
		s.msgs, s.err = s.decodeAll()
	})
	return s.msgs, s.err
}

// Index scans all messages once and builds an Index over the given keys.
func (s *Stream) Index(keys []string) (*Index, error) {
	msgs, err := s.Messages()
	if err != nil {
		return nil, err
	}
	return NewIndex(msgs, keys), nil
}

// Close releases the underlying blob. Decoded messages stay valid.
func (s *Stream) Close() error {
	if s.blob == nil {
		return nil
	}
	return s.blob.Close()
}

func (s *Stream) decodeAll() ([]*Message, error) {
	records, err := readRecords(s.blob)
	if err != nil {
		return nil, err
	}
	msgs := make([]*Message, 0, len(records))
	for _, rec := range records {
		m, err := s.dec.Decode(rec)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// ScanFile splits a local GRIB file into raw records without decoding them.
// Gzip-compressed files are handled transparently.
func ScanFile(path string) ([]RawRecord, error) {
	blob, err := blobstore.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer blob.Close()
	return readRecords(blob)
}

// readRecords reads a blob fully, gunzips it if needed, and splits it into
// raw GRIB records.
func readRecords(blob blobstore.Blob) ([]RawRecord, error) {
	data, err := blobstore.Bytes(blob)
	if err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(data)
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return ScanRecords(r)
}
