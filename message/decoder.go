package message

// Decoder turns one raw GRIB record into its metadata Message.
//
// Implementations read only the metadata sections; grid values stay packed.
type Decoder interface {
	Decode(rec RawRecord) (*Message, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(rec RawRecord) (*Message, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(rec RawRecord) (*Message, error) {
	return f(rec)
}

var defaultDecoder Decoder

// SetDefaultDecoder registers the decoder used by Open and OpenStore when
// none is supplied explicitly. Decoder implementations (e.g. an ecCodes
// binding) typically call this from an init function, so importing the
// implementation package is enough to make streams openable.
func SetDefaultDecoder(d Decoder) {
	defaultDecoder = d
}

// DefaultDecoder returns the registered default decoder, or nil.
func DefaultDecoder() Decoder {
	return defaultDecoder
}
