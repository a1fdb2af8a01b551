package message

// Message is the metadata of one GRIB message: an insertion-ordered mapping
// from metadata key to scalar Value.
//
// Get distinguishes a key that is absent from one that is present with a
// null value; decoders encode "key exists but codes no value" as Null().
// Messages are read-only once handed to an Index.
type Message struct {
	keys   []string
	values map[string]Value
}

// New creates an empty Message.
func New() *Message {
	return &Message{values: make(map[string]Value)}
}

// Set stores a value under key, keeping first-insertion order.
// It returns the message to allow chained construction.
func (m *Message) Set(key string, v Value) *Message {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value stored under key and whether the key is present.
func (m *Message) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the message keys in insertion order.
// The returned slice is shared; callers must not modify it.
func (m *Message) Keys() []string {
	return m.keys
}

// Len returns the number of keys in the message.
func (m *Message) Len() int {
	return len(m.keys)
}
