package message

import (
	"strconv"
	"testing"
)

func BenchmarkNewIndex(b *testing.B) {
	msgs := make([]*Message, 1000)
	for i := range msgs {
		msgs[i] = New().
			Set("paramId", Int(int64(130+i%4))).
			Set("endStep", Int(int64(i%24))).
			Set("shortName", String("v"+strconv.Itoa(i%4))).
			Set("gridType", String("regular_ll"))
	}
	keys := []string{"paramId", "endStep", "shortName", "gridType"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewIndex(msgs, keys)
	}
}

func BenchmarkIndexSelect(b *testing.B) {
	msgs := make([]*Message, 1000)
	for i := range msgs {
		msgs[i] = New().
			Set("paramId", Int(int64(130+i%4))).
			Set("endStep", Int(int64(i%24)))
	}
	ix := NewIndex(msgs, []string{"paramId", "endStep"})
	constraints := map[string]Value{"paramId": Int(131), "endStep": Int(6)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Select(constraints)
	}
}
