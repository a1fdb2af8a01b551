package message

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoRecords is returned when a stream contains no GRIB records.
	ErrNoRecords = errors.New("no GRIB records found")
	// ErrTruncatedRecord is returned when a record's declared length
	// extends past the end of the stream.
	ErrTruncatedRecord = errors.New("truncated GRIB record")
)

var (
	gribMagic   = []byte("GRIB")
	gribTrailer = []byte("7777")
)

// RawRecord is one undecoded GRIB message: the full byte range from the
// leading "GRIB" indicator to the trailing "7777" section.
type RawRecord struct {
	// Offset is the byte offset of the record in the scanned stream.
	Offset int64
	// Edition is the GRIB edition, 1 or 2.
	Edition int
	// Data holds the complete record, indicator and trailer included.
	Data []byte
}

// ScanRecords splits a stream into raw GRIB records.
//
// Both editions are handled: edition 1 declares the total record length as a
// 24-bit integer in the indicator section, edition 2 as a 64-bit integer.
// Bytes between records (padding, index headers) are skipped. A stream with
// no records yields ErrNoRecords; a record whose declared length runs past
// EOF yields ErrTruncatedRecord.
func ScanRecords(r io.Reader) ([]RawRecord, error) {
	br := bufio.NewReader(r)
	var (
		records []RawRecord
		offset  int64
	)
	for {
		skipped, err := seekMagic(br)
		offset += skipped
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		head, err := br.Peek(8)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("%w at offset %d", ErrTruncatedRecord, offset)
			}
			return nil, err
		}

		edition := int(head[7])
		var total, minTotal uint64
		switch edition {
		case 1:
			total = uint64(head[4])<<16 | uint64(head[5])<<8 | uint64(head[6])
			minTotal = 8 + 4
		case 2:
			head, err = br.Peek(16)
			if err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					return nil, fmt.Errorf("%w at offset %d", ErrTruncatedRecord, offset)
				}
				return nil, err
			}
			total = binary.BigEndian.Uint64(head[8:16])
			minTotal = 16 + 4
		default:
			// Not a record start; resynchronize one byte past the magic.
			if _, err := br.Discard(1); err != nil {
				return nil, err
			}
			offset++
			continue
		}
		if total < minTotal {
			if _, err := br.Discard(1); err != nil {
				return nil, err
			}
			offset++
			continue
		}

		data := make([]byte, total)
		if _, err := io.ReadFull(br, data); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("%w at offset %d", ErrTruncatedRecord, offset)
			}
			return nil, err
		}
		if !bytes.HasSuffix(data, gribTrailer) {
			return nil, fmt.Errorf("GRIB record at offset %d: missing 7777 end section", offset)
		}
		records = append(records, RawRecord{Offset: offset, Edition: edition, Data: data})
		offset += int64(total)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// seekMagic advances br until the next "GRIB" magic is at the front of the
// buffer, returning the number of bytes skipped. io.EOF means no further
// magic exists.
func seekMagic(br *bufio.Reader) (int64, error) {
	var skipped int64
	for {
		head, err := br.Peek(len(gribMagic))
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				// Fewer than 4 bytes left; no record can start here.
				return skipped, io.EOF
			}
			return skipped, err
		}
		if bytes.Equal(head, gribMagic) {
			return skipped, nil
		}
		if i := bytes.IndexByte(head, 'G'); i > 0 {
			if _, err := br.Discard(i); err != nil {
				return skipped, err
			}
			skipped += int64(i)
		} else if i < 0 {
			if _, err := br.Discard(len(head)); err != nil {
				return skipped, err
			}
			skipped += int64(len(head))
		} else {
			if _, err := br.Discard(1); err != nil {
				return skipped, err
			}
			skipped++
		}
	}
}
