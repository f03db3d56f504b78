// Package codec implements the pack-label identifier encoding scheme.
//
// A pack label is an 11-character scanner-friendly string composed of a
// 6-character structured prefix and a 5-character base-31 serial:
//
//	K B M 2 b 1 0 0 0 0 0
//	| | | | | | \_______/
//	| | | | | |     serial (base-31, fixed width 5)
//	| | | | | year code
//	| | | | month code
//	| | | size class
//	| | packaging type
//	| supplier
//	constant marker
//
// All alphabets exclude the vowels A/E/I/O/U (upper and lower case) so that
// generated labels never spell readable words and survive OCR of printed
// barcodes. Every function here is pure; serial allocation is the caller's
// problem.
package codec

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LabelMarker is the constant first character of every pack label.
	LabelMarker = 'K'

	// PrefixLength is the fixed width of the structured prefix.
	PrefixLength = 6

	// SerialLength is the fixed width of the encoded serial.
	SerialLength = 5

	// LabelLength is the fixed width of a complete pack label.
	LabelLength = PrefixLength + SerialLength

	// EpochYear is the reference year for year-code offsets.
	EpochYear = 2026

	// serialAlphabet is the base-31 digit set: ten digits followed by the
	// uppercase consonants. Byte order equals symbol order, so encoded
	// serials sort lexicographically in the same order as their integers.
	serialAlphabet = "0123456789BCDFGHJKLMNPQRSTVWXYZ"

	// monthAlphabet maps time.Month-1 to a month code, January through
	// December.
	monthAlphabet = "bcdfghjklmnp"

	// yearAlphabet extends the year code once the digit range 1..9,0 is
	// exhausted (offsets 10 and up). When this alphabet runs out the year
	// code saturates at its last symbol.
	yearAlphabet = "bcdfghjklmnpqrstvwxyz"

	// SerialBase is the radix of the serial encoding.
	SerialBase = int64(len(serialAlphabet))
)

// MaxSerial is the largest encodable serial value, 31^5 - 1.
var MaxSerial = pow(SerialBase, SerialLength) - 1

// SerialCapacity is the number of distinct serials per prefix bucket, 31^5.
var SerialCapacity = MaxSerial + 1

// serialIndex maps a serial alphabet byte back to its digit value, -1 for
// bytes outside the alphabet.
var serialIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(serialAlphabet); i++ {
		idx[serialAlphabet[i]] = int8(i)
	}
	return idx
}()

func pow(base int64, exp int) int64 {
	n := int64(1)
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}

// EncodeMonth returns the month code for the given date.
func EncodeMonth(at time.Time) byte {
	return monthAlphabet[int(at.Month())-1]
}

// EncodeYear returns the year code for the given calendar year.
//
// Offsets 0..8 from EpochYear map to '1'..'9', offset 9 maps to '0', and
// later offsets walk yearAlphabet. Pre-epoch years clamp to the first digit
// (clock skew, not an error) and years past the alphabet clamp to its last
// symbol. The saturation point is a documented limitation of the scheme.
func EncodeYear(year int) byte {
	offset := year - EpochYear
	switch {
	case offset < 0:
		return '1'
	case offset <= 8:
		return byte('1' + offset)
	case offset == 9:
		return '0'
	}
	i := offset - 10
	if i >= len(yearAlphabet) {
		i = len(yearAlphabet) - 1
	}
	return yearAlphabet[i]
}

// EncodeSerial converts a sequence counter to its fixed-width base-31 form.
//
// The loop always emits exactly SerialLength digits, most significant first,
// so small values come out zero-padded. Values outside [0, SerialCapacity)
// return ErrSerialOutOfRange; wrapping would silently reuse an earlier
// label, which is the one failure mode this scheme must never have.
func EncodeSerial(n int64) (string, error) {
	if n < 0 || n > MaxSerial {
		return "", fmt.Errorf("%w: serial %d not in [0, %d]", ErrSerialOutOfRange, n, MaxSerial)
	}

	var buf [SerialLength]byte
	for i := SerialLength - 1; i >= 0; i-- {
		buf[i] = serialAlphabet[n%SerialBase]
		n /= SerialBase
	}
	return string(buf[:]), nil
}

// DecodeSerial converts an encoded serial back to its sequence counter.
// It is the exact inverse of EncodeSerial over the valid domain.
func DecodeSerial(s string) (int64, error) {
	if len(s) != SerialLength {
		return 0, &InvalidSerialError{Serial: s, Reason: fmt.Sprintf("length %d, want %d", len(s), SerialLength)}
	}

	var n int64
	for i := 0; i < SerialLength; i++ {
		d := serialIndex[s[i]]
		if d < 0 {
			return 0, &InvalidSerialError{Serial: s, Reason: fmt.Sprintf("character %q at position %d not in serial alphabet", s[i], i)}
		}
		n = n*SerialBase + int64(d)
	}
	return n, nil
}

// BuildPrefix assembles the 6-character structured prefix for a label.
//
// Supplier, packaging type and size class are single-character codes owned
// by business configuration; the codec only checks they are single printable
// characters outside the vowel set.
func BuildPrefix(supplier, packagingType, size byte, at time.Time) (string, error) {
	if err := validateCategoryCode("supplier", supplier); err != nil {
		return "", err
	}
	if err := validateCategoryCode("packaging_type", packagingType); err != nil {
		return "", err
	}
	if err := validateCategoryCode("size", size); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(PrefixLength)
	b.WriteByte(LabelMarker)
	b.WriteByte(supplier)
	b.WriteByte(packagingType)
	b.WriteByte(size)
	b.WriteByte(EncodeMonth(at))
	b.WriteByte(EncodeYear(at.Year()))
	return b.String(), nil
}

// ComposeLabelID joins a prefix and an encoded serial into the full label.
func ComposeLabelID(prefix, serial string) string {
	return prefix + serial
}

// SerialRange encodes count consecutive serials starting at start.
//
// The whole range is validated up front: if any serial in [start,
// start+count) would overflow, nothing is emitted. This is the batch
// contract — a partial batch with some valid and some overflowed labels is
// worse than no batch at all.
func SerialRange(start, count int64) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count %d must be positive", ErrSerialOutOfRange, count)
	}
	if start < 0 || start > MaxSerial || count-1 > MaxSerial-start {
		return nil, fmt.Errorf("%w: range [%d, %d) exceeds serial capacity %d", ErrSerialOutOfRange, start, start+count, SerialCapacity)
	}

	serials := make([]string, count)
	for i := int64(0); i < count; i++ {
		s, err := EncodeSerial(start + i)
		if err != nil {
			return nil, err
		}
		serials[i] = s
	}
	return serials, nil
}

// SplitLabelID splits a full label into prefix and serial and validates the
// serial portion. The prefix is checked for shape (length, marker) only;
// category codes are validated against business configuration elsewhere.
func SplitLabelID(label string) (prefix, serial string, err error) {
	if len(label) != LabelLength {
		return "", "", &InvalidSerialError{Serial: label, Reason: fmt.Sprintf("label length %d, want %d", len(label), LabelLength)}
	}
	if label[0] != LabelMarker {
		return "", "", &InvalidSerialError{Serial: label, Reason: fmt.Sprintf("label marker %q, want %q", label[0], LabelMarker)}
	}
	prefix, serial = label[:PrefixLength], label[PrefixLength:]
	if _, err := DecodeSerial(serial); err != nil {
		return "", "", err
	}
	return prefix, serial, nil
}

func validateCategoryCode(field string, code byte) error {
	if code <= ' ' || code >= 0x7f {
		return &InvalidCategoryCodeError{Field: field, Code: code, Reason: "not a printable character"}
	}
	switch code {
	case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
		return &InvalidCategoryCodeError{Field: field, Code: code, Reason: "vowels are reserved out of the label alphabets"}
	}
	return nil
}
