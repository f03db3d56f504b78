package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSerial(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		want    string
		wantErr bool
	}{
		{name: "zero is zero-padded", n: 0, want: "00000"},
		{name: "one", n: 1, want: "00001"},
		{name: "nine", n: 9, want: "00009"},
		{name: "ten rolls into letters", n: 10, want: "0000B"},
		{name: "thirty is last symbol", n: 30, want: "0000Z"},
		{name: "thirty-one carries", n: 31, want: "00010"},
		{name: "max serial is all Z", n: MaxSerial, want: "ZZZZZ"},
		{name: "capacity overflows", n: SerialCapacity, wantErr: true},
		{name: "negative overflows", n: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeSerial(tt.n)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSerialOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, SerialLength)
		})
	}
}

func TestDecodeSerial(t *testing.T) {
	tests := []struct {
		name    string
		serial  string
		want    int64
		wantErr bool
	}{
		{name: "zero", serial: "00000", want: 0},
		{name: "mixed digits and letters", serial: "0000B", want: 10},
		{name: "max", serial: "ZZZZZ", want: MaxSerial},
		{name: "too short", serial: "0000", wantErr: true},
		{name: "too long", serial: "000000", wantErr: true},
		{name: "empty", serial: "", wantErr: true},
		{name: "vowel rejected", serial: "000A0", wantErr: true},
		{name: "lowercase rejected", serial: "000b0", wantErr: true},
		{name: "punctuation rejected", serial: "00-00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSerial(tt.serial)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidSerialError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSerialRoundTrip checks decode(encode(n)) == n across the domain.
// Sampling with a prime stride plus the boundaries covers every digit
// position without iterating all 28.6M values on every test run.
func TestSerialRoundTrip(t *testing.T) {
	check := func(n int64) {
		s, err := EncodeSerial(n)
		require.NoError(t, err)
		require.Len(t, s, SerialLength)
		back, err := DecodeSerial(s)
		require.NoError(t, err)
		require.Equal(t, n, back, "round trip of %d via %q", n, s)
	}

	for n := int64(0); n < 10000; n++ {
		check(n)
	}
	for n := int64(0); n <= MaxSerial; n += 104729 {
		check(n)
	}
	check(MaxSerial - 1)
	check(MaxSerial)
}

// TestSerialOrdering verifies lexicographic order of encoded serials matches
// numeric order, which is what keeps sorted label lists readable.
func TestSerialOrdering(t *testing.T) {
	prev, err := EncodeSerial(0)
	require.NoError(t, err)

	for n := int64(1); n <= MaxSerial; n += 65537 {
		cur, err := EncodeSerial(n)
		require.NoError(t, err)
		require.True(t, prev < cur, "encode(%d)=%q should sort before encode(%d)=%q", n-65537, prev, n, cur)
		prev = cur
	}

	// Adjacent pair around a carry boundary.
	a, _ := EncodeSerial(SerialBase - 1)
	b, _ := EncodeSerial(SerialBase)
	assert.True(t, a < b)
}

func TestAlphabetsExcludeVowels(t *testing.T) {
	const vowels = "AEIOUaeiou"

	assert.Equal(t, 31, len(serialAlphabet))
	assert.Equal(t, 12, len(monthAlphabet))
	assert.Equal(t, 21, len(yearAlphabet))

	for _, alphabet := range []string{serialAlphabet, monthAlphabet, yearAlphabet} {
		assert.False(t, strings.ContainsAny(alphabet, vowels), "alphabet %q contains a vowel", alphabet)
	}

	// No duplicated symbols within an alphabet.
	for _, alphabet := range []string{serialAlphabet, monthAlphabet, yearAlphabet} {
		seen := map[byte]bool{}
		for i := 0; i < len(alphabet); i++ {
			assert.False(t, seen[alphabet[i]], "duplicate symbol %q in %q", alphabet[i], alphabet)
			seen[alphabet[i]] = true
		}
	}
}

func TestEncodeMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  byte
	}{
		{time.January, 'b'},
		{time.February, 'c'},
		{time.March, 'd'},
		{time.June, 'h'},
		{time.December, 'p'},
	}

	for _, tt := range tests {
		at := time.Date(2026, tt.month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, string(tt.want), string(EncodeMonth(at)), "month %s", tt.month)
	}
}

func TestEncodeYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want byte
	}{
		{name: "epoch year", year: 2026, want: '1'},
		{name: "epoch+8", year: 2034, want: '9'},
		{name: "epoch+9 wraps to zero", year: 2035, want: '0'},
		{name: "epoch+10 starts extended alphabet", year: 2036, want: 'b'},
		{name: "epoch+11", year: 2037, want: 'c'},
		{name: "last extended symbol", year: 2056, want: 'z'},
		{name: "saturates past alphabet", year: 2057, want: 'z'},
		{name: "saturates far future", year: 2300, want: 'z'},
		{name: "pre-epoch clamps low", year: 2025, want: '1'},
		{name: "distant past clamps low", year: 1999, want: '1'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(EncodeYear(tt.year)))
		})
	}
}

func TestBuildPrefix(t *testing.T) {
	jan2026 := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		supplier byte
		packType byte
		size     byte
		at       time.Time
		want     string
		wantErr  bool
	}{
		{name: "january 2026", supplier: 'B', packType: 'M', size: '2', at: jan2026, want: "KBM2b1"},
		{name: "december of a later year", supplier: 'W', packType: 'S', size: '4', at: time.Date(2036, time.December, 1, 0, 0, 0, 0, time.UTC), want: "KWS4pb"},
		{name: "vowel supplier rejected", supplier: 'A', packType: 'M', size: '2', at: jan2026, wantErr: true},
		{name: "lowercase vowel rejected", supplier: 'B', packType: 'o', size: '2', at: jan2026, wantErr: true},
		{name: "space rejected", supplier: ' ', packType: 'M', size: '2', at: jan2026, wantErr: true},
		{name: "non-printable rejected", supplier: 0x01, packType: 'M', size: '2', at: jan2026, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPrefix(tt.supplier, tt.packType, tt.size, tt.at)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidCategoryCodeError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, PrefixLength)
		})
	}
}

func TestSerialRange(t *testing.T) {
	t.Run("three labels from zero", func(t *testing.T) {
		prefix, err := BuildPrefix('B', 'M', '2', time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Equal(t, "KBM2b1", prefix)

		serials, err := SerialRange(0, 3)
		require.NoError(t, err)
		require.Len(t, serials, 3)

		seen := map[string]bool{}
		for i, s := range serials {
			label := ComposeLabelID(prefix, s)
			assert.Len(t, label, LabelLength)
			assert.False(t, seen[label], "duplicate label %q", label)
			seen[label] = true

			n, err := DecodeSerial(s)
			require.NoError(t, err)
			assert.Equal(t, int64(i), n)
		}
	})

	t.Run("range ending at capacity succeeds", func(t *testing.T) {
		serials, err := SerialRange(MaxSerial-1, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"ZZZZY", "ZZZZZ"}, serials)
	})

	t.Run("overflowing range fails before emitting anything", func(t *testing.T) {
		serials, err := SerialRange(MaxSerial-1, 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSerialOutOfRange)
		assert.Nil(t, serials)
	})

	t.Run("negative start fails", func(t *testing.T) {
		_, err := SerialRange(-1, 1)
		assert.ErrorIs(t, err, ErrSerialOutOfRange)
	})

	t.Run("zero count fails", func(t *testing.T) {
		_, err := SerialRange(0, 0)
		assert.ErrorIs(t, err, ErrSerialOutOfRange)
	})
}

func TestSplitLabelID(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantPrefix string
		wantSerial string
		wantErr    bool
	}{
		{name: "valid label", label: "KBM2b100002", wantPrefix: "KBM2b1", wantSerial: "00002"},
		{name: "max serial", label: "KBM2b1ZZZZZ", wantPrefix: "KBM2b1", wantSerial: "ZZZZZ"},
		{name: "wrong length", label: "KBM2b1000", wantErr: true},
		{name: "wrong marker", label: "XBM2b100002", wantErr: true},
		{name: "bad serial characters", label: "KBM2b1000A2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, serial, err := SplitLabelID(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantSerial, serial)
		})
	}
}

func BenchmarkEncodeSerial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = EncodeSerial(int64(i) % SerialCapacity)
	}
}

func BenchmarkDecodeSerial(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeSerial("KQ3Z7"[0:5])
	}
}
