package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		data []byte
		text string
	}

	tcs := []TC{
		{
			name: "0",
			data: []byte{
				0b0000_0000,
			},
			text: "0",
		},
		{
			name: "1",
			data: []byte{
				0b0000_0001,
			},
			text: "1",
		},
		{
			name: "-1",
			data: []byte{
				0b0000_0011,
			},
			text: "11",
		},
		{
			name: "-2",
			data: []byte{
				0b0000_0010,
			},
			text: "10",
		},
		{
			name: "5",
			data: []byte{
				0b0000_0101,
			},
			text: "101",
		},
		{
			name: "-5",
			data: []byte{
				0b0000_1111,
			},
			text: "1111",
		},
		{
			name: "6",
			data: []byte{
				0b0001_1010,
			},
			text: "11010",
		},
		{
			name: "-128",
			data: []byte{
				0b1000_0000,
			},
			text: "10000000",
		},
		{
			name: "128",
			data: []byte{
				0b0000_0001,
				0b1000_0000,
			},
			text: "110000000",
		},
		{
			name: "256",
			data: []byte{
				0b0000_0001,
				0b0000_0000,
			},
			text: "100000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			// These checks ensure that our test case name matches the value.
			v := new(big.Int)
			err := v.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)

			t.Run("marshal binary", func(t *testing.T) {
				data, err := Block{Value: v}.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal binary", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, 0, v.Cmp(blk.Value), "want=%s got=%s", v, blk.Value)
			})

			t.Run("marshal text", func(t *testing.T) {
				text, err := Block{Value: v}.MarshalText()
				require.NoError(t, err)
				require.Equal(t, tc.text, string(text))
			})

			t.Run("unmarshal text", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalText([]byte(tc.text))
				require.NoError(t, err)
				require.Equal(t, 0, v.Cmp(blk.Value), "want=%s got=%s", v, blk.Value)
			})
		})
	}
}

func TestNilValue(t *testing.T) {
	blk := Block{}

	data, err := blk.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0}, data)

	text, err := blk.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "0", string(text))

	require.Equal(t, 0, blk.Bits())
}

func TestInvalid(t *testing.T) {
	type TC struct {
		name string
		fn   func(*Block) error
		Mark error
	}

	tcs := []TC{
		{
			name: "empty binary",
			fn:   func(b *Block) error { return b.UnmarshalBinary(nil) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "empty text",
			fn:   func(b *Block) error { return b.UnmarshalText([]byte{}) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "bad digit",
			fn:   func(b *Block) error { return b.UnmarshalText([]byte("1021")) },
			Mark: oops.New("unexpected"),
		},
		{
			name: "sign",
			fn:   func(b *Block) error { return b.UnmarshalText([]byte("-101")) },
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			blk := &Block{}
			err := tc.fn(blk)
			require.Error(t, err, tc.Mark)
			require.True(t, Error.Has(err), tc.Mark)
			require.Nil(t, blk.Value, tc.Mark)
		})
	}
}

func TestRoundtrip(t *testing.T) {
	for i := int64(-5_000); i <= 5_000; i++ {
		in := Block{Value: big.NewInt(i)}

		data, err := in.MarshalBinary()
		if err != nil {
			t.Fatalf("%d: %+v", i, err)
		}

		if len(data) > 1 && data[0] == 0 {
			t.Fatalf("%d: leading zero byte %08b", i, data)
		}

		out := &Block{}
		err = out.UnmarshalBinary(data)
		if err != nil {
			t.Fatalf("%d: %+v", i, err)
		}

		if out.Value.Int64() != i {
			t.Fatalf("%d -> %08b -> %s", i, data, out.Value)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	blk := Block{Value: big.NewInt(-524287)}

	for n := 0; n < b.N; n++ {
		_, err := blk.MarshalBinary()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := Block{Value: big.NewInt(-524287)}.MarshalBinary()
	if err != nil {
		b.Fatalf("%+v", err)
	}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		err := blk.UnmarshalBinary(data)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
