package charstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/outline"
)

// encode builds a charstring from ints (encoded as operands) and
// Operators.
func encode(items ...any) []byte {
	var out []byte
	for _, item := range items {
		switch v := item.(type) {
		case int:
			switch {
			case v >= -107 && v <= 107:
				out = append(out, byte(v+139))
			case v >= 108 && v <= 1131:
				v -= 108
				out = append(out, byte(247+v/256), byte(v%256))
			case v >= -1131 && v <= -108:
				v = -v - 108
				out = append(out, byte(251+v/256), byte(v%256))
			default:
				out = append(out, 28, byte(int16(v)>>8), byte(int16(v)))
			}
		case Operator:
			if v >= 12<<8 {
				out = append(out, 12, byte(v&0xff))
			} else {
				out = append(out, byte(v))
			}
		case byte:
			out = append(out, v)
		}
	}
	return out
}

func ones(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestDecodeNumbers(t *testing.T) {
	data := []byte{
		28, 0x01, 0x00, // 256
		247, 0, // 108
		250, 255, // 1131
		251, 0, // -108
		254, 255, // -1131
		255, 0x00, 0x01, 0x80, 0x00, // 1.5
		32,  // -107
		246, // 107
		byte(RLineTo),
		byte(EndChar),
	}
	prog, err := Decode(data, nil, nil)
	require.NoError(t, err)
	require.Len(t, prog.Ops, 2)
	assert.Equal(t, []float64{256, 108, 1131, -108, -1131, 1.5, -107, 107}, prog.Ops[0].Operands)
	assert.Equal(t, RLineTo, prog.Ops[0].Operator)
	assert.Equal(t, EndChar, prog.Ops[1].Operator)
}

func TestDecodeEncodeHelper(t *testing.T) {
	for _, v := range []int{0, 1, -1, 107, -107, 108, -108, 500, -500, 1131, -1131, 2000, -2000} {
		prog, err := Decode(encode(v, HMoveTo, EndChar), nil, nil)
		require.NoError(t, err, "%d", v)
		assert.Equal(t, []float64{float64(v)}, prog.Ops[0].Operands, "%d", v)
	}
}

func TestDecodeWidth(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		width    float64
		hasWidth bool
		ops      []Op
	}{
		{
			name:     "rmoveto with width",
			data:     encode(50, 10, 20, RMoveTo, 30, 0, RLineTo, EndChar),
			width:    50,
			hasWidth: true,
			ops: []Op{
				{RMoveTo, []float64{10, 20}},
				{RLineTo, []float64{30, 0}},
				{EndChar, nil},
			},
		},
		{
			name: "rmoveto without width",
			data: encode(10, 20, RMoveTo, EndChar),
			ops: []Op{
				{RMoveTo, []float64{10, 20}},
				{EndChar, nil},
			},
		},
		{
			name:     "hmoveto with width",
			data:     encode(-20, 10, HMoveTo, EndChar),
			width:    -20,
			hasWidth: true,
			ops: []Op{
				{HMoveTo, []float64{10}},
				{EndChar, nil},
			},
		},
		{
			name:     "hstem with width",
			data:     encode(300, 0, 10, HStem, 1, 2, RMoveTo, EndChar),
			width:    300,
			hasWidth: true,
			ops: []Op{
				{HStem, []float64{0, 10}},
				{RMoveTo, []float64{1, 2}},
				{EndChar, nil},
			},
		},
		{
			name:     "empty glyph with width",
			data:     encode(100, EndChar),
			width:    100,
			hasWidth: true,
			ops:      []Op{{EndChar, nil}},
		},
		{
			name:     "accent endchar with width",
			data:     encode(100, 0, 0, 1, 2, EndChar),
			width:    100,
			hasWidth: true,
			ops:      []Op{{EndChar, []float64{0, 0, 1, 2}}},
		},
		{
			name: "only the first stack clearing operator carries a width",
			data: encode(0, 10, HStem, 5, 10, 20, RMoveTo, EndChar),
			ops: []Op{
				{HStem, []float64{0, 10}},
				{RMoveTo, []float64{5, 10, 20}},
				{EndChar, nil},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prog, err := Decode(test.data, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, test.width, prog.Width)
			assert.Equal(t, test.hasWidth, prog.HasWidth)
			assert.Equal(t, test.ops, prog.Ops)
		})
	}
}

func TestDecodeSubroutines(t *testing.T) {
	line := encode(30, 0, RLineTo, Return)
	want := []Op{
		{RMoveTo, []float64{10, 20}},
		{RLineTo, []float64{30, 0}},
		{EndChar, nil},
	}

	prog, err := Decode(encode(10, 20, RMoveTo, -107, CallSubr, EndChar), nil, Subrs{line})
	require.NoError(t, err)
	assert.Equal(t, want, prog.Ops)

	prog, err = Decode(encode(10, 20, RMoveTo, -107, CallGSubr, EndChar), Subrs{line}, nil)
	require.NoError(t, err)
	assert.Equal(t, want, prog.Ops)

	// endchar inside a subroutine ends the glyph
	tail := encode(30, 0, RLineTo, EndChar)
	prog, err = Decode(encode(10, 20, RMoveTo, -107, CallSubr, 1, 1, RLineTo), nil, Subrs{tail})
	require.NoError(t, err)
	assert.Equal(t, want, prog.Ops)
}

func TestDecodeNestedSubroutines(t *testing.T) {
	local := Subrs{
		encode(1, 0, RLineTo, -107, CallGSubr, Return),
	}
	global := Subrs{
		encode(0, 0, RLineTo, Return),
		encode(0, 1, RLineTo, -107, CallSubr, Return),
	}
	prog, err := Decode(encode(0, 0, RMoveTo, -106, CallGSubr, EndChar), global, local)
	require.NoError(t, err)
	require.Len(t, prog.Ops, 5)
	assert.Equal(t, []float64{0, 1}, prog.Ops[1].Operands)
	assert.Equal(t, []float64{1, 0}, prog.Ops[2].Operands)
	assert.Equal(t, []float64{0, 0}, prog.Ops[3].Operands)
}

func TestSubrsBias(t *testing.T) {
	assert.Equal(t, 107, Subrs(nil).bias())
	assert.Equal(t, 107, make(Subrs, 1239).bias())
	assert.Equal(t, 1131, make(Subrs, 1240).bias())
	assert.Equal(t, 1131, make(Subrs, 33899).bias())
	assert.Equal(t, 32768, make(Subrs, 33900).bias())
}

func TestDecodeHintMask(t *testing.T) {
	// three stems need one mask byte; 0xff would decode as a number if
	// it were not skipped
	data := encode(0, 10, HStem, 0, 10, 20, 10, VStem, HintMask, byte(0xff), 1, 2, RMoveTo, EndChar)
	prog, err := Decode(data, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []Op{
		{HStem, []float64{0, 10}},
		{VStem, []float64{0, 10, 20, 10}},
		{HintMask, nil},
		{RMoveTo, []float64{1, 2}},
		{EndChar, nil},
	}, prog.Ops)

	// operands before hintmask are an implicit vstem: 9 stems, 2 bytes
	data = encode(0, 1, 2, 1, 4, 1, 6, 1, HStemHM,
		0, 1, 2, 1, 4, 1, 6, 1, 8, 1, HintMask, byte(0xff), byte(0xff),
		EndChar)
	prog, err = Decode(data, nil, nil)
	require.NoError(t, err)
	require.Len(t, prog.Ops, 3)
	assert.Equal(t, EndChar, prog.Ops[2].Operator)
}

func TestDecodeErrors(t *testing.T) {
	recursive := Subrs{encode(-107, CallSubr, Return)}
	tests := []struct {
		name   string
		data   []byte
		global Subrs
		local  Subrs
		err    error
	}{
		{"short int16", []byte{28, 1}, nil, nil, ErrTruncated},
		{"short fixed", []byte{255, 0, 1}, nil, nil, ErrTruncated},
		{"short two byte operand", []byte{247}, nil, nil, ErrTruncated},
		{"short escape", []byte{12}, nil, nil, ErrTruncated},
		{"missing hint mask", encode(0, 10, HStem, HintMask), nil, nil, ErrTruncated},
		{"dangling operands", encode(1, 2), nil, nil, ErrTruncated},
		{"stack overflow", encode(ones(49)...), nil, nil, ErrStackOverflow},
		{"missing local subroutine", encode(0, CallSubr), nil, nil, ErrSubroutine},
		{"missing global subroutine", encode(5, CallGSubr), Subrs{{}}, nil, ErrSubroutine},
		{"call without index", encode(CallSubr), nil, nil, ErrSubroutine},
		{"recursion", encode(-107, CallSubr), nil, recursive, ErrSubroutine},
		{"unknown operator", []byte{2}, nil, nil, ErrUnknownOperator},
		{"unknown escape", []byte{12, 0}, nil, nil, ErrUnknownOperator},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prog, err := Decode(test.data, test.global, test.local)
			assert.Nil(t, prog)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestDecodeAndFlatten(t *testing.T) {
	data := encode(500,
		0, 0, RMoveTo,
		100, 0, 0, 100, RLineTo,
		-100, HLineTo,
		200, 0, RMoveTo,
		0, 10, 10, 0, 0, -10, 0, 10, 10, 0, 0, -10, 50, Flex,
		EndChar)
	prog, err := Decode(data, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, prog.Width)

	pl, err := Flatten(prog.Ops, outline.WithSamples(2))
	require.NoError(t, err)
	require.Len(t, pl.Segments, 2)
	assert.Equal(t, pts(0, 0, 100, 0, 100, 100, 0, 100), pl.Segments[0].Points)
	assert.Equal(t, pts(200, 100, 210, 100, 220, 100), pl.Segments[1].Points)
	for _, s := range pl.Segments {
		assert.True(t, s.Closed)
	}
}
