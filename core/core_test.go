package core

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func f32bytes(vals ...float32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// setFloat stores v into channel ch, converting to the pixel's data type.
func setFloat(p *PixelValue, ch int, v float64) {
	if ch < 0 || ch >= p.Channels {
		return
	}
	bpe := p.DataType.BytesPerElement()
	b := p.bytes[ch*bpe : (ch+1)*bpe]
	switch p.DataType {
	case Uint8:
		b[0] = uint8(v)
	case Int8:
		b[0] = byte(int8(v))
	case Bool:
		b[0] = 0
		if v != 0 {
			b[0] = 1
		}
	case Uint16:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case Int16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case Uint32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case Int32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	case Float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	}
}

func TestDataTypeTable(t *testing.T) {
	tests := []struct {
		dt     DataType
		bpe    int
		max    float32
		family Family
	}{
		{Uint8, 1, 255, FamilyUnsigned},
		{Uint16, 2, 65535, FamilyUnsigned},
		{Uint32, 4, 4294967295, FamilyUnsigned},
		{Float32, 4, 1, FamilyFloat},
		{Int8, 1, 127, FamilySigned},
		{Int16, 2, 32767, FamilySigned},
		{Int32, 4, 2147483647, FamilySigned},
		{Bool, 1, 1, FamilyUnsigned},
	}
	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			if got := tt.dt.BytesPerElement(); got != tt.bpe {
				t.Errorf("BytesPerElement = %d, want %d", got, tt.bpe)
			}
			if got := tt.dt.Max(); got != tt.max {
				t.Errorf("Max = %v, want %v", got, tt.max)
			}
			if got := tt.dt.Family(); got != tt.family {
				t.Errorf("Family = %v, want %v", got, tt.family)
			}
		})
	}
}

func TestImageInfoValidate(t *testing.T) {
	tests := []struct {
		name string
		info ImageInfo
		want error
	}{
		{"ok", ImageInfo{Width: 2, Height: 2, Channels: 3}, nil},
		{"zero channels", ImageInfo{Width: 2, Height: 2, Channels: 0}, ErrInvalidChannels},
		{"five channels", ImageInfo{Width: 2, Height: 2, Channels: 5}, ErrInvalidChannels},
		{"zero width", ImageInfo{Width: 0, Height: 2, Channels: 1}, ErrInvalidDimensions},
		{"bad type", ImageInfo{Width: 1, Height: 1, Channels: 1, DataType: DataType(42)}, ErrUnknownDataType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClampBatchItem(t *testing.T) {
	info := ImageInfo{Batch: &BatchInfo{BatchSize: 4}}
	for _, tt := range []struct{ in, want uint32 }{{0, 0}, {3, 3}, {4, 3}, {100, 3}} {
		if got := info.ClampBatchItem(tt.in); got != tt.want {
			t.Errorf("ClampBatchItem(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	unbatched := ImageInfo{}
	if got := unbatched.ClampBatchItem(7); got != 0 {
		t.Errorf("unbatched ClampBatchItem = %d, want 0", got)
	}
}

func TestPixelAtPackedAndPlanar(t *testing.T) {
	// 2x1 RGB u8.
	packed := []byte{1, 2, 3, 4, 5, 6}
	planar := []byte{1, 4, 2, 5, 3, 6}
	for _, tt := range []struct {
		name string
		ord  DataOrdering
		data []byte
	}{
		{"packed", Packed, packed},
		{"planar", Planar, planar},
	} {
		t.Run(tt.name, func(t *testing.T) {
			info := &ImageInfo{Width: 2, Height: 1, Channels: 3, DataType: Uint8, Ordering: tt.ord}
			pv, ok := PixelAt(info, tt.data, 1, 0)
			if !ok {
				t.Fatal("PixelAt returned !ok")
			}
			if got := pv.AsRGBA(); got != [4]float32{4, 5, 6, 0} {
				t.Errorf("AsRGBA = %v, want [4 5 6 0]", got)
			}
		})
	}
}

func TestPixelAtOutOfRange(t *testing.T) {
	info := &ImageInfo{Width: 2, Height: 2, Channels: 1, DataType: Uint8}
	if _, ok := PixelAt(info, make([]byte, 4), 2, 0); ok {
		t.Error("PixelAt outside width returned ok")
	}
	if _, ok := PixelAt(info, make([]byte, 3), 0, 0); ok {
		t.Error("PixelAt with short buffer returned ok")
	}
}

func TestPixelSignedDecode(t *testing.T) {
	info := &ImageInfo{Width: 1, Height: 1, Channels: 2, DataType: Int16}
	data := make([]byte, 4)
	binary.LittleEndian.PutUint16(data[0:], uint16(0xFFFF)) // -1
	binary.LittleEndian.PutUint16(data[2:], 300)
	pv, _ := PixelAt(info, data, 0, 0)
	if pv.Float(0) != -1 || pv.Float(1) != 300 {
		t.Errorf("decoded = %v,%v want -1,300", pv.Float(0), pv.Float(1))
	}
}

func TestPixelLabels(t *testing.T) {
	tests := []struct {
		name string
		dt   DataType
		vals []float64
		want []string
	}{
		{"u8", Uint8, []float64{255}, []string{"255"}},
		{"i32", Int32, []float64{-42, 7}, []string{"-42", "7"}},
		{"bool", Bool, []float64{1, 0}, []string{"1", "0"}},
		{"f32 small", Float32, []float64{0.5}, []string{"0.50"}},
		{"f32 negative", Float32, []float64{-3.14159}, []string{"-3.14"}},
		{"f32 large", Float32, []float64{12345}, []string{"1.23e+04"}},
		{"f32 nan", Float32, []float64{math.NaN()}, []string{"nan"}},
		{"f32 inf", Float32, []float64{math.Inf(-1)}, []string{"-inf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := NewPixelValue(len(tt.vals), tt.dt)
			for i, v := range tt.vals {
				setFloat(&pv, i, v)
			}
			got := pv.Labels()
			if len(got) != len(tt.want) {
				t.Fatalf("Labels() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Labels()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestComputeInfo(t *testing.T) {
	info := &ImageInfo{Width: 2, Height: 2, Channels: 2, DataType: Float32, Ordering: Packed}
	data := f32bytes(
		1, -5,
		float32(math.NaN()), 2,
		3, 0,
		-1, 9,
	)
	ci, err := ComputeInfo(info, data)
	if err != nil {
		t.Fatalf("ComputeInfo: %v", err)
	}
	if lo, hi := ci.Range(0); lo != -1 || hi != 3 {
		t.Errorf("channel 0 range = %v..%v, want -1..3", lo, hi)
	}
	if lo, hi := ci.Range(1); lo != -5 || hi != 9 {
		t.Errorf("channel 1 range = %v..%v, want -5..9", lo, hi)
	}
	if lo, hi := ci.Range(2); lo != 0 || hi != 0 {
		t.Errorf("channel past Channels = %v..%v, want 0..0", lo, hi)
	}
}

func TestComputeInfoPlanar(t *testing.T) {
	info := &ImageInfo{Width: 3, Height: 1, Channels: 2, DataType: Uint8, Ordering: Planar}
	data := []byte{5, 1, 9, 100, 200, 150}
	ci, err := ComputeInfo(info, data)
	if err != nil {
		t.Fatalf("ComputeInfo: %v", err)
	}
	if ci.Min[0] != 1 || ci.Max[0] != 9 || ci.Min[1] != 100 || ci.Max[1] != 200 {
		t.Errorf("ComputeInfo = %+v", ci)
	}
}

func TestComputeInfoSizeMismatch(t *testing.T) {
	info := &ImageInfo{Width: 2, Height: 2, Channels: 1, DataType: Uint16}
	if _, err := ComputeInfo(info, make([]byte, 4)); !errors.Is(err, ErrDataSize) {
		t.Errorf("ComputeInfo error = %v, want ErrDataSize", err)
	}
}

func TestParseColoring(t *testing.T) {
	for c := ColoringDefault; c <= ColoringHeatmap; c++ {
		got, err := ParseColoring(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColoring(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseColoring("sepia"); err == nil {
		t.Error("ParseColoring(sepia) succeeded")
	}
}

func TestClipBounds(t *testing.T) {
	lo, hi := Clip{}.Bounds(1, 2)
	if lo != 1 || hi != 2 {
		t.Errorf("empty clip = %v..%v", lo, hi)
	}
	lo, hi = Clip{Max: Float32Ptr(10)}.Bounds(1, 2)
	if lo != 1 || hi != 10 {
		t.Errorf("max clip = %v..%v", lo, hi)
	}
}

func TestImageIDString(t *testing.T) {
	if got := NewImageID("s1", "img").String(); got != "s1/img" {
		t.Errorf("String() = %q, want s1/img", got)
	}
	if got := (ImageID{Name: "img"}).String(); got != "img" {
		t.Errorf("String() without session = %q, want img", got)
	}
}
