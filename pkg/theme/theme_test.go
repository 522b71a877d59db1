package theme

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/willbeason/fractal-draw/pkg/geometry"
)

func mustNew(t *testing.T, v Variant) Theme {
	t.Helper()
	th, err := New(v)
	if err != nil {
		t.Fatalf("New(%v): %v", v, err)
	}
	return th
}

func TestGrayscale(t *testing.T) {
	th := mustNew(t, Grayscale)
	point := geometry.Complex{Re: 0.3, Im: -1.2}

	for steps := uint64(0); steps <= th.MaxSteps(); steps++ {
		got := th.ColorFor(steps, point)
		level := uint8(steps % 256)
		if got.Red != level || got.Green != level || got.Blue != level {
			t.Fatalf("steps %d: got %+v, want all channels %d", steps, got, level)
		}
	}
}

func TestSingleChannel(t *testing.T) {
	tcs := []struct {
		variant Variant
		want    func(level uint8) Color
	}{
		{variant: Red, want: func(l uint8) Color { return Color{Red: l} }},
		{variant: Green, want: func(l uint8) Color { return Color{Green: l} }},
		{variant: Blue, want: func(l uint8) Color { return Color{Blue: l} }},
	}

	for _, tc := range tcs {
		t.Run(tc.variant.String(), func(t *testing.T) {
			th := mustNew(t, tc.variant)
			for _, steps := range []uint64{0, 1, 127, 255, 256, 300} {
				got := th.ColorFor(steps, geometry.Complex{Re: 1, Im: 1})
				if diff := cmp.Diff(tc.want(uint8(steps%256)), got); diff != "" {
					t.Errorf("steps %d (-want +got):\n%s", steps, diff)
				}
			}
		})
	}
}

func TestPosition(t *testing.T) {
	th := mustNew(t, Position)

	tcs := []struct {
		name  string
		steps uint64
		point geometry.Complex
		want  Color
	}{
		{name: "origin", steps: 7, want: Color{Green: 7}},
		{name: "uses absolute value", steps: 256, point: geometry.Complex{Re: -1, Im: 0.5}, want: Color{Red: 128, Blue: 64}},
		{name: "floors", steps: 1, point: geometry.Complex{Re: 0.01, Im: -0.999}, want: Color{Red: 1, Green: 1, Blue: 127}},
		{name: "saturates", steps: 3, point: geometry.Complex{Re: 2.5, Im: -40}, want: Color{Red: 255, Green: 3, Blue: 255}},
		{name: "nan", steps: 3, point: geometry.Complex{Re: math.NaN(), Im: math.Inf(1)}, want: Color{Red: 0, Green: 3, Blue: 255}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := th.ColorFor(tc.steps, tc.point)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDemoIsUnimplemented(t *testing.T) {
	_, err := New(Demo)
	if !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("New(Demo): got error %v, want %v", err, ErrUnimplemented)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnimplemented) {
			t.Errorf("demo color: recovered %v, want %v", r, ErrUnimplemented)
		}
	}()
	definitions[Demo].color(1, geometry.Complex{})
}

func TestNew_Unknown(t *testing.T) {
	for _, v := range []Variant{-1, Demo + 1} {
		if _, err := New(v); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("New(%d): got error %v, want %v", int(v), err, ErrUnknownVariant)
		}
	}
}

func TestMaxSteps(t *testing.T) {
	for _, v := range Variants() {
		if !v.Implemented() {
			continue
		}
		th := mustNew(t, v)
		if th.MaxSteps() != 256 {
			t.Errorf("%v: MaxSteps() = %d, want 256", v, th.MaxSteps())
		}
		if th.Variant() != v {
			t.Errorf("%v: Variant() = %v", v, th.Variant())
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v, err)
		}
		if got != v {
			t.Errorf("ParseVariant(%q) = %v", v, got)
		}
	}

	if got, err := ParseVariant("grayscale"); err != nil || got != Grayscale {
		t.Errorf("ParseVariant(\"grayscale\") = %v, %v", got, err)
	}

	if _, err := ParseVariant("sepia"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ParseVariant(\"sepia\"): got error %v, want %v", err, ErrUnknownVariant)
	}
}

func TestPackUnpack(t *testing.T) {
	colors := []Color{
		{},
		{Red: 0xff, Green: 0xff, Blue: 0xff},
		{Red: 0x12, Green: 0x34, Blue: 0x56},
		{Red: 1},
		{Green: 1},
		{Blue: 1},
	}

	for _, c := range colors {
		packed := c.Pack()
		if packed>>24 != 0 {
			t.Errorf("%+v: packed %#x has a nonzero top byte", c, packed)
		}
		if got := Unpack(packed); got != c {
			t.Errorf("Unpack(%#x) = %+v, want %+v", packed, got, c)
		}
		if packed&0xff != uint32(c.Red) || (packed>>8)&0xff != uint32(c.Green) || (packed>>16)&0xff != uint32(c.Blue) {
			t.Errorf("%+v: packed %#x has the wrong channel layout", c, packed)
		}
	}

	if got, want := (Color{Red: 0x12, Green: 0x34, Blue: 0x56}).Pack(), uint32(0x563412); got != want {
		t.Errorf("Pack() = %#x, want %#x", got, want)
	}
}
