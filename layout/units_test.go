package layout

import "testing"

func TestParseLength(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		unit  Unit
	}{
		{"13.333in", 13.333, UnitIN},
		{"7.5in", 7.5, UnitIN},
		{"10mm", 10, UnitMM},
		{"2cm", 2, UnitCM},
		{"54pt", 54, UnitPT},
		{"3.9", 3.9, UnitNone},
		{" 12 pt ", 12, UnitPT},
	}
	for _, c := range cases {
		got := ParseLength(c.in)
		if got.Value != c.value || got.Unit != c.unit {
			t.Fatalf("ParseLength(%q) = %+v，期望 value=%g unit=%v", c.in, got, c.value, c.unit)
		}
	}

	if got := ParseLength("abc"); !got.IsZero() || got.Unit != UnitNone {
		t.Fatalf("非法输入应返回零值，实际 %+v", got)
	}
	if got := ParseLength(""); !got.IsZero() {
		t.Fatalf("空输入应返回零值，实际 %+v", got)
	}
}

func TestLengthToInches(t *testing.T) {
	approx := func(a, b float64) bool { d := a - b; return d < 1e-9 && d > -1e-9 }

	if got := (Length{Value: 25.4, Unit: UnitMM}).ToInches(); !approx(got, 1) {
		t.Fatalf("25.4mm 应为 1in，实际 %g", got)
	}
	if got := (Length{Value: 2.54, Unit: UnitCM}).ToInches(); !approx(got, 1) {
		t.Fatalf("2.54cm 应为 1in，实际 %g", got)
	}
	if got := (Length{Value: 72, Unit: UnitPT}).ToInches(); !approx(got, 1) {
		t.Fatalf("72pt 应为 1in，实际 %g", got)
	}
	// 无单位按英寸处理
	if got := (Length{Value: 7.5}).ToInches(); got != 7.5 {
		t.Fatalf("无单位数值应按英寸处理，实际 %g", got)
	}
}

func TestEMUConversion(t *testing.T) {
	if got := InchesToEMU(1); got != EmuPerInch {
		t.Fatalf("1in 应为 %d EMU，实际 %d", int64(EmuPerInch), got)
	}
	if got := InchesToEMU(7.5); got != 6858000 {
		t.Fatalf("7.5in 应为 6858000 EMU，实际 %d", got)
	}
}

func TestPtConversion(t *testing.T) {
	if got := PtToInches(72); got != 1 {
		t.Fatalf("72pt 应为 1in，实际 %g", got)
	}
	if got := PtToMM(72); got != 25.4 {
		t.Fatalf("72pt 应为 25.4mm，实际 %g", got)
	}
	if got := InchesToMM(2); got != 50.8 {
		t.Fatalf("2in 应为 50.8mm，实际 %g", got)
	}
}
