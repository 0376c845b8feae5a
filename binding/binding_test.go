package binding

import "testing"

func sampleData() any {
	return map[string]any{
		"company": "Panagora",
		"prospect": map[string]any{
			"name":  "Tim Stanton",
			"title": "CIO",
		},
		"items": []any{"first", "second", map[string]any{"name": "third"}},
		"count": 3.0,
	}
}

func TestInterpolate(t *testing.T) {
	data := sampleData()
	cases := []struct {
		in   string
		want string
	}{
		{"no placeholder", "no placeholder"},
		{"${company}", "Panagora"},
		{"Created for Discussion with ${prospect.name}", "Created for Discussion with Tim Stanton"},
		{"${prospect.name} (${prospect.title})", "Tim Stanton (CIO)"},
		{"${items[1]}", "second"},
		{"${items[2].name}", "third"},
		{"${count} cards", "3 cards"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q，期望 %q", c.in, got, c.want)
		}
	}
}

// TestInterpolateMissingPath 缺失路径不报错，占位符原样保留。
func TestInterpolateMissingPath(t *testing.T) {
	data := sampleData()
	cases := []string{
		"${missing}",
		"${prospect.missing}",
		"${items[9]}",
		"${items[-1]}",
		"${company.deeper}",
		"${items[x]}",
		"${}",
	}
	for _, c := range cases {
		if got := Interpolate(c, data); got != c {
			t.Fatalf("缺失路径应保留原样: Interpolate(%q) = %q", c, got)
		}
	}
}

// TestInterpolateNilData data 为空时任何文本原样返回。
func TestInterpolateNilData(t *testing.T) {
	in := "Created for ${prospect.name}"
	if got := Interpolate(in, nil); got != in {
		t.Fatalf("nil 数据应保留原文: %q", got)
	}
}
