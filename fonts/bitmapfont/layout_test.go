package bitmapfont

import (
	"image"
	"reflect"
	"testing"
)

func testAtlas() *Atlas {
	return &Atlas{
		Glyphs: map[rune]image.Rectangle{
			'A': image.Rect(10, 0, 14, 8),
			'B': image.Rect(20, 0, 26, 8),
			'é': image.Rect(30, 0, 33, 8),
		},
		Space:      5,
		LineHeight: 9,
		CellWidth:  10,
		CellHeight: 10,
	}
}

func TestLayout(t *testing.T) {
	a := testAtlas()
	tests := []struct {
		name string
		text string
		want []Placement
	}{
		{
			name: "advance by width plus padding",
			text: "AB",
			want: []Placement{
				{Src: a.Glyphs['A'], X: 100, Y: 50},
				{Src: a.Glyphs['B'], X: 105, Y: 50},
			},
		},
		{
			name: "space advances without drawing",
			text: "A B",
			want: []Placement{
				{Src: a.Glyphs['A'], X: 100, Y: 50},
				{Src: a.Glyphs['B'], X: 110, Y: 50},
			},
		},
		{
			name: "newline resets x",
			text: "AB\nB",
			want: []Placement{
				{Src: a.Glyphs['A'], X: 100, Y: 50},
				{Src: a.Glyphs['B'], X: 105, Y: 50},
				{Src: a.Glyphs['B'], X: 100, Y: 59},
			},
		},
		{
			name: "missing runes are skipped",
			text: "A?B",
			want: []Placement{
				{Src: a.Glyphs['A'], X: 100, Y: 50},
				{Src: a.Glyphs['B'], X: 105, Y: 50},
			},
		},
		{
			name: "runes beyond ascii",
			text: "éA",
			want: []Placement{
				{Src: a.Glyphs['é'], X: 100, Y: 50},
				{Src: a.Glyphs['A'], X: 104, Y: 50},
			},
		},
		{
			name: "empty",
			text: "",
			want: []Placement{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Layout(tt.text, 100, 50)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Layout(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMeasure(t *testing.T) {
	a := testAtlas()
	tests := []struct {
		text string
		w, h int
	}{
		{"AB", 12, 9},
		{"A B", 17, 9},
		{"AB\nA", 12, 18},
		{"", 0, 9},
	}
	for _, tt := range tests {
		w, h := a.Measure(tt.text)
		if w != tt.w || h != tt.h {
			t.Errorf("Measure(%q) = (%d, %d), want (%d, %d)", tt.text, w, h, tt.w, tt.h)
		}
	}
}
