package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutlineOpString(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OutlineOp(%d).String() = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestGlyphOutlineEmpty(t *testing.T) {
	var nilOutline *GlyphOutline
	if !nilOutline.IsEmpty() || nilOutline.SegmentCount() != 0 {
		t.Error("nil outline should be empty")
	}
	if got := (&GlyphOutline{}).computeBounds(); got != (Rect{}) {
		t.Errorf("empty bounds = %+v, want zero", got)
	}
}

func TestGlyphOutlineComputeBounds(t *testing.T) {
	o := &GlyphOutline{Segments: []OutlineSegment{
		{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{1, -2}}},
		// Control point above the end points counts; unused Points[2] does not.
		{Op: OutlineOpQuadTo, Points: [3]OutlinePoint{{3, -9}, {5, -2}, {100, 100}}},
		{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{5, 1.5}}},
	}}

	want := Rect{MinX: 1, MinY: -9, MaxX: 5, MaxY: 1.5}
	if diff := cmp.Diff(want, o.computeBounds()); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if want.Width() != 4 || want.Height() != 10.5 || want.Empty() {
		t.Errorf("Rect helpers wrong for %+v", want)
	}
	if !(Rect{MinX: 1, MaxX: 1, MaxY: 3}).Empty() {
		t.Error("zero-width Rect should be empty")
	}
}
