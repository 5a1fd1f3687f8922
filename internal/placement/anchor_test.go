package placement

import "testing"

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{"", Bottom, false},
		{"bottom", Bottom, false},
		{"topLeft", TopLeft, false},
		{"topleft", TopLeft, false},
		{"BottomCenter", BottomCenter, false},
		{"  right ", Right, false},
		{"middle", "", true},
		{"top-left", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnchor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnchorFlipSides(t *testing.T) {
	for _, a := range Anchors {
		down := a == Top || a == TopLeft || a == TopCenter || a == TopRight
		up := a == Bottom || a == BottomLeft || a == BottomCenter || a == BottomRight

		if a.FlipsDown() != down {
			t.Errorf("%s.FlipsDown() = %v, want %v", a, a.FlipsDown(), down)
		}
		if a.FlipsUp() != up {
			t.Errorf("%s.FlipsUp() = %v, want %v", a, a.FlipsUp(), up)
		}
		if !a.Known() {
			t.Errorf("%s.Known() = false", a)
		}
	}

	if Anchor("sideways").Known() {
		t.Error("unknown anchor reported as known")
	}
}

func TestAnchorsComplete(t *testing.T) {
	if len(Anchors) != 11 {
		t.Errorf("len(Anchors) = %d, want 11", len(Anchors))
	}
}
