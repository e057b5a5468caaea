package fynepicker

import "testing"

func TestDotted(t *testing.T) {
	got := dotted([]string{"jpg", ".png", " "})
	if len(got) != 2 || got[0] != ".jpg" || got[1] != ".png" {
		t.Fatalf("unexpected extensions %v", got)
	}
}
