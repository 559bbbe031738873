package flappy

import "testing"

func TestParseSkin(t *testing.T) {
	for _, s := range Skins() {
		got, err := ParseSkin(s.String())
		if err != nil {
			t.Fatalf("ParseSkin(%q) failed: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSkin(%q) = %v, expected %v", s.String(), got, s)
		}
	}

	if _, err := ParseSkin("pipe-blue"); err == nil {
		t.Error("expected error for unknown skin")
	}
}

func TestSkinNames(t *testing.T) {
	if SkinGreen.String() != "pipe-green" || SkinRed.String() != "pipe-red" {
		t.Errorf("unexpected names %q, %q", SkinGreen, SkinRed)
	}
	if Skin(9).String() != "pipe-green" {
		t.Error("out of range skin should fall back to green")
	}
}

func TestSkinCycle(t *testing.T) {
	if SkinGreen.Next() != SkinRed || SkinRed.Next() != SkinGreen {
		t.Error("Next should wrap")
	}
	if SkinGreen.Prev() != SkinRed || SkinRed.Prev() != SkinGreen {
		t.Error("Prev should wrap")
	}
}

func TestSkinColorsDiffer(t *testing.T) {
	if SkinGreen.Color() == SkinRed.Color() {
		t.Error("skins should render in different colors")
	}
}

func TestListenerFuncsNilSafe(t *testing.T) {
	var l Listener = ListenerFuncs{}
	l.ScoreChanged(1)
	l.GameOver(1)
	l.RestartReady()

	got := 0
	l = ListenerFuncs{OnScoreChanged: func(s int) { got = s }}
	l.ScoreChanged(7)
	if got != 7 {
		t.Errorf("OnScoreChanged not called, got %d", got)
	}
}
