package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func linesOf(b *Buffer) []string {
	out := make([]string, 0, b.LineCount())
	for i := 0; i < b.LineCount(); i++ {
		s, _ := b.Line(i)
		out = append(out, s)
	}
	return out
}

func TestNew_SplitsLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{""}},
		{name: "single", text: "abc", want: []string{"abc"}},
		{name: "trailing newline", text: "a\n", want: []string{"a", ""}},
		{name: "crlf", text: "a\r\nb\rc", want: []string{"a", "b", "c"}},
		{name: "unicode", text: "πテ\n🙂", want: []string{"πテ", "🙂"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			if diff := cmp.Diff(tc.want, linesOf(b)); diff != "" {
				t.Fatalf("lines mismatch (-want +got):\n%s", diff)
			}
			if b.Modified() {
				t.Fatalf("fresh buffer must not be modified")
			}
		})
	}
}

func TestBuffer_Accessors(t *testing.T) {
	b := New("héllo\n\nwörld!")

	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("LineCount=%d, want %d", got, want)
	}
	if n, err := b.LineLen(0); err != nil || n != 5 {
		t.Fatalf("LineLen(0)=%d,%v, want 5,nil", n, err)
	}
	if n, err := b.LineLen(1); err != nil || n != 0 {
		t.Fatalf("LineLen(1)=%d,%v, want 0,nil", n, err)
	}
	if _, err := b.LineLen(3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("LineLen(3) err=%v, want ErrOutOfBounds", err)
	}
	if _, err := b.Line(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Line(-1) err=%v, want ErrOutOfBounds", err)
	}
	if got, want := b.End(), (Pos{Row: 2, Col: 6}); got != want {
		t.Fatalf("End=%v, want %v", got, want)
	}

	s, err := b.TextInRange(Pos{Row: 0, Col: 1}, Pos{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("TextInRange: %v", err)
	}
	if want := "éllo\n\nwö"; s != want {
		t.Fatalf("TextInRange=%q, want %q", s, want)
	}
	if s, _ := b.TextInRange(Pos{Row: 0, Col: 0}, b.End()); s != b.Text() {
		t.Fatalf("whole-document range=%q, want %q", s, b.Text())
	}
}

func TestBuffer_TextInRange_Invalid(t *testing.T) {
	b := New("ab\ncd")
	cases := []struct {
		name       string
		start, end Pos
	}{
		{name: "col past end", start: Pos{Row: 0, Col: 0}, end: Pos{Row: 0, Col: 3}},
		{name: "row past end", start: Pos{Row: 0, Col: 0}, end: Pos{Row: 2, Col: 0}},
		{name: "negative", start: Pos{Row: 0, Col: -1}, end: Pos{Row: 0, Col: 1}},
		{name: "reversed", start: Pos{Row: 1, Col: 0}, end: Pos{Row: 0, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.TextInRange(tc.start, tc.end); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("err=%v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestBuffer_ValidAndClamp(t *testing.T) {
	b := New("a\nbc")
	if !b.Valid(Pos{Row: 1, Col: 2}) {
		t.Fatalf("end of line must be valid")
	}
	if b.Valid(Pos{Row: 1, Col: 3}) {
		t.Fatalf("past end of line must be invalid")
	}
	if got, want := b.Clamp(Pos{Row: 999, Col: 999}), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("Clamp=%v, want %v", got, want)
	}
	if got, want := b.Clamp(Pos{Row: 0, Col: 5}), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("Clamp=%v, want %v", got, want)
	}
}

func TestBuffer_ModifiedTracksSaves(t *testing.T) {
	b := New("a")
	if _, err := b.Insert(Pos{Row: 0, Col: 1}, "b"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !b.Modified() {
		t.Fatalf("expected Modified after insert")
	}
	b.MarkSaved()
	if b.Modified() {
		t.Fatalf("expected clean after MarkSaved")
	}
	if _, err := b.Insert(Pos{Row: 0, Col: 0}, ""); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.Modified() {
		t.Fatalf("empty insert must not modify")
	}
}
