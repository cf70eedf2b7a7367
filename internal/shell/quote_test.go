package shell

import (
	"os/exec"
	"testing"
)

func TestQuote_SafeUnchanged(t *testing.T) {
	for _, s := range []string{"auth-spike", "a.b/c", "user@host", "k=v,w:x", "100%"} {
		if got := Quote(s); got != s {
			t.Errorf("Quote(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestQuote_Empty(t *testing.T) {
	if got := Quote(""); got != "''" {
		t.Fatalf("got %q", got)
	}
}

func TestQuote_SingleQuote(t *testing.T) {
	got := Quote("it's")
	want := `'it'"'"'s'`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestQuote_Spaces(t *testing.T) {
	if got := Quote("Spike: Auth architecture"); got != "'Spike: Auth architecture'" {
		t.Fatalf("got %q", got)
	}
}

func TestQuoteAlways_Safe(t *testing.T) {
	if got := QuoteAlways("abc"); got != "'abc'" {
		t.Fatalf("got %q", got)
	}
}

func TestComment_FlattensNewlines(t *testing.T) {
	got := Comment("first\nrm -rf /\r\nthird")
	if got != "first rm -rf / third" {
		t.Fatalf("got %q", got)
	}
}

func roundTrip(t *testing.T, token string) string {
	t.Helper()
	out, err := exec.Command("bash", "-c", "printf '%s' "+token).Output()
	if err != nil {
		t.Fatalf("bash failed for token %q: %v", token, err)
	}
	return string(out)
}

func TestQuote_RoundTripThroughBash(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not found on PATH")
	}
	inputs := []string{
		"",
		"plain",
		"two words",
		"it's",
		`say "hi"`,
		"`whoami`",
		"$HOME and ${PATH}",
		`back\slash`,
		"line one\nline two",
		"'; rm -rf / #",
		"$(touch /tmp/pwned)",
		"tab\there",
		"ünïcødé ✓",
		"'''",
		"-flag-looking",
	}
	for _, in := range inputs {
		for _, token := range []string{Quote(in), QuoteAlways(in)} {
			if got := roundTrip(t, token); got != in {
				t.Errorf("round trip of %q via %q = %q", in, token, got)
			}
		}
	}
}

func TestQuote_AlreadyQuotedStillRoundTrips(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not found on PATH")
	}
	in := Quote("it's here")
	if got := roundTrip(t, Quote(in)); got != in {
		t.Fatalf("got %q, want %q", got, in)
	}
}
