package parser

import "testing"

func TestNormalizeHeader_Basic(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Employee Name":      "employeename",
		"  Weekly Hours  ":   "weeklyhours",
		"\ufeffName":         "name",
		"OT":                 "ot",
		"Leave_Days (3 mo.)": "leavedays3mo",
		"":                   "",
		"！？～":                "",
	}

	for input, want := range cases {
		if got := NormalizeHeader(input); got != want {
			t.Fatalf("NormalizeHeader(%q) want=%q got=%q", input, want, got)
		}
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"\ufeff  Employee Name ", "PERFORMANCE-Score", "dept", ""}
	for _, input := range inputs {
		once := NormalizeHeader(input)
		if twice := NormalizeHeader(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
