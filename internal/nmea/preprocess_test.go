package nmea

import (
	"strings"
	"testing"

	"go.viam.com/test"
)

func TestPreprocess(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", ""},
		{"GPGSV", "GPGSV"},
		{"GPGGA,1,2", "GPGGA,1,2"},
		{"GPGGA,,,,", "GPGGA,?,?,?,"},
		{"GPRMC,,A,,S", "GPRMC,?,A,?,S"},
		{"A,,", "A,?,"},
		{",", ","},
	} {
		got := Preprocess(tc.in)
		test.That(t, got, test.ShouldEqual, tc.want)
		test.That(t, len(got), test.ShouldEqual, len(tc.in)+strings.Count(got, "?"))
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor(Preprocess("GPGGA,1,,3,"))
	test.That(t, c.Remaining(), test.ShouldEqual, 5)

	var toks []string
	for {
		tok, ok := c.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	test.That(t, toks, test.ShouldResemble, []string{"GPGGA", "1", "?", "3", ""})
	test.That(t, c.Remaining(), test.ShouldEqual, 0)
	test.That(t, c.Pos(), test.ShouldEqual, 5)

	_, ok := c.Next()
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, c.Pos(), test.ShouldEqual, 5)
}

func TestIsEmpty(t *testing.T) {
	test.That(t, isEmpty(""), test.ShouldBeTrue)
	test.That(t, isEmpty("?"), test.ShouldBeTrue)
	test.That(t, isEmpty("0"), test.ShouldBeFalse)
	test.That(t, isEmpty("??"), test.ShouldBeFalse)
}
