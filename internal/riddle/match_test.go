package riddle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Sponge  ", "sponge"},
		{"His Horse's Name is FRIDAY!", "his horses name is friday"},
		{"a-r-e you asleep?", "are you asleep"},
		{"\tRiver\n", "river"},
		{"", ""},
		{"?!...", ""},
		{"Café", "caf"},
		{"  inner  spaces  kept ", "inner  spaces  kept"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestMatchesIgnoresCasePunctuationAndWhitespace(t *testing.T) {
	accepted := []string{"his horse's name is friday", "horse's name is friday", "friday"}
	for _, in := range []string{"friday", "FRIDAY", "  Friday!  ", "Fri-day", "His horses name is Friday."} {
		assert.True(t, Matches(in, accepted), "expected %q to match", in)
	}
}

func TestMatchesRejectsOtherAnswers(t *testing.T) {
	accepted := []string{"sponge"}
	for _, in := range []string{"", "   ", "!!!", "sponges", "a sponge", "spong", "s p o n g e"} {
		assert.False(t, Matches(in, accepted), "expected %q not to match", in)
	}
}

func TestMatchesEmptyAcceptedSet(t *testing.T) {
	assert.False(t, Matches("anything", nil))
}

func TestEntryCheck(t *testing.T) {
	e := Entry{Prompt: "Q: What goes up, but never comes down?", Answers: []string{"age", "your age"}}
	assert.True(t, e.Check("Your AGE"))
	assert.False(t, e.Check("my age"))
}
