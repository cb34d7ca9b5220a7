package pins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ps []Pin) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Filter(All) {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Contains(t, Types, p.Type)
		assert.NotEmpty(t, p.Title)
	}
	assert.Len(t, seen, 13)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "5", "9", "10", "12"}, ids(Filter(Project)))
	assert.Equal(t, []string{"2", "7"}, ids(Filter(Experience)))
	assert.Equal(t, []string{"4", "8", "11"}, ids(Filter(Achievement)))
	assert.Equal(t, []string{"6"}, ids(Filter(Skill)))
	assert.Equal(t, []string{"resume-1"}, ids(Filter(Resume)))
	assert.Empty(t, Filter(Blog))
	assert.Len(t, Filter(All), 13)

	// callers may modify the result
	got := Filter(All)
	got[0].Title = "changed"
	assert.Equal(t, "My Resume", Filter(All)[0].Title)
}

func TestLookup(t *testing.T) {
	p, err := Lookup(ContactFormID)
	require.NoError(t, err)
	assert.Equal(t, "Contact Me", p.Title)

	_, err = Lookup("definitely-not-a-pin")
	assert.ErrorIs(t, err, ErrUnknownPin)
	assert.False(t, Known("definitely-not-a-pin"))
	assert.True(t, Known("resume-1"))
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"":           All,
		"all":        All,
		"project":    Project,
		" Skill ":    Skill,
		"EXPERIENCE": Experience,
	} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseType("gadget")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "Projects", Project.Plural())
	assert.Equal(t, "Achievements", Achievement.Plural())
	assert.Equal(t, "View All", All.Plural())
}
