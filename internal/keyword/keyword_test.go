package keyword

import (
	"testing"

	"github.com/mouniksai/Challenge-1b/internal/docmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The HR professional manages the onboarding, forms and compliance!")
	assert.ElementsMatch(t, []string{"hr", "professional", "manages", "onboarding", "forms", "compliance"}, tokens)
}

func TestTokenize_DropsShortAndStopwords(t *testing.T) {
	assert.Empty(t, Tokenize("a an of to the and"))
	assert.Empty(t, Tokenize(""))
}

func TestTokenize_CaseAndPunctuation(t *testing.T) {
	tokens := Tokenize("Travel-Planner: BUDGET/itinerary (2024)")
	assert.ElementsMatch(t, []string{"travel", "planner", "budget", "itinerary", "2024"}, tokens)
}

func TestBuild_GroupsAreDisjoint(t *testing.T) {
	p := docmodel.Persona{
		Role: "Travel planner professional",
		Job:  "Plan a professional conference trip",
	}
	set := Build(p, []string{"itinerary", "trip", "travel budget"})

	// "professional" appears in both role and job; the job group wins.
	assert.Contains(t, set.Job, "professional")
	assert.NotContains(t, set.Persona, "professional")

	// "trip" is a job token, "travel" a persona token; neither may reappear
	// in the domain group.
	assert.NotContains(t, set.Domain, "trip")
	assert.NotContains(t, set.Domain, "travel")
	assert.Contains(t, set.Domain, "itinerary")
	assert.Contains(t, set.Domain, "budget")
}

func TestBuild_NoDomainTerms(t *testing.T) {
	p := docmodel.Persona{Role: "HR professional", Job: "Create and manage fillable forms"}
	set := Build(p, nil)

	require.NotNil(t, set.Domain)
	assert.Empty(t, set.Domain)
	assert.Contains(t, set.Persona, "professional")
	assert.Contains(t, set.Job, "forms")
	assert.Contains(t, set.Job, "fillable")
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 2.0, w.Persona)
	assert.Equal(t, 3.0, w.Job)
	assert.Equal(t, 1.0, w.Domain)
}
