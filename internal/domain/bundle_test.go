package domain_test

import (
	"testing"

	"github.com/abdidvp/bundleverify/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPropertyMap_PreservesInsertionOrder(t *testing.T) {
	m := domain.NewPropertyMap()
	m.Set("zeta", "1")
	m.Set("alpha", "2")
	m.Set("mid", "3")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestPropertyMap_OverwriteKeepsPosition(t *testing.T) {
	m := domain.NewPropertyMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestPropertyMap_GetMissing(t *testing.T) {
	m := domain.NewPropertyMap()
	_, ok := m.Get("nope")
	assert.False(t, ok)

	var nilMap *domain.PropertyMap
	_, ok = nilMap.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, 0, nilMap.Len())
}

func TestPropertyMap_KeysIsACopy(t *testing.T) {
	m := domain.NewPropertyMap()
	m.Set("a", "1")
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestBundleSet_ReferenceExcludedFromComparisons(t *testing.T) {
	ref := domain.BundleEntry{Path: "messages.properties", Properties: domain.NewPropertyMap()}
	set := domain.NewBundleSet(ref)
	set.Add(domain.BundleEntry{Path: "messages_fr.properties", Properties: domain.NewPropertyMap()})
	set.Add(domain.BundleEntry{Path: "messages_de.properties", Properties: domain.NewPropertyMap()})

	assert.Equal(t, "messages.properties", set.Reference().Path)
	cmps := set.Comparisons()
	assert.Len(t, cmps, 2)
	assert.Equal(t, "messages_fr.properties", cmps[0].Path)
	assert.Equal(t, "messages_de.properties", cmps[1].Path)
}

func TestRunSummary_Passed(t *testing.T) {
	s := domain.RunSummary{Results: []domain.ValidationResult{
		{File: "fr", TotalEntries: 2, SameValueAsMain: 2},
		{File: "de", TotalEntries: 2},
	}}
	assert.True(t, s.Passed())
	assert.Empty(t, s.FailedFiles())
}

func TestRunSummary_FailedFiles(t *testing.T) {
	s := domain.RunSummary{Results: []domain.ValidationResult{
		{File: "fr", TotalEntries: 2, MissingEntries: 1},
		{File: "de", TotalEntries: 2},
		{File: "es", TotalEntries: 2, EmptyValues: 1},
	}}
	assert.False(t, s.Passed())
	assert.Equal(t, []string{"fr", "es"}, s.FailedFiles())
}

func TestValidationResult_Healthy(t *testing.T) {
	r := domain.ValidationResult{TotalEntries: 10, MissingEntries: 2, EmptyValues: 1, SameValueAsMain: 3}
	assert.Equal(t, 4, r.Healthy())
	assert.True(t, r.Failed())
}
