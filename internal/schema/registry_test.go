package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

func TestSpecFor_CoversAllEntityTypes(t *testing.T) {
	for _, entityType := range domain.AllEntityTypes() {
		spec, ok := SpecFor(entityType)
		require.True(t, ok, "no spec for %s", entityType)
		assert.NotEmpty(t, spec.Properties)
	}
}

func TestSpecFor_UnknownType(t *testing.T) {
	_, ok := SpecFor(domain.EntityType("widgets"))
	assert.False(t, ok)
}

func TestSpecs_SingleTitleProperty(t *testing.T) {
	// Databases allow exactly one title column, so no contract may require
	// more than one.
	for _, entityType := range domain.AllEntityTypes() {
		spec, _ := SpecFor(entityType)
		titles := 0
		for _, p := range spec.Properties {
			if p.Type == domain.PropertyTitle {
				titles++
			}
		}
		assert.Equal(t, 1, titles, "%s must declare exactly one title property", entityType)
	}
}

func TestSpecs_OnlyFAQsAreLenient(t *testing.T) {
	for _, entityType := range domain.AllEntityTypes() {
		spec, _ := SpecFor(entityType)
		assert.Equal(t, entityType == domain.EntityFAQs, spec.Lenient, "%s", entityType)
	}
}

func TestSpecs_LenientPropertiesCarrySynonyms(t *testing.T) {
	spec, _ := SpecFor(domain.EntityFAQs)
	for _, p := range spec.Properties {
		if p.Required {
			assert.NotEmpty(t, p.Synonyms, "required FAQ property %q needs synonyms", p.Name)
		}
	}
}
