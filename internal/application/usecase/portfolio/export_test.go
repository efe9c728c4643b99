package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulladumor/portfolio-api/internal/domain/portfolio"
	"github.com/rahulladumor/portfolio-api/internal/domain/service"
	"github.com/rahulladumor/portfolio-api/internal/domain/testimonial"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

func Test_Export_EmptyStoreProducesEmptyArrays(t *testing.T) {
	repos := newFakeRepoSet()
	uc := NewExportUseCase(repos.repositories(), testLogger())

	doc, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, doc.Certifications)
	assert.NotNil(t, doc.Services)
	assert.NotNil(t, doc.WorkExperience)
	assert.Empty(t, doc.Certifications)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	// arrays serialize as [], never null
	assert.Equal(t, []any{}, body["certifications"])
	assert.Equal(t, []any{}, body["services"])
	assert.Equal(t, []any{}, body["workExperience"])

	// absent singletons leave their keys off entirely
	_, hasName := body["name"]
	assert.False(t, hasName)
	_, hasSkills := body["skills"]
	assert.False(t, hasSkills)
}

func Test_Export_RoundTripAfterImport(t *testing.T) {
	repos := newFakeRepoSet()
	importUC := NewImportUseCase(repos.repositories(), nil, nil, testLogger())
	exportUC := NewExportUseCase(repos.repositories(), testLogger())

	in := &portfolio.Document{
		Name:      "Jane Doe",
		Title:     "Cloud Architect",
		Email:     "jane@example.com",
		Languages: []string{"English", "Gujarati"},
		Services: []service.Service{
			{Name: "Cloud Audit", Description: "Full architecture review"},
		},
		ProblemSection: map[string]any{"headline": "The problem"},
		TestimonialsSection: map[string]any{
			"title": "What clients say",
			"testimonials": []any{
				map[string]any{"name": "Alice", "testimonial": "Great work"},
			},
		},
	}

	_, err := importUC.Execute(context.Background(), in)
	require.NoError(t, err)

	out, err := exportUC.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", out.Name)
	assert.Equal(t, "Cloud Architect", out.Title)
	assert.Equal(t, []string{"English", "Gujarati"}, out.Languages)
	require.Len(t, out.Services, 1)
	assert.Equal(t, "Cloud Audit", out.Services[0].Name)
	assert.Equal(t, "The problem", out.ProblemSection["headline"])
}

func Test_Export_InjectsNestedCollectionsIntoSections(t *testing.T) {
	repos := newFakeRepoSet()
	uc := NewExportUseCase(repos.repositories(), testLogger())

	// the testimonial lives only in its collection; the stored section blob
	// knows nothing about it
	require.NoError(t, repos.testimonials.Create(context.Background(), &testimonial.Testimonial{
		Name:        "Alice",
		Testimonial: "Great work",
	}))

	doc, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, doc.TestimonialsSection)
	nested, ok := doc.TestimonialsSection["testimonials"].([]any)
	require.True(t, ok)
	require.Len(t, nested, 1)

	got, ok := nested[0].(testimonial.Testimonial)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
}

func Test_Export_SectionBlobKeysSurviveInjection(t *testing.T) {
	repos := newFakeRepoSet()
	importUC := NewImportUseCase(repos.repositories(), nil, nil, testLogger())
	exportUC := NewExportUseCase(repos.repositories(), testLogger())

	in := &portfolio.Document{
		TestimonialsSection: map[string]any{
			"title":    "What clients say",
			"subtitle": "Real quotes",
			"testimonials": []any{
				map[string]any{"name": "Alice", "testimonial": "Great work"},
			},
		},
	}
	_, err := importUC.Execute(context.Background(), in)
	require.NoError(t, err)

	out, err := exportUC.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "What clients say", out.TestimonialsSection["title"])
	assert.Equal(t, "Real quotes", out.TestimonialsSection["subtitle"])

	// the nested array is rebuilt from the live collection, not echoed from
	// the stored blob
	nested, ok := out.TestimonialsSection["testimonials"].([]any)
	require.True(t, ok)
	require.Len(t, nested, 1)
	got, ok := nested[0].(testimonial.Testimonial)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)
	assert.NotEqual(t, got.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func Test_Export_ReadFailureIsInternal(t *testing.T) {
	repos := newFakeRepoSet()
	repos.certifications.err = errors.New("db down")
	uc := NewExportUseCase(repos.repositories(), testLogger())

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInternal))
}
