package portfolio

import (
	"fmt"

	"github.com/rahulladumor/portfolio-api/pkg/apperror"
)

// arrayFields are the top-level keys that must hold arrays when present.
var arrayFields = []string{
	"certifications",
	"services",
	"workExperience",
	"valuePropositions",
	"languages",
	"achievements",
	"metrics",
}

// ValidateRawDocument shape-checks a decoded bulk-update body before it is
// bound to a Document. Business rules stay with the repositories; this layer
// only rejects bodies that cannot possibly map onto the collections.
func ValidateRawDocument(body map[string]any) *apperror.AppError {
	if len(body) == 0 {
		return apperror.NewInvalidInput("Request body cannot be empty", "bulk update requires a non-empty document")
	}

	for _, field := range arrayFields {
		v, ok := body[field]
		if !ok || v == nil {
			continue
		}
		if _, isArray := v.([]any); !isArray {
			return apperror.NewInvalidInput(
				fmt.Sprintf("Field '%s' must be an array", field),
				fmt.Sprintf("got %T", v),
			)
		}
	}

	if err := checkNestedArray(body, "testimonialsSection", "testimonials"); err != nil {
		return err
	}
	if err := checkNestedArray(body, "caseStudiesSection", "caseStudies"); err != nil {
		return err
	}

	return nil
}

func checkNestedArray(body map[string]any, section, key string) *apperror.AppError {
	raw, ok := body[section]
	if !ok || raw == nil {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return apperror.NewInvalidInput(
			fmt.Sprintf("Field '%s' must be an object", section),
			fmt.Sprintf("got %T", raw),
		)
	}
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	if _, isArray := v.([]any); !isArray {
		return apperror.NewInvalidInput(
			fmt.Sprintf("%s.%s must be an array", section, key),
			fmt.Sprintf("got %T", v),
		)
	}
	return nil
}
