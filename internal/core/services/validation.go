package services

import (
	"strings"
	"unicode/utf8"

	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/core/domain"
)

// Length limits for product fields (characters, not bytes)
const (
	maxProductNameLen = 100
	maxProductCodeLen = 15
	maxDescriptionLen = 500
)

// The validators below are pure and synchronous. They must always be run
// against a freshly fetched full snapshot (active + inactive), never against
// the filtered view, otherwise duplicates hidden by the current filter would
// slip through.

// validateDocumentType checks a document type submission. excludeID skips the
// record being edited so saving a record unchanged never conflicts with itself.
func validateDocumentType(name string, snapshot []*models.DocumentType, excludeID uint) error {
	if strings.TrimSpace(name) == "" {
		return domain.RequiredField("Name is required")
	}
	for _, r := range snapshot {
		if r.ID != excludeID && strings.EqualFold(r.Name, name) {
			return domain.DuplicateName("Name must be unique")
		}
	}
	return nil
}

// validateProduct checks a product submission against the snapshot.
func validateProduct(input *ProductInput, snapshot []*models.Product, excludeID uint) error {
	if strings.TrimSpace(input.ProductName) == "" {
		return domain.RequiredField("Product name is required")
	}
	if utf8.RuneCountInString(input.ProductName) > maxProductNameLen {
		return domain.LengthExceeded("Product name exceeds 100 characters")
	}
	if input.ProductType == "" {
		return domain.RequiredField("Product type is required")
	}
	if !models.IsValidProductType(input.ProductType) {
		return &domain.ValidationError{Kind: domain.ErrInvalidInput, Message: "Product type is invalid"}
	}
	if utf8.RuneCountInString(input.ProductCode) > maxProductCodeLen {
		return domain.LengthExceeded("Product code exceeds 15 characters")
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLen {
		return domain.LengthExceeded("Description exceeds 500 characters")
	}
	for _, r := range snapshot {
		if r.ID != excludeID && strings.EqualFold(r.ProductName, input.ProductName) {
			return domain.DuplicateName("Product name already exists (case-insensitive match)")
		}
	}
	return nil
}

// containsFold reports whether s contains substr under case-insensitive
// comparison. Blank substr matches everything.
func containsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
