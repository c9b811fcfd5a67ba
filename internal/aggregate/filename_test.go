package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentFileName(t *testing.T) {
	tests := []struct {
		title, ext, want string
	}{
		{"My Project!", "docx", "Note_Cadrage_My_Project!.docx"},
		{"Refonte   du\tportail", "pdf", "Note_Cadrage_Refonte_du_portail.pdf"},
		{"Été 2024", "docx", "Note_Cadrage_Été_2024.docx"},
		{"", "pdf", "Note_Cadrage_.pdf"},
		{"Refonte SI/RH", "docx", "Note_Cadrage_Refonte_SI_RH.docx"},
		{`Dossier A\B (v2)`, "pdf", "Note_Cadrage_Dossier_A_B_(v2).pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DocumentFileName(tt.title, tt.ext), tt.title)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Refonte du portail", "refonte-du-portail"},
		{"Pôle Numérique & Études", "pole-numerique-etudes"},
		{"  --PRJ_001--  ", "prj-001"},
		{"!!!", "projet"},
		{"", "projet"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), tt.in)
	}
}

func TestDeckFileName(t *testing.T) {
	now := time.Date(2024, time.January, 15, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "refonte-du-portail.pptx", DeckFileName([]string{"Refonte du portail"}, now))
	assert.Equal(t, "projets-export-2024-01-15.pptx", DeckFileName([]string{"A", "B"}, now))
}
