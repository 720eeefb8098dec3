package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"rsc.io/pdf"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

func glyphs(s string, x, y, fontSize float64) []pdf.Text {
	texts := make([]pdf.Text, 0, len(s))
	width := fontSize * 0.5
	for _, r := range s {
		texts = append(texts, pdf.Text{FontSize: fontSize, X: x, Y: y, W: width, S: string(r)})
		x += width
	}
	return texts
}

func TestPageLines(t *testing.T) {
	tests := []struct {
		name     string
		texts    []pdf.Text
		expected []string
	}{
		{
			name:     "Página vazia",
			texts:    nil,
			expected: nil,
		},
		{
			name: "Linhas ordenadas de cima para baixo",
			texts: append(
				glyphs("Qtde.:2", 10, 700, 10),
				glyphs("Arroz", 10, 712, 10)...,
			),
			expected: []string{"Arroz", "Qtde.:2"},
		},
		{
			name: "Trechos fora de ordem na mesma linha com espaço",
			texts: []pdf.Text{
				{FontSize: 10, X: 60, Y: 500.5, W: 20, S: "21,00"},
				{FontSize: 10, X: 10, Y: 500, W: 25, S: "10,50"},
			},
			expected: []string{"10,50 21,00"},
		},
		{
			name: "Trechos colados sem espaço",
			texts: []pdf.Text{
				{FontSize: 10, X: 10, Y: 300, W: 30, S: "Vl."},
				{FontSize: 10, X: 40, Y: 300, W: 30, S: "Total"},
			},
			expected: []string{"Vl.Total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pageLines(tt.texts))
		})
	}
}

func TestExtractor_ExtractTextInvalidDocument(t *testing.T) {
	extractor := NewExtractor()

	text, err := extractor.ExtractText([]byte("isto não é um pdf"))

	assert.Empty(t, text)
	var readErr *domain.DocumentReadError
	assert.ErrorAs(t, err, &readErr)
}
