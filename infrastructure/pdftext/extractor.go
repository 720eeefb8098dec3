package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"rsc.io/pdf"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

const (
	// lineTolerance é a diferença máxima de Y para dois trechos na mesma linha
	lineTolerance = 2.0
	// spaceFactor multiplica o tamanho da fonte para decidir quando há espaço entre trechos
	spaceFactor = 0.15
)

// Extractor lê o texto de cupons em PDF usando rsc.io/pdf
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText devolve o texto de todas as páginas, separadas por quebra de linha.
// O rsc.io/pdf entra em pânico em arquivos corrompidos, por isso o recover.
func (e *Extractor) ExtractText(document []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Warn("pdftext: pânico ao ler o documento")
			text = ""
			err = &domain.DocumentReadError{Err: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", &domain.DocumentReadError{Err: err}
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", &domain.DocumentReadError{Err: errors.New("documento sem páginas")}
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, strings.Join(pageLines(page.Content().Text), "\n"))
	}

	logrus.WithFields(logrus.Fields{
		"pages": numPages,
		"bytes": len(document),
	}).Debug("pdftext: documento lido")

	return strings.Join(pages, "\n"), nil
}

// pageLines agrupa os trechos de texto em linhas (de cima para baixo) e
// ordena cada linha da esquerda para a direita.
func pageLines(texts []pdf.Text) []string {
	if len(texts) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]pdf.Text
	var current []pdf.Text
	lineY := sorted[0].Y
	for _, t := range sorted {
		if len(current) > 0 && math.Abs(t.Y-lineY) > lineTolerance {
			lines = append(lines, current)
			current = nil
		}
		if len(current) == 0 {
			lineY = t.Y
		}
		current = append(current, t)
	}
	lines = append(lines, current)

	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, joinLine(line))
	}
	return result
}

func joinLine(line []pdf.Text) string {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})

	var sb strings.Builder
	for i, t := range line {
		if i > 0 {
			prev := line[i-1]
			gap := t.X - (prev.X + prev.W)
			threshold := prev.FontSize * spaceFactor
			if threshold <= 0 {
				threshold = 1
			}
			if gap > threshold && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
	}
	return strings.TrimRight(sb.String(), " ")
}
