package extracting

//go:generate mockgen -source=service.go -destination=mocks/extracting_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// TextExtractor obtém o texto plano (páginas separadas por quebra de linha)
// de um documento. Falhas de leitura devem ser devolvidas como
// *domain.DocumentReadError.
type TextExtractor interface {
	ExtractText(document []byte) (string, error)
}

// ExtractionResult é a prévia apresentada antes do registro da compra.
// SuggestedTotal é apenas o valor inicial exibido ao usuário.
type ExtractionResult struct {
	Items               []ParsedItem    `json:"items"`
	SuggestedTotal      decimal.Decimal `json:"suggested_total"`
	ManualEntryRequired bool            `json:"manual_entry_required"`
}

// Empty indica que nenhum item foi reconhecido e o usuário deve digitar os itens
func (r *ExtractionResult) Empty() bool {
	return len(r.Items) == 0
}

type Extractor interface {
	Extract(ctx context.Context, document []byte) (*ExtractionResult, error)
}

type Service struct {
	textExtractor TextExtractor
	parser        *Parser
}

func NewService(textExtractor TextExtractor, parser *Parser) *Service {
	return &Service{
		textExtractor: textExtractor,
		parser:        parser,
	}
}

func (s *Service) Extract(ctx context.Context, document []byte) (*ExtractionResult, error) {
	if len(document) == 0 {
		return nil, &domain.DocumentReadError{Err: errors.New("documento vazio")}
	}

	text, err := s.textExtractor.ExtractText(document)
	if err != nil {
		var readErr *domain.DocumentReadError
		if errors.As(err, &readErr) {
			return nil, err
		}
		return nil, &domain.DocumentReadError{Err: err}
	}

	result := &ExtractionResult{
		Items:          s.parser.Parse(text),
		SuggestedTotal: decimal.Zero,
	}
	for _, item := range result.Items {
		result.SuggestedTotal = result.SuggestedTotal.Add(item.TotalPrice)
	}
	result.ManualEntryRequired = result.Empty()

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"items":           len(result.Items),
		"suggested_total": result.SuggestedTotal.StringFixed(2),
	}).Info("extracting: texto do cupom processado")

	return result, nil
}
