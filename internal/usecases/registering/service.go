package registering

//go:generate mockgen -source=service.go -destination=mocks/registering_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/infrastructure/repository"
	"github.com/gsproject/grocery-spending-api/internal/domain"
)

type Registrar interface {
	Register(ctx context.Context, header HeaderInput, items []ItemInput) (*RegistrationResult, error)
}

// ItemOutcome é o resultado da gravação de um item. Index é a posição do item
// na lista enviada, a partir de 1, a mesma usada em RejectedItem.
type ItemOutcome struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Registered  bool   `json:"registered"`
	Error       string `json:"error,omitempty"`
}

type RegistrationResult struct {
	PurchaseID string                 `json:"purchase_id"`
	Header     *domain.PurchaseHeader `json:"header"`
	Total      int                    `json:"total"`
	Registered int                    `json:"registered"`
	Outcomes   []ItemOutcome          `json:"outcomes"`
	Rejected   []RejectedItem         `json:"rejected"`
	Message    string                 `json:"message"`
}

// Complete indica que todos os itens enviados foram aceitos e gravados
func (r *RegistrationResult) Complete() bool {
	return r.Registered == r.Total && len(r.Rejected) == 0
}

type Service struct {
	marketRepo   repository.MarketRepository
	purchaseRepo repository.PurchaseRepository
	builder      *Builder
}

func NewService(marketRepo repository.MarketRepository, purchaseRepo repository.PurchaseRepository) *Service {
	return &Service{
		marketRepo:   marketRepo,
		purchaseRepo: purchaseRepo,
		builder:      NewBuilder(),
	}
}

func (b *BuildResult) position(i int) int {
	if i < len(b.Positions) {
		return b.Positions[i]
	}
	return i + 1
}

func (s *Service) Register(ctx context.Context, header HeaderInput, items []ItemInput) (*RegistrationResult, error) {
	markets, err := s.marketRepo.FindMarkets(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find_markets", Err: err}
	}

	built, err := s.builder.Build(markets, header, items)
	if err != nil {
		return nil, err
	}

	return s.Persist(ctx, built)
}

// Persist grava o cabeçalho e depois cada item, um a um. Só a falha do
// cabeçalho é fatal; falhas de itens não desfazem o que já foi gravado.
func (s *Service) Persist(ctx context.Context, built *BuildResult) (*RegistrationResult, error) {
	header := built.Purchase.Header
	logger := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"market_id":     header.MarketID,
		"purchase_date": header.PurchaseDate.Format("2006-01-02"),
		"items":         len(built.Purchase.Items),
	})

	purchaseID, err := s.purchaseRepo.InsertPurchaseHeader(ctx, header)
	if err != nil {
		logger.WithError(err).Error("registering: erro ao gravar cabeçalho da compra")
		return nil, &domain.PersistenceError{Op: "insert_purchase_header", Err: err}
	}
	header.ID = purchaseID

	result := &RegistrationResult{
		PurchaseID: purchaseID,
		Header:     header,
		Total:      len(built.Purchase.Items),
		Outcomes:   make([]ItemOutcome, 0, len(built.Purchase.Items)),
		Rejected:   built.Rejected,
	}

	for i, item := range built.Purchase.Items {
		outcome := ItemOutcome{
			Index:       built.position(i),
			Description: item.Description,
		}

		if err := s.purchaseRepo.InsertLineItem(ctx, purchaseID, item); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"purchase_id": purchaseID,
				"index":       i + 1,
				"description": item.Description,
			}).Warn("registering: erro ao gravar item, seguindo com os demais")
			outcome.Error = (&domain.PersistenceError{Op: "insert_line_item", Err: err}).Error()
		} else {
			outcome.Registered = true
			result.Registered++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Message = fmt.Sprintf("%d de %d itens foram registrados", result.Registered, result.Total)

	logger.WithFields(logrus.Fields{
		"purchase_id": purchaseID,
		"registered":  result.Registered,
		"total":       result.Total,
	}).Info("registering: compra registrada")

	return result, nil
}
