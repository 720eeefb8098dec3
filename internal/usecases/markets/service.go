package markets

//go:generate mockgen -source=service.go -destination=mocks/markets_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/infrastructure/repository"
	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

const (
	minNameLength = 3
	minCityLength = 2
)

type MarketService interface {
	ListMarkets(ctx context.Context) ([]*domain.Market, error)
	RegisterMarket(ctx context.Context, request *domain.CreateMarketRequest) (*domain.Market, error)
}

type Service struct {
	marketRepository repository.MarketRepository
}

func NewService(marketRepository repository.MarketRepository) MarketService {
	return &Service{
		marketRepository: marketRepository,
	}
}

func (s *Service) ListMarkets(ctx context.Context) ([]*domain.Market, error) {
	markets, err := s.marketRepository.FindMarkets(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find_markets", Err: err}
	}
	return markets, nil
}

// RegisterMarket valida nome e cidade e recusa mercados já cadastrados na mesma cidade
func (s *Service) RegisterMarket(ctx context.Context, request *domain.CreateMarketRequest) (*domain.Market, error) {
	name := strings.TrimSpace(request.Name)
	city := strings.TrimSpace(request.City)

	if utf8.RuneCountInString(name) < minNameLength {
		return nil, domain.NewValidationError("name", name, "o nome deve ter pelo menos 3 caracteres")
	}
	if utf8.RuneCountInString(city) < minCityLength {
		return nil, domain.NewValidationError("city", city, "a cidade deve ter pelo menos 2 caracteres")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	market := &domain.Market{
		ID:           id,
		Name:         name,
		City:         city,
		Address:      optional(request.Address),
		Neighborhood: optional(request.Neighborhood),
		State:        optional(request.State),
		ZipCode:      optional(request.ZipCode),
	}

	if err := s.marketRepository.CreateMarket(ctx, market); err != nil {
		if errors.Is(err, domain.ErrDuplicateMarket) {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "create_market", Err: err}
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"market_id": market.ID,
		"name":      market.Name,
		"city":      market.City,
	}).Info("markets: mercado cadastrado")

	return market, nil
}

// optional descarta campos em branco
func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
