package repository

//go:generate mockgen -source=market.go -destination=mocks/market_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/gsproject/grocery-spending-api/infrastructure/database/postgres"
	"github.com/gsproject/grocery-spending-api/internal/domain"
)

const (
	marketsTable = "markets m"
)

type MarketRepository interface {
	FindMarkets(ctx context.Context) ([]*domain.Market, error)
	CreateMarket(ctx context.Context, market *domain.Market) error
}

type marketRepository struct {
	conn postgres.Conn
}

func NewMarketRepository(conn postgres.Conn) MarketRepository {
	return &marketRepository{
		conn: conn,
	}
}

// FindMarkets lista os mercados ordenados por nome
func (r *marketRepository) FindMarkets(ctx context.Context) ([]*domain.Market, error) {
	query, args, err := squirrel.
		Select("m.id, m.name, m.city, m.address, m.neighborhood, m.state, m.zip_code, m.created_at").
		From(marketsTable).
		OrderBy("m.name ASC", "m.city ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao buscar mercados")
	}
	defer rows.Close()

	markets := make([]*domain.Market, 0)
	for rows.Next() {
		market := &domain.Market{}
		err := rows.Scan(
			&market.ID,
			&market.Name,
			&market.City,
			&market.Address,
			&market.Neighborhood,
			&market.State,
			&market.ZipCode,
			&market.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear mercado")
		}
		markets = append(markets, market)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return markets, nil
}

// CreateMarket verifica duplicidade (nome + cidade, sem diferenciar maiúsculas)
// e insere o mercado na mesma transação.
func (r *marketRepository) CreateMarket(ctx context.Context, market *domain.Market) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		existsQuery, args, err := squirrel.
			Select("1").
			From(marketsTable).
			Where("LOWER(m.name) = LOWER(?) AND LOWER(m.city) = LOWER(?)", market.Name, market.City).
			Limit(1).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var found int
		err = tx.QueryRowContext(ctx, existsQuery, args...).Scan(&found)
		switch {
		case err == nil:
			return domain.ErrDuplicateMarket
		case !errors.Is(err, sql.ErrNoRows):
			return wrapDBError(err, "erro ao verificar mercado existente")
		}

		insertQuery, args, err := squirrel.
			Insert("markets").
			Columns("id", "name", "city", "address", "neighborhood", "state", "zip_code").
			Values(market.ID, market.Name, market.City, market.Address, market.Neighborhood, market.State, market.ZipCode).
			Suffix("RETURNING created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, insertQuery, args...).Scan(&market.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateMarket
			}
			return wrapDBError(err, "erro ao inserir mercado")
		}

		return nil
	})
}
