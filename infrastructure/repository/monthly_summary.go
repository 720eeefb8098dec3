package repository

//go:generate mockgen -source=monthly_summary.go -destination=mocks/monthly_summary_mock.go -package=mocks

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
	monthlySummariesTable = "monthly_summaries ms"
)

type MonthlySummaryRepository interface {
	SaveOrUpdate(ctx context.Context, summary *domain.MonthlySummary) error
	GetByPeriod(ctx context.Context, period string) (*domain.MonthlySummary, error)
}

type monthlySummaryRepository struct {
	conn postgres.Conn
}

func NewMonthlySummaryRepository(conn postgres.Conn) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.MonthlySummary) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_summaries").
		Columns("period", "gross_total", "discount", "net_total", "purchases", "items").
		Values(
			summary.Period,
			summary.GrossTotal,
			summary.Discount,
			summary.NetTotal,
			summary.Purchases,
			summary.Items,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				gross_total = EXCLUDED.gross_total,
				discount = EXCLUDED.discount,
				net_total = EXCLUDED.net_total,
				purchases = EXCLUDED.purchases,
				items = EXCLUDED.items,
				updated_at = NOW()
			RETURNING updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&summary.UpdatedAt); err != nil {
		return wrapDBError(err, "erro ao salvar resumo mensal")
	}

	return nil
}

// GetByPeriod devolve nil, nil quando o período ainda não foi consolidado
func (r *monthlySummaryRepository) GetByPeriod(ctx context.Context, period string) (*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("ms.period, ms.gross_total, ms.discount, ms.net_total, ms.purchases, ms.items, ms.updated_at").
		From(monthlySummariesTable).
		Where(squirrel.Eq{"ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.MonthlySummary{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.Period,
		&summary.GrossTotal,
		&summary.Discount,
		&summary.NetTotal,
		&summary.Purchases,
		&summary.Items,
		&summary.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err, "erro ao buscar resumo mensal")
	}

	return summary, nil
}
