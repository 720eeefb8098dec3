package repository

//go:generate mockgen -source=purchase.go -destination=mocks/purchase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/gsproject/grocery-spending-api/infrastructure/database/postgres"
	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

const (
	purchaseHeadersTable = "purchase_headers ph"
)

type PurchaseRepository interface {
	InsertPurchaseHeader(ctx context.Context, header *domain.PurchaseHeader) (string, error)
	InsertLineItem(ctx context.Context, purchaseID string, item *domain.LineItem) error
	FindHeadersInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PurchaseHeader, error)
	FindItemsWithMarketInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PurchaseItemRow, error)
}

type purchaseRepository struct {
	conn postgres.Conn
}

func NewPurchaseRepository(conn postgres.Conn) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

// InsertPurchaseHeader grava o cabeçalho e devolve o identificador da compra
func (r *purchaseRepository) InsertPurchaseHeader(ctx context.Context, header *domain.PurchaseHeader) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador da compra")
	}

	query, args, err := squirrel.
		Insert("purchase_headers").
		Columns("id", "market_id", "purchase_date", "gross_total", "discount", "net_total").
		Values(id, header.MarketID, header.PurchaseDate, header.GrossTotal, header.Discount, header.NetTotal).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var purchaseID string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&purchaseID, &header.CreatedAt); err != nil {
		return "", wrapDBError(err, "erro ao inserir cabeçalho da compra")
	}

	return purchaseID, nil
}

func (r *purchaseRepository) InsertLineItem(ctx context.Context, purchaseID string, item *domain.LineItem) error {
	query, args, err := squirrel.
		Insert("purchase_items").
		Columns("purchase_id", "code", "description", "quantity", "unit", "unit_price", "total_price").
		Values(purchaseID, item.Code, item.Description, item.Quantity, item.Unit, item.UnitPrice, item.TotalPrice).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err, "erro ao inserir item da compra")
	}

	return nil
}

// FindHeadersInRange busca os cabeçalhos com data de compra no intervalo inclusivo
func (r *purchaseRepository) FindHeadersInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PurchaseHeader, error) {
	query, args, err := squirrel.
		Select("ph.id, ph.market_id, ph.purchase_date, ph.gross_total, ph.discount, ph.net_total, ph.created_at").
		From(purchaseHeadersTable).
		Where(squirrel.GtOrEq{"ph.purchase_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ph.purchase_date": endDate.Format(time.DateOnly)}).
		OrderBy("ph.purchase_date ASC", "ph.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao buscar cabeçalhos de compra")
	}
	defer rows.Close()

	headers := make([]*domain.PurchaseHeader, 0)
	for rows.Next() {
		header := &domain.PurchaseHeader{}
		err := rows.Scan(
			&header.ID,
			&header.MarketID,
			&header.PurchaseDate,
			&header.GrossTotal,
			&header.Discount,
			&header.NetTotal,
			&header.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear cabeçalho de compra")
		}
		header.PurchaseDate = domain.TruncateDate(header.PurchaseDate)
		headers = append(headers, header)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return headers, nil
}

// FindItemsWithMarketInRange devolve uma linha por item, já unida ao cabeçalho e
// ao mercado, usando a função get_purchase_items_in_range do banco.
func (r *purchaseRepository) FindItemsWithMarketInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PurchaseItemRow, error) {
	query, args, err := squirrel.
		Select(
			"r.purchase_id", "r.market_id", "r.purchase_date", "r.gross_total", "r.discount", "r.net_total",
			"r.market_name", "r.market_city",
			"r.code", "r.description", "r.quantity", "r.unit", "r.unit_price", "r.total_price",
		).
		Prefix("WITH r AS (SELECT * FROM get_purchase_items_in_range(?, ?))",
			startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)).
		From("r").
		OrderBy("r.purchase_date ASC", "r.purchase_id ASC", "r.item_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao buscar itens de compra")
	}
	defer rows.Close()

	items := make([]*domain.PurchaseItemRow, 0)
	for rows.Next() {
		row := &domain.PurchaseItemRow{}
		err := rows.Scan(
			&row.Header.ID,
			&row.Header.MarketID,
			&row.Header.PurchaseDate,
			&row.Header.GrossTotal,
			&row.Header.Discount,
			&row.Header.NetTotal,
			&row.Market.Name,
			&row.Market.City,
			&row.Item.Code,
			&row.Item.Description,
			&row.Item.Quantity,
			&row.Item.Unit,
			&row.Item.UnitPrice,
			&row.Item.TotalPrice,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear item de compra")
		}
		row.Header.PurchaseDate = domain.TruncateDate(row.Header.PurchaseDate)
		row.Market.ID = row.Header.MarketID
		items = append(items, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
