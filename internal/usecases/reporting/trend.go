package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

// ProjectTrend ajusta uma regressão linear simples sobre os índices 1..n dos
// gastos mensais e projeta os próximos horizon meses. Com menos de dois
// pontos não há tendência e o retorno é nil.
func ProjectTrend(points []domain.MonthlySpend, horizon int) *domain.TrendProjection {
	n := len(points)
	if n < 2 || horizon <= 0 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, point := range points {
		x := float64(i + 1)
		y := point.Total.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	count := float64(n)
	denominator := count*sumXX - sumX*sumX
	slope := (count*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / count

	last := points[n-1].Month
	projection := &domain.TrendProjection{
		Slope:     slope,
		Intercept: intercept,
		Points:    make([]domain.TrendPoint, 0, horizon),
	}

	for step := 1; step <= horizon; step++ {
		index := n + step
		month := last.AddDate(0, step, 0)
		projection.Points = append(projection.Points, domain.TrendPoint{
			Index: index,
			Month: month,
			Label: domain.PeriodLabel(month),
			Value: decimal.NewFromFloat(intercept + slope*float64(index)).Round(2),
		})
	}

	return projection
}
