package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/infrastructure/database/postgres"
	"github.com/gsproject/grocery-spending-api/infrastructure/migration"
	"github.com/gsproject/grocery-spending-api/infrastructure/pdftext"
	"github.com/gsproject/grocery-spending-api/infrastructure/repository"
	"github.com/gsproject/grocery-spending-api/internal/api"
	"github.com/gsproject/grocery-spending-api/internal/api/handler"
	"github.com/gsproject/grocery-spending-api/internal/config"
	"github.com/gsproject/grocery-spending-api/internal/scheduler"
	"github.com/gsproject/grocery-spending-api/internal/usecases/extracting"
	"github.com/gsproject/grocery-spending-api/internal/usecases/markets"
	"github.com/gsproject/grocery-spending-api/internal/usecases/registering"
	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	marketRepo := repository.NewMarketRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	summaryRepo := repository.NewMonthlySummaryRepository(pgConn)

	numberFormat, err := extracting.NewNumberFormat(cfg.Receipt.DecimalSeparator, cfg.Receipt.ThousandsSeparator)
	if err != nil {
		logrus.WithError(err).Fatal("Formato numérico do cupom inválido")
	}

	extractService := extracting.NewService(pdftext.NewExtractor(), extracting.NewParser(numberFormat))
	registerService := registering.NewService(marketRepo, purchaseRepo)
	marketService := markets.NewService(marketRepo)
	reportService := reporting.NewService(marketRepo, purchaseRepo, summaryRepo, reporting.Options{
		TopN:             cfg.Report.TopN,
		ProjectionMonths: cfg.Report.ProjectionMonths,
	})

	monthlySummarySyncService := scheduler.NewMonthlySummarySyncService(reportService, cfg)
	if err := monthlySummarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo mensal")
	}

	server, err := api.New(cfg, api.Services{
		DB:        pgConn,
		Markets:   marketService,
		Extractor: extractService,
		Registrar: registerService,
		Reporter:  reportService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeMonthlySummary: monthlySummarySyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	return conn
}
