package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/internal/api/handler"
	"github.com/gsproject/grocery-spending-api/internal/api/handler/router"
	"github.com/gsproject/grocery-spending-api/internal/config"
	"github.com/gsproject/grocery-spending-api/internal/usecases/extracting"
	"github.com/gsproject/grocery-spending-api/internal/usecases/markets"
	"github.com/gsproject/grocery-spending-api/internal/usecases/registering"
	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	DB        handler.Pinger
	Markets   markets.MarketService
	Extractor extracting.Extractor
	Registrar registering.Registrar
	Reporter  reporting.Reporter
	CronJobs  handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Markets(services.Markets)...),
		router.WithRoutes(handler.Receipts(services.Extractor, config.Receipt.MaxUploadBytes())...),
		router.WithRoutes(handler.Purchases(services.Registrar)...),
		router.WithRoutes(handler.Reports(services.Reporter, config.Report.Delimiter())...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Run atende requisições até receber SIGINT/SIGTERM ou ctx ser cancelado
func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serverErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
