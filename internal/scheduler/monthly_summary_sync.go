package scheduler

//go:generate mockgen -source=monthly_summary_sync.go -destination=mocks/scheduler_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/gsproject/grocery-spending-api/internal/config"
	"github.com/gsproject/grocery-spending-api/internal/domain"
	"github.com/gsproject/grocery-spending-api/internal/usecases/reporting"
	"github.com/gsproject/grocery-spending-api/pkg/utils"
)

const snapshotTimeout = 5 * time.Minute

// SyncJob é o contrato usado pela API para disparar e acompanhar jobs agendados
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

type MonthlySummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthlySummarySyncService grava, uma vez por mês, o resumo do mês anterior
type MonthlySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySummarySyncConfig
	reporter            reporting.Reporter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPeriod          string
	lastError           string
}

func NewMonthlySummarySyncService(reporter reporting.Reporter, appConfig *config.Config) *MonthlySummarySyncService {
	syncConfig := MonthlySummarySyncConfig{
		CronSchedule: appConfig.MonthlySummarySync.CronSchedule,
		SyncEnabled:  appConfig.MonthlySummarySync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do resumo mensal carregada")

	return &MonthlySummarySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start agenda o job quando habilitado e o encerra junto com ctx
func (s *MonthlySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Resumo mensal desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncMonthlySummary)
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo mensal: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("Agendador do resumo mensal iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo mensal")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MonthlySummarySyncService) syncMonthlySummary() {
	if !s.acquire() {
		logrus.Info("Resumo mensal já em andamento, ignorando")
		return
	}
	defer s.release()

	month := utils.FirstDayOfPreviousMonth(s.now())
	period := domain.PeriodLabel(month)
	logger := logrus.WithField("period", period)
	logger.Info("Gerando resumo mensal")

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	summary, err := s.reporter.SnapshotMonth(ctx, month)

	s.syncMutex.Lock()
	s.lastPeriod = period
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro ao gerar resumo mensal")
		return
	}

	logger.WithFields(logrus.Fields{
		"net_total": summary.NetTotal.StringFixed(2),
		"purchases": summary.Purchases,
		"items":     summary.Items,
	}).Info("Resumo mensal gravado")
}

func (s *MonthlySummarySyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *MonthlySummarySyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara o job fora do agendamento. Devolve false se já houver um em execução.
func (s *MonthlySummarySyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Resumo mensal já em andamento, ignorando solicitação manual")
		return false
	}

	go s.syncMonthlySummary()
	return true
}

func (s *MonthlySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_period":            s.lastPeriod,
		"last_error":             s.lastError,
	}
}
