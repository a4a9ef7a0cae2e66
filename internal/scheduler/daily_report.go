package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-coach-api/internal/usecases/recording"
)

// DailyReportConfig representa a configuração do relatório diário
type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportService resume periodicamente os registros recentes e registra os totais no log
type DailyReportService struct {
	scheduler    *gocron.Scheduler
	config       DailyReportConfig
	entryService recording.EntryService

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastSummary     *domain.EntrySummary
	runTimeout      time.Duration
}

func NewDailyReportService(entryService recording.EntryService, appConfig *config.Config) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do relatório diário carregada")

	return &DailyReportService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       reportConfig,
		entryService: entryService,
		runTimeout:   time.Minute,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// tryStart marca a execução como em andamento. Devolve false se já havia uma.
func (s *DailyReportService) tryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	return true
}

// run calcula o resumo dos registros recentes. Execuções concorrentes são ignoradas.
func (s *DailyReportService) run(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

// execute assume que tryStart já reservou a execução
func (s *DailyReportService) execute(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	entries, err := s.entryService.ListRecent(ctx, recording.MaxListLimit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao buscar registros para o relatório diário")
		return
	}

	summary := aggregating.Summarize(entries)
	s.lastSummary = &summary
	s.lastError = ""

	logrus.WithFields(logrus.Fields{
		"entries":            summary.EntryCount,
		"total_lines":        summary.TotalLines,
		"total_accessories":  summary.TotalAccessories,
		"protection_percent": summary.ProtectionPercent,
		"average_mrc":        summary.AverageMRC,
	}).Info("Relatório diário de vendas")
}

// TriggerManualRun executa o relatório fora do agendamento
func (s *DailyReportService) TriggerManualRun() bool {
	if !s.tryStart() {
		logrus.Info("Relatório diário já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando relatório diário manual")
	go s.execute(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_summary":      s.lastSummary,
	}
}
