package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-coach-api/infrastructure/integrator/llm"
	"github.com/vfg2006/sales-coach-api/infrastructure/integrator/tipservice/tipclient"
	"github.com/vfg2006/sales-coach-api/infrastructure/repository"
	"github.com/vfg2006/sales-coach-api/internal/api"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/scheduler"
	"github.com/vfg2006/sales-coach-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-coach-api/internal/usecases/coaching"
	"github.com/vfg2006/sales-coach-api/internal/usecases/recording"
	"github.com/vfg2006/sales-coach-api/pkg/log"
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

	entryRepo := repository.NewEntryRepository(pgConn)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o serviço de autenticação")
	}

	entryService := recording.NewService(entryRepo, cfg)

	tipClient := tipclient.NewClient(cfg)
	tipFetcher := coaching.NewFetcherService(tipClient)

	completer := llm.NewOpenAIAdapter(cfg)
	advisor := coaching.NewAdvisorService(completer)

	dailyReportService := scheduler.NewDailyReportService(entryService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	}

	server, err := api.New(
		cfg,
		authenticator,
		entryService,
		tipFetcher,
		advisor,
		dailyReportService,
	)
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
