// Command seed grava registros de exemplo para desenvolvimento local.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-coach-api/infrastructure/repository"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/pkg/utils"
)

var sampleForms = []domain.EntryForm{
	{VoiceLines: "4", BTS: "1", IoT: "0", HSI: "1", Accessories: "89.99", Protection: "3", PlanName: "Unlimited Plus", MRC: "140.00"},
	{VoiceLines: "2", BTS: "0", IoT: "1", HSI: "0", Accessories: "24.50", Protection: "1", PlanName: "Essentials", MRC: "65.00"},
	{VoiceLines: "1", BTS: "2", IoT: "0", HSI: "1", Accessories: "0", Protection: "0", PlanName: "Business Unlimited", MRC: "95,50"},
	{VoiceLines: "5", BTS: "0", IoT: "2", HSI: "0", Accessories: "159.00", Protection: "4", PlanName: "Family Unlimited", MRC: "180.00"},
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	today := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		entryRepo := repository.NewEntryRepository(tx)

		for i, form := range sampleForms {
			form.Date = domain.FormValue(today.AddDate(0, 0, -i).Format(time.DateOnly))

			entry, err := form.Validate()
			if err != nil {
				return err
			}

			entry.ID, err = utils.GenerateID()
			if err != nil {
				return err
			}

			if err := entryRepo.Insert(ctx, entry); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"entry_id":   entry.ID,
				"entry_date": entry.Date,
				"plan_name":  entry.PlanName,
			}).Info("Registro de exemplo inserido")
		}

		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir registros de exemplo, nada foi gravado")
	}

	logrus.Infof("%d registros de exemplo inseridos", len(sampleForms))
}
