package recording

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-coach-api/infrastructure/repository"
	"github.com/vfg2006/sales-coach-api/internal/config"
	"github.com/vfg2006/sales-coach-api/internal/domain"
	"github.com/vfg2006/sales-coach-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-coach-api/pkg/apiErrors"
	"github.com/vfg2006/sales-coach-api/pkg/utils"
)

const MaxListLimit = 500

type EntryService interface {
	Create(ctx context.Context, form domain.EntryForm) (*domain.Entry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error)
	ClearAll(ctx context.Context) (int64, error)
	Dashboard(ctx context.Context, limit int) (*Dashboard, error)
}

// Dashboard é a visão completa do painel: registros mais recentes e o resumo deles
type Dashboard struct {
	Entries []*domain.Entry     `json:"entries"`
	Summary domain.EntrySummary `json:"summary"`
}

type Service struct {
	entryRepo    repository.EntryRepository
	defaultLimit int
	generateID   func() (string, error)
}

func NewService(entryRepo repository.EntryRepository, cfg *config.Config) EntryService {
	return &Service{
		entryRepo:    entryRepo,
		defaultLimit: cfg.Entries.ListLimit,
		generateID:   utils.GenerateID,
	}
}

// Create valida o formulário e grava o registro. Em caso de erro nada é gravado.
func (s *Service) Create(ctx context.Context, form domain.EntryForm) (*domain.Entry, error) {
	entry, err := form.Validate()
	if err != nil {
		var fieldErr *domain.FieldError
		if errors.As(err, &fieldErr) {
			return nil, NewFieldError(ErrInvalidEntry, apiErrors.ErrInvalidFormat, fieldErr.Field, fieldErr.Error())
		}
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrInvalidFormat, err.Error())
	}

	entry.ID, err = s.generateID()
	if err != nil {
		return nil, NewEntryError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	if err := s.entryRepo.Insert(ctx, entry); err != nil {
		logrus.WithError(err).WithField("entry_date", entry.Date).Error("Erro ao gravar registro de vendas")
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"entry_id":   entry.ID,
		"entry_date": entry.Date,
	}).Info("Registro de vendas criado")

	return entry, nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error) {
	entries, err := s.entryRepo.ListRecent(ctx, s.normalizeLimit(limit))
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar registros de vendas")
		return nil, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return entries, nil
}

func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.entryRepo.DeleteAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao apagar registros de vendas")
		return 0, NewEntryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithField("deleted", deleted).Info("Todos os registros de vendas foram apagados")
	return deleted, nil
}

func (s *Service) Dashboard(ctx context.Context, limit int) (*Dashboard, error) {
	entries, err := s.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Entries: entries,
		Summary: aggregating.Summarize(entries),
	}, nil
}

func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return limit
}
