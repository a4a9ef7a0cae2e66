package repository

//go:generate mockgen -source=entry.go -destination=mocks/mock_entry.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-coach-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-coach-api/internal/domain"
)

const (
	entriesTable   = "sales_entries"
	entriesColumns = "id, entry_date, voice_lines, bts, iot, hsi, accessories, protection, plan_name, mrc, created_at"
)

type EntryRepository interface {
	Insert(ctx context.Context, entry *domain.Entry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type entryRepository struct {
	conn postgres.Queryer
}

func NewEntryRepository(conn postgres.Queryer) EntryRepository {
	return &entryRepository{
		conn: conn,
	}
}

// Insert grava o registro e preenche CreatedAt com o valor do banco
func (r *entryRepository) Insert(ctx context.Context, entry *domain.Entry) error {
	query, args, err := buildInsertQuery(entry)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListRecent devolve os registros do mais recente para o mais antigo
func (r *entryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Entry, error) {
	query, args, err := buildListRecentQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// DeleteAll remove todas as linhas com id não nulo
func (r *entryRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := buildDeleteAllQuery()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func buildInsertQuery(entry *domain.Entry) (string, []any, error) {
	return squirrel.
		Insert(entriesTable).
		Columns("id", "entry_date", "voice_lines", "bts", "iot", "hsi", "accessories", "protection", "plan_name", "mrc").
		Values(
			entry.ID,
			entry.Date,
			entry.VoiceLines,
			entry.BTS,
			entry.IoT,
			entry.HSI,
			entry.Accessories.Decimal,
			entry.Protection,
			entry.PlanName,
			entry.MRC.Decimal,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListRecentQuery(limit int) (string, []any, error) {
	builder := squirrel.
		Select(entriesColumns).
		From(entriesTable).
		OrderBy("created_at DESC", "entry_date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildDeleteAllQuery() (string, []any, error) {
	return squirrel.
		Delete(entriesTable).
		Where(squirrel.NotEq{"id": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanEntry(rows *sql.Rows) (*domain.Entry, error) {
	entry := &domain.Entry{}
	var entryDate time.Time

	err := rows.Scan(
		&entry.ID,
		&entryDate,
		&entry.VoiceLines,
		&entry.BTS,
		&entry.IoT,
		&entry.HSI,
		&entry.Accessories,
		&entry.Protection,
		&entry.PlanName,
		&entry.MRC,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Date = entryDate.Format(time.DateOnly)

	return entry, nil
}
