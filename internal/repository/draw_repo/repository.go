package draw_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lotostats_backend/internal/model"
	"lotostats_backend/internal/repository"
)

const (
	table       = "draws"
	colGame     = "game"
	colContest  = "contest"
	colDrawDate = "draw_date"
	colNumbers  = "numbers"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDrawRepository(dbc *pgxpool.Pool) repository.DrawRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListByGame returns the full stored history ordered by contest ascending.
func (r *repo) ListByGame(ctx context.Context, gameSlug string) ([]model.Draw, error) {
	query := sq.Select(colContest, colDrawDate, colNumbers).
		From(table).
		Where(sq.Eq{colGame: gameSlug}).
		OrderBy(colContest + " ASC").
		PlaceholderFormat(sq.Dollar)

	return r.queryDraws(ctx, query)
}

// ListRecent returns the latest draws, newest first.
func (r *repo) ListRecent(ctx context.Context, gameSlug string, limit int) ([]model.Draw, error) {
	query := sq.Select(colContest, colDrawDate, colNumbers).
		From(table).
		Where(sq.Eq{colGame: gameSlug}).
		OrderBy(colContest + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	return r.queryDraws(ctx, query)
}

// LastContest returns the highest stored contest number, 0 when empty.
func (r *repo) LastContest(ctx context.Context, gameSlug string) (int, error) {
	query := sq.Select("COALESCE(MAX(" + colContest + "), 0)").
		From(table).
		Where(sq.Eq{colGame: gameSlug}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var contest int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&contest)
	if err != nil {
		return 0, err
	}

	return contest, nil
}

// Insert stores a draw. Returns false when the contest is already present.
func (r *repo) Insert(ctx context.Context, gameSlug string, draw model.Draw) (bool, error) {
	if len(draw.Numbers) == 0 {
		return false, fmt.Errorf("draw %d has no numbers", draw.Contest)
	}

	query := sq.Insert(table).
		Columns(colGame, colContest, colDrawDate, colNumbers).
		Values(gameSlug, draw.Contest, draw.Date, draw.Numbers).
		Suffix("ON CONFLICT (" + colGame + ", " + colContest + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (r *repo) Count(ctx context.Context, gameSlug string) (int, error) {
	query := sq.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{colGame: gameSlug}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repo) queryDraws(ctx context.Context, query sq.SelectBuilder) ([]model.Draw, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.Draw{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	var draws []model.Draw
	for rows.Next() {
		var d model.Draw
		if err := rows.Scan(&d.Contest, &d.Date, &d.Numbers); err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return draws, nil
}

// conn resolves the active transaction from the context when a trm transaction
// is open, falling back to the pool.
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}
