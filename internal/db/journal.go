package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"
	model "github.com/glkeru/checkin/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type JournalDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewJournalDB(logger *zap.Logger) (db *JournalDB, err error) {
	// config
	purl := os.Getenv("CHECKIN_DB")
	if purl == "" {
		return nil, fmt.Errorf("env CHECKIN_DB is not set")
	}
	port := os.Getenv("CHECKIN_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env CHECKIN_DB_PORT is not set")
	}
	user := os.Getenv("CHECKIN_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env CHECKIN_DB_USER is not set")
	}
	password := os.Getenv("CHECKIN_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env CHECKIN_DB_PASSWORD is not set")
	}
	database := os.Getenv("CHECKIN_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env CHECKIN_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &JournalDB{pool, logger}, err
}

// Создание записи журнала при отправке транзакции
func (j *JournalDB) TxCreate(ctx context.Context, tx model.TxRecord) error {
	conn, err := j.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if tx.UUID == uuid.Nil {
		tx.UUID = uuid.New()
	}

	sql, args, err := sq.Insert("checkin_tx").
		Columns("id", "identity", "kind", "day", "hash", "status", "createdat", "updatedat").
		Values(tx.UUID, int64(tx.Identity), string(tx.Kind), tx.Day, tx.Hash.Hex(), model.TxPending, time.Now(), time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		j.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		j.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}
	return nil
}

// Завершение записи журнала по хэшу (confirmed/failed)
func (j *JournalDB) TxFinish(ctx context.Context, hash common.Hash, status string, errmsg string) error {
	conn, err := j.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	builder := sq.Update("checkin_tx").
		Set("status", status).
		Set("updatedat", time.Now()).
		Where(sq.Eq{"hash": hash.Hex()}).
		Where(sq.Eq{"status": model.TxPending})
	if errmsg != "" {
		builder = builder.Set("error", errmsg)
	}
	sql, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		j.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		j.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}
	return nil
}

// Незавершенные транзакции - для джоба восстановления
func (j *JournalDB) GetPending(ctx context.Context) (txs []model.TxRecord, err error) {
	conn, err := j.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "identity", "kind", "day", "hash", "status", "error", "createdat", "updatedat").
		From("checkin_tx").
		Where(sq.Eq{"status": model.TxPending}).
		OrderBy("createdat").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTxRows(rows)
}

// Транзакции пользователя за период
func (j *JournalDB) GetTx(ctx context.Context, id model.Identity, from time.Time, to time.Time) (txs []model.TxRecord, err error) {
	conn, err := j.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "identity", "kind", "day", "hash", "status", "error", "createdat", "updatedat").
		From("checkin_tx").
		Where(sq.Eq{"identity": int64(id)}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transactions %w", model.ErrNotFound)
		}
		return nil, err
	}
	defer rows.Close()
	return scanTxRows(rows)
}

func scanTxRows(rows pgx.Rows) (txs []model.TxRecord, err error) {
	var tx model.TxRecord
	var identity int64
	var kind, hash string
	var errmsg pgtype.Text
	for rows.Next() {
		err = rows.Scan(&tx.UUID, &identity, &kind, &tx.Day, &hash, &tx.Status, &errmsg, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tx.Identity = model.Identity(identity)
		tx.Kind = model.ActionKind(kind)
		tx.Hash = common.HexToHash(hash)
		tx.Error = errmsg.String
		txs = append(txs, tx)
	}
	return txs, nil
}
