package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/carebridge/chat-gateway/internal/config"
	"github.com/carebridge/chat-gateway/internal/model"
)

type txKey struct{}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx runs cb with a transaction carried on the context; Chk picks it up
// in every query helper.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	txx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	ctx = context.WithValue(ctx, txKey{}, txx)

	if err := cb(ctx); err != nil {
		_ = txx.Rollback()
		return err
	}

	if err := txx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) Chk(ctx context.Context) sqlx.ExtContext {
	if txx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return txx
	}
	return r.connection
}

// SaveMessage archives a normalized message. Re-saving the same id is a
// no-op so the push and poll paths can both persist safely.
func (r *Repository) SaveMessage(ctx context.Context, peerID string, msg *model.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	var mid *string
	if msg.MID != "" {
		mid = &msg.MID
	}

	query, args, err := sq.Insert("messages").
		Columns("id", "mid", "peer_id", "sender_id", "type", "content", "payload", "sent_at", "is_edited").
		Values(msg.ID, mid, peerID, msg.From, string(msg.Type), msg.Content, payload, msg.SentAt, msg.IsEdited).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// ApplyEdit updates an archived message in place by transport id or mid.
func (r *Repository) ApplyEdit(ctx context.Context, ref, content string, at time.Time) error {
	query, args, err := sq.Update("messages").
		Set("content", content).
		Set("is_edited", true).
		Set("edited_at", at).
		Where(sq.Or{
			sq.Eq{"id": ref},
			sq.Eq{"mid": ref},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to apply edit: %v", err)
	}

	return nil
}

// GetRecentMessages returns the newest archived messages for a conversation,
// optionally older than the offset timestamp.
func (r *Repository) GetRecentMessages(ctx context.Context, peerID string, offset string, limit int32) (*model.MessageList, error) {
	queryBuilder := sq.Select("payload").
		From("messages").
		Where(sq.Eq{"peer_id": peerID}).
		OrderBy("sent_at DESC")

	if offset != "" {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"sent_at": offset})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	} else {
		queryBuilder = queryBuilder.Limit(50)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var payloads [][]byte
	err = sqlx.SelectContext(ctx, r.Chk(ctx), &payloads, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %v", err)
	}

	messages := make(model.MessageList, 0, len(payloads))
	for _, payload := range payloads {
		var msg model.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message payload: %v", err)
		}
		messages = append(messages, msg)
	}

	return &messages, nil
}

// RegisterSeenIDs records every identifier variant of a message so a second
// consumer observing the same delivery under another id skips it.
func (r *Repository) RegisterSeenIDs(ctx context.Context, messageID string, variants []string) error {
	if len(variants) == 0 {
		return nil
	}

	query := sq.Insert("seen_ids").
		Columns("variant", "message_id").
		Suffix("ON CONFLICT (variant) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, variant := range variants {
		query = query.Values(variant, messageID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sql, args...)

	return err
}

// IsSeen reports whether any identifier variant has already been recorded.
func (r *Repository) IsSeen(ctx context.Context, variants []string) (bool, error) {
	if len(variants) == 0 {
		return false, nil
	}

	query, args, err := sq.Select("COUNT(*) > 0").
		From("seen_ids").
		Where(sq.Eq{"variant": variants}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var seen bool
	err = sqlx.GetContext(ctx, r.Chk(ctx), &seen, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check seen ids: %v", err)
	}

	return seen, nil
}
