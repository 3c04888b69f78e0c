package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shoply/pkg/database"
	"github.com/ghuser/shoply/pkg/events"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
	domainevents "github.com/ghuser/shoply/services/catalog/domain/events"
	"github.com/ghuser/shoply/services/catalog/domain/models"
)

// LikeRepository implements repositories.LikeRepository against PostgreSQL.
// The likes table carries a unique (user_id, product_id) constraint; that
// constraint is the correctness backstop for concurrent toggles, so Create
// translates a unique violation into domain.ErrAlreadyLiked rather than
// masking it.
type LikeRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewLikeRepository returns a LikeRepository backed by the given connection
// pool and event bus. The bus publishes LikeToggledEvents in the same
// transaction as each mutation.
func NewLikeRepository(db *database.Database, bus *events.EventBus) *LikeRepository {
	return &LikeRepository{db: db, bus: bus}
}

// Create persists a new Like and publishes a LikeToggledEvent within the same
// transaction. Returns ErrAlreadyLiked on unique constraint violations.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO likes (id, user_id, product_id, created_at)
			 VALUES ($1, $2, $3, $4)`,
			like.ID, like.UserID, like.ProductID, like.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return catalogdomain.ErrAlreadyLiked
			}
			return fmt.Errorf("insert like: %w", err)
		}

		if r.bus != nil {
			if err := r.publishToggled(tx, like.UserID, like.ProductID, true); err != nil {
				return fmt.Errorf("publish like toggled: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the Like for the pair and publishes a LikeToggledEvent when a
// row was removed. Reports false without error when no row existed.
func (r *LikeRepository) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var removed bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE user_id = $1 AND product_id = $2`,
			userID, productID,
		)
		if err != nil {
			return fmt.Errorf("delete like: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete like rows affected: %w", err)
		}
		removed = n > 0

		if removed && r.bus != nil {
			if err := r.publishToggled(tx, userID, productID, false); err != nil {
				return fmt.Errorf("publish like toggled: %w", err)
			}
		}
		return nil
	})
	return removed, err
}

// Exists reports whether a Like exists for the pair.
func (r *LikeRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND product_id = $2)`,
		userID, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like exists: %w", err)
	}
	return exists, nil
}

// CountByProduct returns the number of Likes on one product, re-derived from
// the store. Toggle responses always use this count; no cached counter is
// ever incremented in place.
func (r *LikeRepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// CountByProducts returns like counts for each given product in one query.
func (r *LikeRepository) CountByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT product_id, COUNT(*) FROM likes
		 WHERE product_id = ANY($1::uuid[])
		 GROUP BY product_id`,
		uuidArray(productIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("count likes by product: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var (
			id    uuid.UUID
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate like counts: %w", err)
	}
	return counts, nil
}

// LikedSet returns the subset of productIDs the given user has liked, in one query.
func (r *LikeRepository) LikedSet(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(productIDs))
	if len(productIDs) == 0 {
		return liked, nil
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT product_id FROM likes
		 WHERE user_id = $1 AND product_id = ANY($2::uuid[])`,
		userID, uuidArray(productIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("query liked set: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan liked product id: %w", err)
		}
		liked[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate liked set: %w", err)
	}
	return liked, nil
}

func (r *LikeRepository) publishToggled(tx *sql.Tx, userID, productID uuid.UUID, likedNow bool) error {
	event := domainevents.LikeToggledEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     userID,
		ProductID:  productID,
		Liked:      likedNow,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicLikeToggled, msg)
}

// uuidArray renders ids as text for a $n::uuid[] parameter.
func uuidArray(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
