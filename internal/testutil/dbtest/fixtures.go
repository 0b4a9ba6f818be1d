//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deal-marketplace/internal/domain/user"
	"deal-marketplace/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateUser inserts a customer or admin.
func CreateUser(t *testing.T, db DBLike, role user.Role) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, email, role) VALUES ($1, $2, $3)",
		id, id.String()+"@example.test", string(role))
	require.NoError(t, err)
	return id
}

// CreateOwner inserts an owner together with the restaurant they run.
func CreateOwner(t *testing.T, db DBLike, restaurantID, name string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	ownerID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role, restaurant_id) VALUES ($1, $2, 'owner', $3)",
		ownerID, ownerID.String()+"@example.test", restaurantID)
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = db.Exec(ctx,
		`INSERT INTO restaurants (id, restaurant_id, owner_id, name, city, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 'Austin', $5, $5)`,
		uuid.New(), restaurantID, ownerID, name, now)
	require.NoError(t, err)
	return ownerID
}

// InsertDeal writes b as-is, bypassing the moderation flow.
func InsertDeal(t *testing.T, db DBLike, b *builder.DealBuilder) uuid.UUID {
	t.Helper()

	var value, price *string
	if b.Value != nil {
		s := b.Value.String()
		value = &s
	}
	if b.Price != nil {
		s := b.Price.String()
		price = &s
	}
	_, err := db.Exec(context.Background(),
		`INSERT INTO deals (id, restaurant_id, restaurant_name, title, description, deal_type, discount_type,
		                    value, price, image_url, tags, start_at, end_at, status, rejection_reason,
		                    created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10, $11, $12, $13, $14, $15, $16, $17, $17)`,
		b.ID, b.RestaurantID, b.RestaurantName, b.Title, b.Description, b.DealType, b.DiscountType,
		value, price, b.ImageURL, b.Tags, b.StartAt, b.EndAt, string(b.Status), b.RejectionReason,
		b.CreatedBy, b.CreatedAt)
	require.NoError(t, err)
	return b.ID
}

// DealStatus reads the stored status of a deal.
func DealStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM deals WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// Count returns the number of rows in table matching where.
func Count(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
