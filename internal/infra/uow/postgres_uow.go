package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"deal-marketplace/internal/infra/readstore"
	"deal-marketplace/internal/infra/repository"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/errs"
	"deal-marketplace/internal/usecase/queries"
	"deal-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted; the conditional UPDATEs carry the status guards.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	dealRepo         shared.DealRepository
	orderRepo        shared.OrderRepository
	favoriteRepo     shared.FavoriteRepository
	notificationRepo shared.NotificationRepository
	restaurantRepo   shared.RestaurantRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Deals() shared.DealRepository {
	if t.dealRepo == nil {
		t.dealRepo = repository.NewDealRepository(t.q)
	}
	return t.dealRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.q)
	}
	return t.orderRepo
}

func (t *pgTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository(t.q)
	}
	return t.favoriteRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Restaurants() shared.RestaurantRepository {
	if t.restaurantRepo == nil {
		t.restaurantRepo = repository.NewRestaurantRepository(t.q)
	}
	return t.restaurantRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.q,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore       *readstore.UserReadStore
	restaurantStore *readstore.RestaurantReadStore
	dealStore       *readstore.DealReadStore
	orderStore      *readstore.OrderReadStore
}

func (r *commandReads) ProfileByUserID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}

	p, err := r.userStore.FindProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ProfileSnapshot{
		ID:           p.ID,
		Role:         p.Role,
		RestaurantID: p.RestaurantID,
	}, nil
}

func (r *commandReads) RestaurantByRestaurantID(ctx context.Context, restaurantID string) (*shared.RestaurantSnapshot, error) {
	if r.restaurantStore == nil {
		r.restaurantStore = readstore.NewRestaurantReadStore(r.q, r.dbtx)
	}

	v, err := r.restaurantStore.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return &shared.RestaurantSnapshot{
		ID:           v.ID,
		RestaurantID: v.RestaurantID,
		OwnerID:      v.OwnerID,
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		City:         v.City,
		Phone:        v.Phone,
		Website:      v.Website,
		ImageURL:     v.ImageURL,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}, nil
}

func (r *commandReads) deals() *readstore.DealReadStore {
	if r.dealStore == nil {
		r.dealStore = readstore.NewDealReadStore(r.q, r.dbtx)
	}
	return r.dealStore
}

func (r *commandReads) DealByID(ctx context.Context, id uuid.UUID) (*shared.DealSnapshot, error) {
	v, err := r.deals().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dealSnapshot(v), nil
}

func (r *commandReads) DealsForCheckout(ctx context.Context, ids []uuid.UUID) ([]*shared.DealSnapshot, error) {
	views, err := r.deals().FindForCheckout(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*shared.DealSnapshot, 0, len(views))
	for _, v := range views {
		out = append(out, dealSnapshot(v))
	}
	return out, nil
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.q, r.dbtx)
	}

	v, err := r.orderStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := &shared.OrderSnapshot{
		ID:     v.ID,
		UserID: v.UserID,
		Status: v.Status,
	}
	seen := make(map[string]struct{}, len(v.Items))
	for _, it := range v.Items {
		if _, ok := seen[it.RestaurantID]; ok {
			continue
		}
		seen[it.RestaurantID] = struct{}{}
		snap.RestaurantIDs = append(snap.RestaurantIDs, it.RestaurantID)
	}
	return snap, nil
}

func dealSnapshot(v *queries.DealView) *shared.DealSnapshot {
	return &shared.DealSnapshot{
		ID:              v.ID,
		RestaurantID:    v.RestaurantID,
		RestaurantName:  v.RestaurantName,
		Title:           v.Title,
		Description:     v.Description,
		DealType:        v.DealType,
		DiscountType:    v.DiscountType,
		Value:           v.Value,
		Price:           v.Price,
		ImageURL:        v.ImageURL,
		Tags:            v.Tags,
		StartAt:         v.StartAt,
		EndAt:           v.EndAt,
		Status:          v.Status,
		RejectionReason: v.RejectionReason,
		CreatedByUserID: v.CreatedByUserID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
