package repository

import (
	"context"
	"time"

	"deal-marketplace/internal/domain/deal"
	"deal-marketplace/internal/infra"
	"deal-marketplace/internal/infra/repository/converter"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) error
	UpdateDealContent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealContentParams) (int64, error)
	TransitionDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionDealParams) (int64, error)
	DeleteDraftDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DealRepository struct {
	queries DealWriteQueries
}

func NewDealRepository(queries DealWriteQueries) *DealRepository {
	return &DealRepository{queries: queries}
}

func (r *DealRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	if err := r.queries.CreateDeal(ctx, tx, converter.DealToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create deal", err)
	}
	return nil
}

func (r *DealRepository) UpdateContent(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (bool, error) {
	n, err := r.queries.UpdateDealContent(ctx, tx, converter.DealToUpdateParams(d))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update deal", err)
	}
	return n == 1, nil
}

// Transition writes only while the row is still in one of t's source
// states; the row lock makes concurrent decisions serialize.
func (r *DealRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, t deal.Transition, reason *string, at time.Time) (bool, error) {
	n, err := r.queries.TransitionDeal(ctx, tx, sqlc.TransitionDealParams{
		ToStatus:        t.To.String(),
		RejectionReason: pgconv.StringPtrToPgtype(reason),
		UpdatedAt:       pgconv.TimeToPgtype(at),
		ID:              id,
		FromStatuses:    t.FromStrings(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition deal", err)
	}
	return n == 1, nil
}

func (r *DealRepository) DeleteDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteDraftDeal(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete deal", err)
	}
	return n == 1, nil
}
