package readstore

import (
	"context"

	"deal-marketplace/internal/infra"
	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealViewQueries interface {
	SearchPublishedDeals(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchPublishedDealsParams) ([]sqlc.Deals, error)
	CountPublishedDeals(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPublishedDealsParams) (int64, error)
	GetPublishedDeal(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetDealByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	GetDealsForCheckout(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Deals, error)
	ListDealsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID string) ([]sqlc.Deals, error)
	ListDealsByStatusOldestFirst(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.Deals, error)
}

type DealReadStore struct {
	queries DealViewQueries
	db      sqlc.DBTX
}

func NewDealReadStore(queries DealViewQueries, db sqlc.DBTX) *DealReadStore {
	return &DealReadStore{
		queries: queries,
		db:      db,
	}
}

var _ queries.DealReadStore = (*DealReadStore)(nil)

func (r *DealReadStore) SearchPublished(ctx context.Context, f queries.DealFilter) ([]*queries.DealView, error) {
	rows, err := r.queries.SearchPublishedDeals(ctx, r.db, sqlc.SearchPublishedDealsParams{
		DealType:    pgconv.StringPtrToPgtype(f.DealType),
		City:        pgconv.StringPtrToPgtype(f.City),
		Q:           pgconv.StringPtrToPgtype(f.Q),
		MinPrice:    pgconv.DecimalPtrToNumeric(f.MinPrice),
		MaxPrice:    pgconv.DecimalPtrToNumeric(f.MaxPrice),
		MinValue:    pgconv.DecimalPtrToNumeric(f.MinValue),
		MaxValue:    pgconv.DecimalPtrToNumeric(f.MaxValue),
		SortByValue: f.Sort == queries.SortValue,
		PageLimit:   int32(f.Limit),    // #nosec G115 -- clamped by Normalize
		PageOffset:  int32(f.Offset()), // #nosec G115 -- clamped by Normalize
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search published deals", err)
	}
	return dealViews(rows)
}

func (r *DealReadStore) CountPublished(ctx context.Context, f queries.DealFilter) (int64, error) {
	n, err := r.queries.CountPublishedDeals(ctx, r.db, sqlc.CountPublishedDealsParams{
		DealType: pgconv.StringPtrToPgtype(f.DealType),
		City:     pgconv.StringPtrToPgtype(f.City),
		Q:        pgconv.StringPtrToPgtype(f.Q),
		MinPrice: pgconv.DecimalPtrToNumeric(f.MinPrice),
		MaxPrice: pgconv.DecimalPtrToNumeric(f.MaxPrice),
		MinValue: pgconv.DecimalPtrToNumeric(f.MinValue),
		MaxValue: pgconv.DecimalPtrToNumeric(f.MaxValue),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count published deals", err)
	}
	return n, nil
}

func (r *DealReadStore) FindPublishedByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	row, err := r.queries.GetPublishedDeal(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("published deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get published deal", err)
	}
	return DealView(row)
}

func (r *DealReadStore) FindByRestaurant(ctx context.Context, restaurantID string) ([]*queries.DealView, error) {
	rows, err := r.queries.ListDealsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant deals", err)
	}
	return dealViews(rows)
}

func (r *DealReadStore) FindByStatusOldestFirst(ctx context.Context, status string) ([]*queries.DealView, error) {
	rows, err := r.queries.ListDealsByStatusOldestFirst(ctx, r.db, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by status", err)
	}
	return dealViews(rows)
}

// FindByID returns a deal in any status; command paths use it.
func (r *DealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal", err)
	}
	return DealView(row)
}

// FindForCheckout share-locks the selected rows when db is a transaction.
func (r *DealReadStore) FindForCheckout(ctx context.Context, ids []uuid.UUID) ([]*queries.DealView, error) {
	rows, err := r.queries.GetDealsForCheckout(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load deals for checkout", err)
	}
	return dealViews(rows)
}

// DealView maps a deals row; it is shared with the command-side reads.
func DealView(row sqlc.Deals) (*queries.DealView, error) {
	value, err := pgconv.DecimalPtrFromNumeric(row.Value)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deal value", err, infra.KindDBFailure)
	}
	price, err := pgconv.DecimalPtrFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deal price", err, infra.KindDBFailure)
	}
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return &queries.DealView{
		ID:              row.ID,
		RestaurantID:    row.RestaurantID,
		RestaurantName:  row.RestaurantName,
		Title:           row.Title,
		Description:     row.Description,
		DealType:        row.DealType,
		DiscountType:    row.DiscountType,
		Value:           value,
		Price:           price,
		ImageURL:        pgconv.StringPtrFromPgtype(row.ImageUrl),
		Tags:            tags,
		StartAt:         pgconv.TimePtrFromPgtype(row.StartAt),
		EndAt:           pgconv.TimePtrFromPgtype(row.EndAt),
		Status:          row.Status,
		RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
		CreatedByUserID: row.CreatedBy,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func dealViews(rows []sqlc.Deals) ([]*queries.DealView, error) {
	out := make([]*queries.DealView, 0, len(rows))
	for _, row := range rows {
		v, err := DealView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
