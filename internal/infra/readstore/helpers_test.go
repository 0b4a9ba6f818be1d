//go:build unit

package readstore_test

import (
	"context"

	sqlc "deal-marketplace/internal/infra/sqlc/generated"
	"deal-marketplace/internal/pkg/pgconv"
	"deal-marketplace/internal/testutil/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func dealRow(b *builder.DealBuilder) sqlc.Deals {
	return sqlc.Deals{
		ID:              b.ID,
		RestaurantID:    b.RestaurantID,
		RestaurantName:  b.RestaurantName,
		Title:           b.Title,
		Description:     b.Description,
		DealType:        b.DealType,
		DiscountType:    b.DiscountType,
		Value:           pgconv.DecimalPtrToNumeric(b.Value),
		Price:           pgconv.DecimalPtrToNumeric(b.Price),
		ImageUrl:        pgconv.StringPtrToPgtype(b.ImageURL),
		Tags:            b.Tags,
		StartAt:         pgconv.TimePtrToPgtype(b.StartAt),
		EndAt:           pgconv.TimePtrToPgtype(b.EndAt),
		Status:          b.Status.String(),
		RejectionReason: pgconv.StringPtrToPgtype(b.RejectionReason),
		CreatedBy:       b.CreatedBy,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}
