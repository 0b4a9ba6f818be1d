package response

import (
	"time"

	"deal-marketplace/internal/usecase/commands"
	"deal-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteResponse struct {
	FavoritedAt time.Time     `json:"favorited_at"`
	Deal        *DealResponse `json:"deal"`
}

func FromFavoriteViews(vs []*queries.FavoriteView) []*FavoriteResponse {
	res := make([]*FavoriteResponse, len(vs))
	for i, v := range vs {
		res[i] = &FavoriteResponse{
			FavoritedAt: v.FavoritedAt,
			Deal:        FromDealView(&v.Deal),
		}
	}
	return res
}

type FavoriteResultResponse struct {
	DealID           uuid.UUID `json:"deal_id"`
	AlreadyFavorited bool      `json:"already_favorited"`
}

func FromFavoriteResult(r *commands.FavoriteResult) *FavoriteResultResponse {
	return &FavoriteResultResponse{DealID: r.DealID, AlreadyFavorited: r.AlreadyFavorited}
}
