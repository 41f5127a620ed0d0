package attendance

import "context"

type Service interface {
	GetDetail(ctx context.Context, id int64) (*DetailResponse, error)

	EditClock(ctx context.Context, req EditClockRequest) (*MutationResult, error)
	DeleteClockOut(ctx context.Context, attendanceID int64) (*MutationResult, error)

	EditBreak(ctx context.Context, req EditBreakRequest) (*MutationResult, error)
	CreateBreak(ctx context.Context, req CreateBreakRequest) (*MutationResult, error)
	DeleteBreak(ctx context.Context, attendanceID, breakID int64) (*MutationResult, error)

	CreatePenalty(ctx context.Context, req CreateAdjustmentRequest) (*MutationResult, error)
	DeletePenalty(ctx context.Context, attendanceID, penaltyID int64) (*MutationResult, error)
	CreateBonus(ctx context.Context, req CreateAdjustmentRequest) (*MutationResult, error)
	DeleteBonus(ctx context.Context, attendanceID, bonusID int64) (*MutationResult, error)

	History(ctx context.Context, filter HistoryFilter) (*HistoryResponse, error)
}
