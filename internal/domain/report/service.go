package report

import "context"

type Service interface {
	GetWeek(ctx context.Context, req WeekRequest) (*WeekResponse, error)
}
