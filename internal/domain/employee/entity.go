package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a backend-owned record; the gateway holds transient copies
// only, decoded straight from the backend's JSON.
type Employee struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	QRID       string          `json:"qr_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)
