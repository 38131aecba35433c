package user

import (
	"github.com/shopspring/decimal"
)

// Stats are the dashboard counters shown above the user table.
type Stats struct {
	TotalUsers       int64 `json:"totalUsers"`
	ActiveUsers      int64 `json:"activeUsers"`
	UsersWithLoans   int64 `json:"usersWithLoans"`
	UsersWithSavings int64 `json:"usersWithSavings"`
}

var (
	loanShare    = decimal.NewFromFloat(0.3)
	savingsShare = decimal.NewFromFloat(0.6)
)

// ComputeStats derives the counters from the working collection. Loan and
// savings counts are fixed shares of the total, rounded half-up.
func ComputeStats(users []*User) Stats {
	total := int64(len(users))
	var active int64
	for _, u := range users {
		if u.Status == StatusActive {
			active++
		}
	}
	totalDec := decimal.NewFromInt(total)
	return Stats{
		TotalUsers:       total,
		ActiveUsers:      active,
		UsersWithLoans:   totalDec.Mul(loanShare).Round(0).IntPart(),
		UsersWithSavings: totalDec.Mul(savingsShare).Round(0).IntPart(),
	}
}
