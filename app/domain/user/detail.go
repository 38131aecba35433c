package user

import (
	"strconv"

	"lendsqr.dev/admin-api-gateway/app/utils/money"

	"github.com/shopspring/decimal"
)

var banks = []string{"Providus Bank", "GTBank", "Access Bank", "First Bank", "Zenith Bank", "UBA", "Kuda Bank", "Wema Bank"}

// Code derives the display user code shown on the detail view,
// e.g. "LSQFf587g90".
func Code(id string) string {
	b36 := strconv.FormatInt(Seed(id), 36)
	if len(b36) > 7 {
		b36 = b36[:7]
	}
	return "LSQFf" + b36
}

// Tier derives the 1-3 star tier from the id.
func Tier(id string) int {
	var n int64
	for _, r := range id {
		n += int64(uint16(r))
	}
	return int(n%3) + 1
}

// AccountInfo is the synthesized bank detail block.
type AccountInfo struct {
	Balance string `json:"balance"`
	Bank    string `json:"bank"`
}

// Account derives a deterministic balance and account/bank string from the id.
func Account(id string) AccountInfo {
	seed := Seed(id)
	balance := (seed % 900000) + 100000
	acctNo := padLeftSlice(strconv.FormatInt(seed, 10), 10)
	bank := banks[seed%int64(len(banks))]
	return AccountInfo{
		Balance: money.NairaSign + money.GroupThousands(decimal.NewFromInt(balance)) + ".00",
		Bank:    acctNo + "/" + bank,
	}
}
