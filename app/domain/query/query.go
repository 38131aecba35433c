package query

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"lendsqr.dev/admin-api-gateway/app/domain/user"
)

// GetListQueryFromQuery extracts and validates the listing parameters of a
// user-table request.
func GetListQueryFromQuery(reqCtx *gin.Context) (*user.ListQuery, error) {
	pageStr := reqCtx.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return nil, fmt.Errorf("invalid page number")
	}

	pageSizeStr := reqCtx.DefaultQuery("page_size", strconv.Itoa(user.DefaultPageSize))
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || !user.ValidPageSize(pageSize) {
		return nil, fmt.Errorf("invalid page size")
	}

	refresh := false
	if refreshStr := reqCtx.Query("refresh"); refreshStr != "" {
		refresh, err = strconv.ParseBool(refreshStr)
		if err != nil {
			return nil, fmt.Errorf("invalid refresh flag")
		}
	}

	status := reqCtx.Query("status")
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("invalid status")
	}

	return &user.ListQuery{
		Filters: user.FilterValues{
			Organization: reqCtx.Query("organization"),
			Username:     reqCtx.Query("username"),
			Email:        reqCtx.Query("email"),
			Date:         reqCtx.Query("date"),
			PhoneNumber:  reqCtx.Query("phone_number"),
			Status:       status,
		},
		Page:     page,
		PageSize: pageSize,
		Refresh:  refresh,
	}, nil
}

func validStatus(status string) bool {
	for _, s := range user.Statuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
