package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	"lendsqr.dev/admin-api-gateway/app/domain/user"
	"lendsqr.dev/admin-api-gateway/app/utils/httpclients"
	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

const requestTimeout = 10 * time.Second

// DirectoryGateway fetches raw records from the upstream user directory API
// and maps them to canonical users. Missing upstream fields are synthesized
// deterministically during mapping, so the gateway output is stable.
type DirectoryGateway struct {
	client *resty.Client
}

var _ user.Gateway = (*DirectoryGateway)(nil)

func NewDirectoryGateway() user.Gateway {
	client := httpclients.NewClient("DirectoryClient")
	client.SetBaseURL(environment_variables.EnvironmentVariables.USER_API_BASE_URL)
	client.SetTimeout(requestTimeout)
	return &DirectoryGateway{
		client: client,
	}
}

func (g *DirectoryGateway) FetchAll(ctx context.Context) ([]*user.User, error) {
	resp, err := g.client.R().SetContext(ctx).Get("/users")
	if err != nil {
		return nil, user.NewGatewayError(user.GatewayErrorUnavailable, err)
	}
	if resp.IsError() {
		return nil, user.NewGatewayError(user.GatewayErrorUnavailable,
			fmt.Errorf("directory returned %s", resp.Status()))
	}

	var raws []user.RawUser
	if err := json.Unmarshal(resp.Bytes(), &raws); err != nil {
		return nil, user.NewGatewayError(user.GatewayErrorBadPayload, err)
	}

	users := make([]*user.User, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" {
			return nil, user.NewGatewayError(user.GatewayErrorBadPayload,
				fmt.Errorf("record without id in directory payload"))
		}
		users = append(users, user.FromRaw(raw))
	}
	return users, nil
}

func (g *DirectoryGateway) FetchOne(ctx context.Context, id string) (*user.User, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/users/{id}")
	if err != nil {
		return nil, user.NewGatewayError(user.GatewayErrorUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, user.NewGatewayError(user.GatewayErrorNotFound,
			fmt.Errorf("user %s not found in directory", id))
	}
	if resp.IsError() {
		return nil, user.NewGatewayError(user.GatewayErrorUnavailable,
			fmt.Errorf("directory returned %s", resp.Status()))
	}

	var raw user.RawUser
	if err := json.Unmarshal(resp.Bytes(), &raw); err != nil {
		return nil, user.NewGatewayError(user.GatewayErrorBadPayload, err)
	}
	if raw.ID == "" {
		raw.ID = id
	}
	return user.FromRaw(raw), nil
}
