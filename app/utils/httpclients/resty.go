package httpclients

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"lendsqr.dev/admin-api-gateway/app/utils/contextkeys"
	"lendsqr.dev/admin-api-gateway/app/utils/logger"
	"resty.dev/v3"
)

// NewClient builds a resty client that logs every outbound exchange with the
// request id of the triggering inbound request.
func NewClient(clientName string) *resty.Client {
	client := resty.New()
	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		start := time.Now()
		ctx := context.WithValue(r.Context(), contextkeys.HttpClientStartsAt{}, start)
		ctx = context.WithValue(ctx, contextkeys.HttpClientRequestBody{}, r.Body)
		r.SetContext(ctx)
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		logger := logger.GetLogger()
		requestID := r.Request.Context().Value(contextkeys.RequestId{})
		startTime, _ := r.Request.Context().Value(contextkeys.HttpClientStartsAt{}).(time.Time)
		requestBody := r.Request.Context().Value(contextkeys.HttpClientRequestBody{})
		latency := time.Since(startTime)
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"client":     clientName,
			"status":     r.StatusCode(),
			"method":     r.Request.RawRequest.Method,
			"path":       r.Request.RawRequest.URL.Path,
			"query":      r.Request.RawRequest.URL.RawQuery,
			"req_body":   requestBody,
			"latency":    latency.String(),
		}).Info("")
		return nil
	})
	return client
}
