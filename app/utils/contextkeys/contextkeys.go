package contextkeys

// RequestId carries the per-request id assigned by the logger middleware.
type RequestId struct{}

// TransactionContextKey carries the per-request gorm transaction.
type TransactionContextKey struct{}

// HttpClientStartsAt and HttpClientRequestBody carry outbound request
// metadata between the resty middlewares.
type HttpClientStartsAt struct{}
type HttpClientRequestBody struct{}
