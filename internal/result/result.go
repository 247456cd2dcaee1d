// Package result holds the uniform response envelope of the admin API.
package result

const (
	CodeSuccess = 1
	CodeFailure = 0
)

// Result wraps every response body: code 1 on success, 0 on failure.
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func Success(data any) Result { return Result{Code: CodeSuccess, Data: data} }

func Failure(msg string) Result { return Result{Code: CodeFailure, Msg: msg} }

// PageResult is the payload of every paginated query.
type PageResult[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}
