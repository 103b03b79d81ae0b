package dto

// Response is the envelope every /cart endpoint answers with. Data is null
// whenever Errors is non-empty or nothing was found.
type Response[T any] struct {
	Data   *T       `json:"data"`
	Errors []string `json:"errors"`
}

func NewResponse[T any](data *T) Response[T] {
	return Response[T]{Data: data, Errors: []string{}}
}

func NewErrorResponse[T any](errs ...string) Response[T] {
	if errs == nil {
		errs = []string{}
	}
	return Response[T]{Errors: errs}
}
