package pkg

// AppError is the error shape every HTTP handler renders: a stable machine
// code, a human message and the HTTP status to answer with. The wrapped cause
// stays server-side and is never serialized.

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// HTTPError is the response body rendered for failures.

type HTTPError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e *AppError) ToHTTPError() HTTPError {
	var out HTTPError
	out.Error.Code = e.Code
	out.Error.Message = e.Message
	return out
}

func NewDomainError(code, message string, cause error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, cause: cause}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
