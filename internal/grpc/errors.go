package grpc

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
)

// ErrorDomain is the ErrorInfo domain attached to catalog failures.
const ErrorDomain = "showfinder.catalog"

// ErrorInfo reasons.
const (
	ReasonCanceled          = "CANCELED"
	ReasonDeadlineExceeded  = "DEADLINE_EXCEEDED"
	ReasonUpstreamStatus    = "UPSTREAM_STATUS"
	ReasonNetworkError      = "NETWORK_ERROR"
	ReasonMalformedResponse = "MALFORMED_RESPONSE"
	ReasonInternal          = "INTERNAL"
)

// toStatusError converts a catalog error into a gRPC status carrying an
// errdetails.ErrorInfo. Context errors are checked first since transport
// failures wrap them.
func toStatusError(err error) error {
	var (
		code     codes.Code
		reason   string
		metadata map[string]string
		upstream *apperrors.UpstreamError
	)

	switch {
	case errors.Is(err, context.Canceled):
		code, reason = codes.Canceled, ReasonCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code, reason = codes.DeadlineExceeded, ReasonDeadlineExceeded
	case errors.As(err, &upstream):
		code, reason = codes.Unavailable, ReasonUpstreamStatus
		metadata = map[string]string{"status_code": strconv.Itoa(upstream.StatusCode)}
	case errors.Is(err, &apperrors.NetworkError{}):
		code, reason = codes.Unavailable, ReasonNetworkError
	case errors.Is(err, &apperrors.MalformedResponseError{}):
		code, reason = codes.DataLoss, ReasonMalformedResponse
	default:
		code, reason = codes.Internal, ReasonInternal
	}

	st := status.New(code, err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   ErrorDomain,
		Metadata: metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorInfoFromStatus extracts the ErrorInfo detail of a status error, if any.
func ErrorInfoFromStatus(err error) *errdetails.ErrorInfo {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	return nil
}
