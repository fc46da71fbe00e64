package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidPayload     = fmt.Errorf("invalid event payload")
	ErrEmptyContent       = fmt.Errorf("message content is empty")
	ErrContentTooLong     = fmt.Errorf("message content is too long")
	ErrMessageRejected    = fmt.Errorf("message rejected")
	ErrInvalidCommand     = fmt.Errorf("invalid command")
	ErrInvalidEmail       = fmt.Errorf("invalid email")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrForbidden          = fmt.Errorf("forbidden")
	ErrInvalidCursor      = fmt.Errorf("invalid cursor")
	ErrAdminEmailTaken    = fmt.Errorf("admin email already registered without the admin role")
)

// RejectedError carries the text shown to the sender when a policy refuses a message.
type RejectedError struct {
	Reason string
}

func (e RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMessageRejected, e.Reason)
}

func (e RejectedError) Unwrap() error { return ErrMessageRejected }

// MapToGRPCError translates domain errors into gRPC status errors.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var rejected RejectedError
	switch {
	case stderrors.As(err, &rejected):
		return status.Error(codes.FailedPrecondition, rejected.Reason)
	case stderrors.Is(err, ErrEmptyContent),
		stderrors.Is(err, ErrContentTooLong),
		stderrors.Is(err, ErrInvalidCommand),
		stderrors.Is(err, ErrInvalidEmail),
		stderrors.Is(err, ErrInvalidPassword),
		stderrors.Is(err, ErrInvalidCursor):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case stderrors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
