package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adcreative-analyzer/internal/config"
)

// UploadError reports a failure to stage a video with the provider. Op is
// "upload" for the transfer itself and "status" when the processing state
// could not be fetched.
type UploadError struct {
	Path string
	Op   string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// ProcessingFailedError reports that the provider gave up processing a video.
type ProcessingFailedError struct {
	Name   string
	Reason string
}

func (e *ProcessingFailedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("video processing failed for %s", e.Name)
	}
	return fmt.Sprintf("video processing failed for %s: %s", e.Name, e.Reason)
}

// InvocationError reports a failed model call.
type InvocationError struct {
	Name string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("model invocation for %s: %v", e.Name, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// SchemaCoercionError reports a model response that does not fit the
// record. Field is empty when the payload as a whole is unusable.
type SchemaCoercionError struct {
	Field string
	Err   error
}

func (e *SchemaCoercionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("coerce response: %v", e.Err)
	}
	return fmt.Sprintf("coerce response field %s: %v", e.Field, e.Err)
}

func (e *SchemaCoercionError) Unwrap() error { return e.Err }

// TimeoutError reports a stage that exceeded its bound.
type TimeoutError struct {
	Stage string
	After time.Duration
	Err   error
}

func (e *TimeoutError) Error() string {
	if e.After > 0 {
		return fmt.Sprintf("%s timed out after %s: %v", e.Stage, e.After, e.Err)
	}
	return fmt.Sprintf("%s timed out: %v", e.Stage, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Error kinds used in logs and metric labels.
const (
	KindConfiguration    = "configuration"
	KindUpload           = "upload"
	KindProcessingFailed = "processing_failed"
	KindInvocation       = "invocation"
	KindSchemaCoercion   = "schema_coercion"
	KindTimeout          = "timeout"
	KindCanceled         = "canceled"
	KindUnknown          = "unknown"
)

// ErrorKind classifies err for logs and metrics. A timeout wins over any
// error it wraps.
func ErrorKind(err error) string {
	var (
		cfgErr     *config.ConfigurationError
		uploadErr  *UploadError
		procErr    *ProcessingFailedError
		invokeErr  *InvocationError
		coerceErr  *SchemaCoercionError
		timeoutErr *TimeoutError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &timeoutErr):
		return KindTimeout
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &uploadErr):
		return KindUpload
	case errors.As(err, &procErr):
		return KindProcessingFailed
	case errors.As(err, &invokeErr):
		return KindInvocation
	case errors.As(err, &coerceErr):
		return KindSchemaCoercion
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindUnknown
	}
}
