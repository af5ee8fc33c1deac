package domain

import (
	"bytes"
	"encoding/json"
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"

	"comprehend/internal/core/enum"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/ptr"
)

// ErrorKind discriminates remote faults. The token is the exception name carried in __type
type ErrorKind string

// ErrorKind values
const (
	ErrorKindInvalidRequest         ErrorKind = "InvalidRequestException"
	ErrorKindResourceNotFound       ErrorKind = "ResourceNotFoundException"
	ErrorKindResourceInUse          ErrorKind = "ResourceInUseException"
	ErrorKindResourceLimitExceeded  ErrorKind = "ResourceLimitExceededException"
	ErrorKindResourceUnavailable    ErrorKind = "ResourceUnavailableException"
	ErrorKindTooManyRequests        ErrorKind = "TooManyRequestsException"
	ErrorKindTextSizeLimitExceeded  ErrorKind = "TextSizeLimitExceededException"
	ErrorKindUnsupportedLanguage    ErrorKind = "UnsupportedLanguageException"
	ErrorKindBatchSizeLimitExceeded ErrorKind = "BatchSizeLimitExceededException"
	ErrorKindInternalServer         ErrorKind = "InternalServerException"
	ErrorKindJobNotFound            ErrorKind = "JobNotFoundException"
	ErrorKindInvalidFilter          ErrorKind = "InvalidFilterException"
	ErrorKindKmsKeyValidation       ErrorKind = "KmsKeyValidationException"
	ErrorKindConcurrentModification ErrorKind = "ConcurrentModificationException"
	ErrorKindTooManyTags            ErrorKind = "TooManyTagsException"
	ErrorKindTooManyTagKeys         ErrorKind = "TooManyTagKeysException"
	ErrorKindUnknownOperation       ErrorKind = "UnknownOperationException"
	ErrorKindService                ErrorKind = "ServiceException"
)

// Values returns every ErrorKind token in definition order
func (ErrorKind) Values() []ErrorKind {
	return []ErrorKind{
		ErrorKindInvalidRequest,
		ErrorKindResourceNotFound,
		ErrorKindResourceInUse,
		ErrorKindResourceLimitExceeded,
		ErrorKindResourceUnavailable,
		ErrorKindTooManyRequests,
		ErrorKindTextSizeLimitExceeded,
		ErrorKindUnsupportedLanguage,
		ErrorKindBatchSizeLimitExceeded,
		ErrorKindInternalServer,
		ErrorKindJobNotFound,
		ErrorKindInvalidFilter,
		ErrorKindKmsKeyValidation,
		ErrorKindConcurrentModification,
		ErrorKindTooManyTags,
		ErrorKindTooManyTagKeys,
		ErrorKindUnknownOperation,
		ErrorKindService,
	}
}

// IsKnown reports whether v is a defined ErrorKind
func (v ErrorKind) IsKnown() bool { return enum.Known(v) }

// StatusCode is the HTTP status the service answers with for k
func (k ErrorKind) StatusCode() int {
	switch k {
	case ErrorKindInternalServer, ErrorKindService:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Code maps k onto the platform error codes
func (k ErrorKind) Code() perr.ErrorCode {
	switch k {
	case ErrorKindInvalidRequest:
		return perr.ErrorCodeInvalidRequest
	case ErrorKindResourceNotFound, ErrorKindJobNotFound:
		return perr.ErrorCodeNotFound
	case ErrorKindResourceInUse, ErrorKindConcurrentModification:
		return perr.ErrorCodeConflict
	case ErrorKindResourceLimitExceeded, ErrorKindTextSizeLimitExceeded, ErrorKindBatchSizeLimitExceeded,
		ErrorKindTooManyTags, ErrorKindTooManyTagKeys:
		return perr.ErrorCodeLimitExceeded
	case ErrorKindTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	case ErrorKindResourceUnavailable:
		return perr.ErrorCodeUnavailable
	case ErrorKindUnsupportedLanguage, ErrorKindInvalidFilter, ErrorKindKmsKeyValidation, ErrorKindUnknownOperation:
		return perr.ErrorCodeInvalidArgument
	}
	return perr.ErrorCodeService
}

// Fault is the kind-specific payload of a remote failure.
// Only the exception shapes in this package implement it
type Fault interface {
	ErrorKind() ErrorKind
	ErrorMessage() string
	fault()
}

// InvalidRequestDetail explains which document rule was broken
type InvalidRequestDetail struct {
	Reason *InvalidRequestDetailReason `json:"Reason,omitzero" validate:"omitempty,enum"`
}

// InvalidRequestException is a semantic rejection of a request
type InvalidRequestException struct {
	Message *string               `json:"Message,omitzero"`
	Reason  *InvalidRequestReason `json:"Reason,omitzero" validate:"omitempty,enum"`
	Detail  *InvalidRequestDetail `json:"Detail,omitzero"`
}

func (*InvalidRequestException) ErrorKind() ErrorKind { return ErrorKindInvalidRequest }

func (e *InvalidRequestException) ErrorMessage() string { return ptr.Deref(e.Message) }

func (*InvalidRequestException) fault() {}

// DetailReason returns the nested detail reason, or "" when there is none
func (e *InvalidRequestException) DetailReason() InvalidRequestDetailReason {
	if e.Detail == nil {
		return ""
	}
	return ptr.Deref(e.Detail.Reason)
}

type ResourceNotFoundException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ResourceNotFoundException) ErrorKind() ErrorKind   { return ErrorKindResourceNotFound }
func (e *ResourceNotFoundException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ResourceNotFoundException) fault()                 {}

type ResourceInUseException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ResourceInUseException) ErrorKind() ErrorKind   { return ErrorKindResourceInUse }
func (e *ResourceInUseException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ResourceInUseException) fault()                 {}

type ResourceLimitExceededException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ResourceLimitExceededException) ErrorKind() ErrorKind   { return ErrorKindResourceLimitExceeded }
func (e *ResourceLimitExceededException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ResourceLimitExceededException) fault()                 {}

type ResourceUnavailableException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ResourceUnavailableException) ErrorKind() ErrorKind   { return ErrorKindResourceUnavailable }
func (e *ResourceUnavailableException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ResourceUnavailableException) fault()                 {}

type TooManyRequestsException struct {
	Message *string `json:"Message,omitzero"`
}

func (*TooManyRequestsException) ErrorKind() ErrorKind   { return ErrorKindTooManyRequests }
func (e *TooManyRequestsException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*TooManyRequestsException) fault()                 {}

type TextSizeLimitExceededException struct {
	Message *string `json:"Message,omitzero"`
}

func (*TextSizeLimitExceededException) ErrorKind() ErrorKind   { return ErrorKindTextSizeLimitExceeded }
func (e *TextSizeLimitExceededException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*TextSizeLimitExceededException) fault()                 {}

type UnsupportedLanguageException struct {
	Message *string `json:"Message,omitzero"`
}

func (*UnsupportedLanguageException) ErrorKind() ErrorKind   { return ErrorKindUnsupportedLanguage }
func (e *UnsupportedLanguageException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*UnsupportedLanguageException) fault()                 {}

type BatchSizeLimitExceededException struct {
	Message *string `json:"Message,omitzero"`
}

func (*BatchSizeLimitExceededException) ErrorKind() ErrorKind   { return ErrorKindBatchSizeLimitExceeded }
func (e *BatchSizeLimitExceededException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*BatchSizeLimitExceededException) fault()                 {}

type InternalServerException struct {
	Message *string `json:"Message,omitzero"`
}

func (*InternalServerException) ErrorKind() ErrorKind   { return ErrorKindInternalServer }
func (e *InternalServerException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*InternalServerException) fault()                 {}

type JobNotFoundException struct {
	Message *string `json:"Message,omitzero"`
}

func (*JobNotFoundException) ErrorKind() ErrorKind   { return ErrorKindJobNotFound }
func (e *JobNotFoundException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*JobNotFoundException) fault()                 {}

type InvalidFilterException struct {
	Message *string `json:"Message,omitzero"`
}

func (*InvalidFilterException) ErrorKind() ErrorKind   { return ErrorKindInvalidFilter }
func (e *InvalidFilterException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*InvalidFilterException) fault()                 {}

type KmsKeyValidationException struct {
	Message *string `json:"Message,omitzero"`
}

func (*KmsKeyValidationException) ErrorKind() ErrorKind   { return ErrorKindKmsKeyValidation }
func (e *KmsKeyValidationException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*KmsKeyValidationException) fault()                 {}

type ConcurrentModificationException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ConcurrentModificationException) ErrorKind() ErrorKind   { return ErrorKindConcurrentModification }
func (e *ConcurrentModificationException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ConcurrentModificationException) fault()                 {}

type TooManyTagsException struct {
	Message *string `json:"Message,omitzero"`
}

func (*TooManyTagsException) ErrorKind() ErrorKind   { return ErrorKindTooManyTags }
func (e *TooManyTagsException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*TooManyTagsException) fault()                 {}

type TooManyTagKeysException struct {
	Message *string `json:"Message,omitzero"`
}

func (*TooManyTagKeysException) ErrorKind() ErrorKind   { return ErrorKindTooManyTagKeys }
func (e *TooManyTagKeysException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*TooManyTagKeysException) fault()                 {}

type UnknownOperationException struct {
	Message *string `json:"Message,omitzero"`
}

func (*UnknownOperationException) ErrorKind() ErrorKind   { return ErrorKindUnknownOperation }
func (e *UnknownOperationException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*UnknownOperationException) fault()                 {}

// ServiceException carries any failure whose type this model does not define
type ServiceException struct {
	Message *string `json:"Message,omitzero"`
}

func (*ServiceException) ErrorKind() ErrorKind   { return ErrorKindService }
func (e *ServiceException) ErrorMessage() string { return ptr.Deref(e.Message) }
func (*ServiceException) fault()                 {}

// NewFault returns an empty payload for k
func NewFault(k ErrorKind) Fault {
	switch k {
	case ErrorKindInvalidRequest:
		return &InvalidRequestException{}
	case ErrorKindResourceNotFound:
		return &ResourceNotFoundException{}
	case ErrorKindResourceInUse:
		return &ResourceInUseException{}
	case ErrorKindResourceLimitExceeded:
		return &ResourceLimitExceededException{}
	case ErrorKindResourceUnavailable:
		return &ResourceUnavailableException{}
	case ErrorKindTooManyRequests:
		return &TooManyRequestsException{}
	case ErrorKindTextSizeLimitExceeded:
		return &TextSizeLimitExceededException{}
	case ErrorKindUnsupportedLanguage:
		return &UnsupportedLanguageException{}
	case ErrorKindBatchSizeLimitExceeded:
		return &BatchSizeLimitExceededException{}
	case ErrorKindInternalServer:
		return &InternalServerException{}
	case ErrorKindJobNotFound:
		return &JobNotFoundException{}
	case ErrorKindInvalidFilter:
		return &InvalidFilterException{}
	case ErrorKindKmsKeyValidation:
		return &KmsKeyValidationException{}
	case ErrorKindConcurrentModification:
		return &ConcurrentModificationException{}
	case ErrorKindTooManyTags:
		return &TooManyTagsException{}
	case ErrorKindTooManyTagKeys:
		return &TooManyTagKeysException{}
	case ErrorKindUnknownOperation:
		return &UnknownOperationException{}
	}
	return &ServiceException{}
}

// Faultf returns a fault of kind k carrying a formatted message
func Faultf(k ErrorKind, format string, args ...any) Fault {
	f := NewFault(k)
	setMessage(f, fmt.Sprintf(format, args...))
	return f
}

// APIError is a remote failure. Kind selects the concrete type of Fault
type APIError struct {
	Kind       ErrorKind
	Type       string // exception name as received, after sanitizing
	StatusCode int
	RequestID  string
	Fault      Fault
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type)
	if msg := e.Message(); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	if ir, ok := e.Fault.(*InvalidRequestException); ok && ir.Reason != nil {
		fmt.Fprintf(&b, " (reason %s", *ir.Reason)
		if d := ir.DetailReason(); d != "" {
			fmt.Fprintf(&b, ", detail %s", d)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, " [status %d", e.StatusCode)
	if e.RequestID != "" {
		fmt.Fprintf(&b, ", request %s", e.RequestID)
	}
	b.WriteString("]")
	return b.String()
}

// Message is the human readable text of the fault
func (e *APIError) Message() string {
	if e.Fault == nil {
		return ""
	}
	return e.Fault.ErrorMessage()
}

// Code maps the fault kind onto the platform error codes
func (e *APIError) Code() perr.ErrorCode { return e.Kind.Code() }

// NewAPIError wraps a fault built locally, as a server would report it
func NewAPIError(f Fault) *APIError {
	k := f.ErrorKind()
	return &APIError{Kind: k, Type: string(k), StatusCode: k.StatusCode(), Fault: f}
}

// SanitizeErrorType reduces "ns#Name:uri" forms to Name
func SanitizeErrorType(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// DecodeAPIError builds the error for a non-2xx response.
// The type comes from the header when present, else from __type in the body.
// Payload members are decoded leniently: an unknown reason token is kept verbatim
// and a malformed member never hides the fault kind
func DecodeAPIError(status int, requestID, headerType string, body []byte) *APIError {
	var members map[string]json.RawMessage
	_ = json.Unmarshal(body, &members)

	typ := SanitizeErrorType(headerType)
	if typ == "" {
		var raw string
		if err := json.Unmarshal(members["__type"], &raw); err == nil {
			typ = SanitizeErrorType(raw)
		}
	}

	kind, err := enum.Parse[ErrorKind](typ)
	if err != nil {
		kind = ErrorKindService
	}
	if typ == "" {
		typ = string(kind)
	}
	if status == 0 {
		status = kind.StatusCode()
	}

	// some services spell it "message"
	if _, ok := members["Message"]; !ok {
		if m, ok := members["message"]; ok {
			members["Message"] = m
		}
	}

	f := NewFault(kind)
	if len(members) > 0 {
		delete(members, "__type")
		if b, err := json.Marshal(members); err == nil {
			if json.Unmarshal(b, f) != nil {
				f = NewFault(kind)
				var msg string
				if json.Unmarshal(members["Message"], &msg) == nil {
					setMessage(f, msg)
				}
			}
		}
	}

	return &APIError{Kind: kind, Type: typ, StatusCode: status, RequestID: requestID, Fault: f}
}

func setMessage(f Fault, msg string) {
	b, _ := json.Marshal(map[string]string{"Message": msg})
	_ = json.Unmarshal(b, f)
}

// EncodeFault renders f as a JSON 1.1 error body with __type first
func EncodeFault(f Fault) ([]byte, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode fault")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"__type":`)
	typ, _ := json.Marshal(string(f.ErrorKind()))
	buf.Write(typ)
	if rest := bytes.TrimPrefix(body, []byte("{")); len(rest) > 1 {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// AsAPIError finds the remote failure in err's chain
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if stderrs.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// FaultOf returns the payload of a remote failure when it has concrete type T
func FaultOf[T Fault](err error) (T, bool) {
	var zero T
	ae, ok := AsAPIError(err)
	if !ok {
		return zero, false
	}
	f, ok := ae.Fault.(T)
	return f, ok
}
