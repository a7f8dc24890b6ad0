package gallery

import (
	"bytes"
	"context"
	stderrors "errors"
	"mime"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// publicError is the user-safe rendering of a failure.
type publicError struct {
	Status  int
	Reason  string
	Message string

	grpc *status.Status
}

// describeError converts err into an HTTP status and a localized message by
// way of the domain error's gRPC status details. Errors outside the domain
// become opaque 500s.
func describeError(err error, locale string) publicError {
	var domainErr *apperrors.Error
	if !stderrors.As(err, &domainErr) {
		domainErr = apperrors.Wrap(apperrors.CodeUnknown, "internal error", err)
	}

	st, _ := status.FromError(domainErr.ToGRPCStatus(locale))
	out := publicError{
		Status: grpcHTTPStatus(st.Code()),
		Reason: string(domainErr.Code),
		grpc:   st,
	}
	for _, detail := range st.Details() {
		if localized, ok := detail.(*errdetails.LocalizedMessage); ok {
			out.Message = localized.GetMessage()
		}
	}
	if out.Message == "" {
		out.Message = domainErr.UserMessage(locale)
	}
	return out
}

// statusJSON encodes the failure as a google.rpc.Status. The internal status
// message is replaced by the localized one.
func (pe publicError) statusJSON() ([]byte, error) {
	if pe.grpc == nil {
		return protojson.Marshal(status.New(codes.Unknown, pe.Message).Proto())
	}
	proto := pe.grpc.Proto()
	proto.Message = pe.Message
	return protojson.Marshal(proto)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, locale string) {
	pe := describeError(err, locale)
	if wantsJSON(r) {
		if body, jsonErr := pe.statusJSON(); jsonErr == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(pe.Status)
			_, _ = w.Write(body)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(pe.Status)
	var body bytes.Buffer
	if renderErr := ErrorFragment(pe).Render(context.Background(), &body); renderErr != nil {
		_, _ = w.Write([]byte(templ.EscapeString(pe.Message)))
		return
	}
	_, _ = w.Write(body.Bytes())
}

// wantsJSON reports whether the first media type the client accepts is JSON.
func wantsJSON(r *http.Request) bool {
	if r == nil {
		return false
	}
	accept := strings.TrimSpace(r.Header.Get("Accept"))
	if accept == "" {
		return false
	}
	first, _, _ := strings.Cut(accept, ",")
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(first))
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

func grpcHTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
