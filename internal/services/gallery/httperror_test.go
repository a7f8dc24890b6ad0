package gallery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/iconselect/internal/platform/errors"
	"google.golang.org/grpc/codes"
)

func TestDescribeErrorMapsDomainCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
		wantText   string
	}{
		{
			name:       "unknown namespace",
			err:        apperrors.WithMetadata(apperrors.CodeIconNamespaceUnknown, "missing", map[string]string{"Namespace": "material"}),
			wantStatus: http.StatusNotFound,
			wantReason: "ICON_NAMESPACE_UNKNOWN",
			wantText:   `No icon family is registered for namespace "material"`,
		},
		{
			name:       "invalid attribute",
			err:        apperrors.WithMetadata(apperrors.CodeIconAttributeInvalid, "bad", map[string]string{"Attribute": "onclick"}),
			wantStatus: http.StatusBadRequest,
			wantReason: "ICON_ATTRIBUTE_INVALID",
			wantText:   `Attribute "onclick" cannot be forwarded to an icon`,
		},
		{
			name:       "missing registry",
			err:        apperrors.New(apperrors.CodeIconRegistryMissing, "nil"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "ICON_REGISTRY_MISSING",
			wantText:   "Icon registry is not configured",
		},
		{
			name:       "plain error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "UNKNOWN",
			wantText:   "Something went wrong",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := describeError(tc.err, "en-US")
			if got.Status != tc.wantStatus {
				t.Fatalf("Status = %d, want %d", got.Status, tc.wantStatus)
			}
			if got.Reason != tc.wantReason {
				t.Fatalf("Reason = %q, want %q", got.Reason, tc.wantReason)
			}
			if got.Message != tc.wantText {
				t.Fatalf("Message = %q, want %q", got.Message, tc.wantText)
			}
		})
	}
}

func TestDescribeErrorFindsWrappedDomainError(t *testing.T) {
	t.Parallel()

	inner := apperrors.WithMetadata(apperrors.CodeIconNameUnknown, "gone", map[string]string{"Namespace": "brand", "Name": "old"})
	got := describeError(errors.Join(errors.New("render"), inner), "pt-BR")
	if got.Status != http.StatusNotFound {
		t.Fatalf("Status = %d, want %d", got.Status, http.StatusNotFound)
	}
	if !strings.Contains(got.Message, "não existe") {
		t.Fatalf("Message = %q, want pt-BR text", got.Message)
	}
}

func TestDescribeErrorDoesNotLeakInternalMessage(t *testing.T) {
	t.Parallel()

	got := describeError(errors.New("secret path /var/lib/icons"), "en-US")
	if strings.Contains(got.Message, "secret") {
		t.Fatalf("Message leaked internal detail: %q", got.Message)
	}
}

func TestGRPCHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := map[codes.Code]int{
		codes.OK:                 http.StatusOK,
		codes.InvalidArgument:    http.StatusBadRequest,
		codes.NotFound:           http.StatusNotFound,
		codes.Unavailable:        http.StatusServiceUnavailable,
		codes.FailedPrecondition: http.StatusInternalServerError,
		codes.Internal:           http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := grpcHTTPStatus(code); got != want {
			t.Fatalf("grpcHTTPStatus(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                                  false,
		"text/html":                         false,
		"application/json":                  true,
		"application/json; charset=utf-8":   true,
		"text/html, application/json":       false,
		"application/json, text/html;q=0.5": true,
		"not a media type;;":                false,
	}
	for accept, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/icons/x/y", nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		if got := wantsJSON(req); got != want {
			t.Fatalf("wantsJSON(%q) = %t, want %t", accept, got, want)
		}
	}
}

func TestWriteErrorJSONCarriesStatusDetails(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/icons/material/home", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	err := apperrors.WithMetadata(apperrors.CodeIconNamespaceUnknown, "internal detail", map[string]string{"Namespace": "material"})
	writeError(rr, req, err, "en-US")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}

	var body struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Details []map[string]any `json:"details"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != int(codes.NotFound) {
		t.Fatalf("code = %d, want %d", body.Code, codes.NotFound)
	}
	if body.Message != `No icon family is registered for namespace "material"` {
		t.Fatalf("message = %q", body.Message)
	}
	if strings.Contains(rr.Body.String(), "internal detail") {
		t.Fatalf("internal message leaked: %s", rr.Body.String())
	}
	var reason any
	for _, detail := range body.Details {
		if detail["@type"] == "type.googleapis.com/google.rpc.ErrorInfo" {
			reason = detail["reason"]
		}
	}
	if reason != "ICON_NAMESPACE_UNKNOWN" {
		t.Fatalf("ErrorInfo reason = %v, want ICON_NAMESPACE_UNKNOWN", reason)
	}
}

func TestWriteErrorHTMLEscapesMessage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := apperrors.WithMetadata(apperrors.CodeIconNamespaceUnknown, "x", map[string]string{"Namespace": "<script>"})
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), err, "en-US")

	if strings.Contains(rr.Body.String(), "<script>") {
		t.Fatalf("message not escaped: %s", rr.Body.String())
	}
	if !strings.HasPrefix(rr.Body.String(), `<p role="alert" data-reason="ICON_NAMESPACE_UNKNOWN">`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
