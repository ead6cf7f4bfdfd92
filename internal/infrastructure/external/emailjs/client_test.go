package emailjs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/pkg/config"
)

func TestSend_Success(t *testing.T) {
	var got sendRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(&config.EmailJSConfig{
		ServiceID:  "service_x",
		TemplateID: "template_y",
		PublicKey:  "key_z",
		Endpoint:   ts.URL,
	})

	err := client.Send(context.Background(), TemplateParams{
		ToEmail: "ada@example.com",
		Subject: "Follow-up",
		Message: "body",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ServiceID != "service_x" || got.TemplateID != "template_y" || got.UserID != "key_z" {
		t.Fatalf("credentials not forwarded: %+v", got)
	}
	if got.TemplateParams.ToEmail != "ada@example.com" {
		t.Fatalf("to_email = %q", got.TemplateParams.ToEmail)
	}
}

// Every template field must be present on the wire even when unset.
func TestSend_AllTemplateFieldsPresent(t *testing.T) {
	var raw map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			TemplateParams map[string]json.RawMessage `json:"template_params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		raw = payload.TemplateParams
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(&config.EmailJSConfig{Endpoint: ts.URL})
	if err := client.Send(context.Background(), TemplateParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{
		"to_email", "to_name", "from_name", "from_email",
		"subject", "message", "meeting_title", "meeting_date", "recipient_name",
	} {
		if _, ok := raw[field]; !ok {
			t.Fatalf("template field %q missing from payload", field)
		}
	}
}

func TestSend_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("The to_email parameter is required"))
	}))
	defer ts.Close()

	client := NewClient(&config.EmailJSConfig{Endpoint: ts.URL})
	err := client.Send(context.Background(), TemplateParams{})

	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.ErrorCode_DELIVERY_FAILED {
		t.Fatalf("code = %v", appErr.Code)
	}
	if appErr.Details["upstream_status"] != "422" {
		t.Fatalf("upstream status detail = %q", appErr.Details["upstream_status"])
	}
}
