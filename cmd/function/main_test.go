package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/omkarinteriors/backend/internal/model"
)

type stubContactService struct {
	submitFunc func(ctx context.Context, inq model.Inquiry) error
}

func (s *stubContactService) Submit(ctx context.Context, inq model.Inquiry) error {
	if s.submitFunc != nil {
		return s.submitFunc(ctx, inq)
	}
	return nil
}

func contactEvent(method, body string) events.APIGatewayV2HTTPRequest {
	req := events.APIGatewayV2HTTPRequest{
		RawPath: "/api/contact",
		Body:    body,
		Headers: map[string]string{"user-agent": "Mozilla/5.0"},
	}
	req.RequestContext.HTTP.Method = method
	req.RequestContext.HTTP.SourceIP = "203.0.113.7"
	return req
}

func TestHandleRequest_MethodNotAllowed(t *testing.T) {
	a := &app{contactService: &stubContactService{}}

	resp, err := a.handleRequest(context.Background(), contactEvent(http.MethodGet, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestHandleRequest_ValidationFailure(t *testing.T) {
	a := &app{contactService: &stubContactService{}}

	resp, err := a.handleRequest(context.Background(),
		contactEvent(http.MethodPost, `{"name":"a","email":"bad","message":"hi"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	var body failureBody
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %v", body.Errors)
	}
}

func TestHandleRequest_SuccessCarriesMetadata(t *testing.T) {
	var captured *model.Inquiry
	a := &app{contactService: &stubContactService{
		submitFunc: func(ctx context.Context, inq model.Inquiry) error {
			captured = &inq
			return nil
		},
	}}

	resp, err := a.handleRequest(context.Background(),
		contactEvent(http.MethodPost, `{"name":"Jane Doe","email":"jane@example.com","message":"Interested in a consult"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", resp.StatusCode, resp.Body)
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.IP != "203.0.113.7" || captured.UserAgent != "Mozilla/5.0" {
		t.Errorf("expected request metadata on the inquiry, got ip=%q ua=%q", captured.IP, captured.UserAgent)
	}
}

func TestHandleRequest_Base64Body(t *testing.T) {
	var captured *model.Inquiry
	a := &app{contactService: &stubContactService{
		submitFunc: func(ctx context.Context, inq model.Inquiry) error {
			captured = &inq
			return nil
		},
	}}

	plain := `{"name":"Jane Doe","email":"jane@example.com","message":"Interested in a consult"}`
	req := contactEvent(http.MethodPost, base64.StdEncoding.EncodeToString([]byte(plain)))
	req.IsBase64Encoded = true

	resp, err := a.handleRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", resp.StatusCode, resp.Body)
	}
	if captured == nil || captured.Name != "Jane Doe" {
		t.Errorf("expected decoded submission, got %+v", captured)
	}
}

func TestHandleRequest_InvalidBase64Body(t *testing.T) {
	a := &app{contactService: &stubContactService{}}

	req := contactEvent(http.MethodPost, "%%not-base64%%")
	req.IsBase64Encoded = true

	resp, err := a.handleRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleRequest_DeliveryFailureHidesDetailInProduction(t *testing.T) {
	a := &app{
		contactService: &stubContactService{
			submitFunc: func(ctx context.Context, inq model.Inquiry) error {
				return errors.New("relay unreachable")
			},
		},
		production: true,
	}

	resp, err := a.handleRequest(context.Background(),
		contactEvent(http.MethodPost, `{"name":"Jane Doe","email":"jane@example.com","message":"Interested in a consult"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var body failureBody
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Detail != "" {
		t.Errorf("detail must be hidden in production, got %q", body.Detail)
	}
}

func TestHandleRequest_Health(t *testing.T) {
	a := &app{contactService: &stubContactService{}}

	req := events.APIGatewayV2HTTPRequest{RawPath: "/api/health"}
	req.RequestContext.HTTP.Method = http.MethodGet

	resp, err := a.handleRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["service"] != "contact" {
		t.Errorf("expected service=contact, got %v", body["service"])
	}
}
