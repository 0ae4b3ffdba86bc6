// Single-invocation deployment shape: the same submission pipeline as
// cmd/server, framed as an AWS Lambda function behind an HTTP API.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/omkarinteriors/backend/internal/config"
	"github.com/omkarinteriors/backend/internal/ledger"
	"github.com/omkarinteriors/backend/internal/logging"
	"github.com/omkarinteriors/backend/internal/mailer"
	"github.com/omkarinteriors/backend/internal/model"
	"github.com/omkarinteriors/backend/internal/service"
	"github.com/omkarinteriors/backend/internal/validate"
)

type app struct {
	contactService service.ContactService
	production     bool
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	writer, err := ledger.New(context.Background(), cfg)
	if err != nil {
		logging.Fatal("ledger init failed", "error", err)
	}

	a := &app{
		contactService: service.NewContactService(mailer.NewSMTPSender(cfg), writer),
		production:     cfg.Production,
	}
	lambda.Start(a.handleRequest)
}

// failureBody mirrors the server shape's error responses.
type failureBody struct {
	OK     bool               `json:"ok"`
	Errors []model.FieldError `json:"errors,omitempty"`
	Error  string             `json:"error,omitempty"`
	Detail string             `json:"detail,omitempty"`
}

func (a *app) handleRequest(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := req.RequestContext.HTTP.Method

	if req.RawPath == "/api/health" && method == http.MethodGet {
		return respond(http.StatusOK, map[string]any{
			"ok":      true,
			"service": "contact",
			"time":    time.Now().UTC().Format(time.RFC3339),
		}), nil
	}

	if method != http.MethodPost {
		return respond(http.StatusMethodNotAllowed, failureBody{Error: "Method not allowed"}), nil
	}

	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return respond(http.StatusBadRequest, failureBody{
				Errors: []model.FieldError{{Path: "body", Msg: "Invalid JSON body"}},
			}), nil
		}
		body = string(decoded)
	}

	var in validate.Input
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return respond(http.StatusBadRequest, failureBody{
			Errors: []model.FieldError{{Path: "body", Msg: "Invalid JSON body"}},
		}), nil
	}

	inq, errs := validate.Validate(in)
	if len(errs) > 0 {
		return respond(http.StatusBadRequest, failureBody{Errors: errs}), nil
	}

	inq.IP = req.RequestContext.HTTP.SourceIP
	inq.UserAgent = req.Headers["user-agent"]

	if err := a.contactService.Submit(ctx, inq); err != nil {
		resp := failureBody{Error: "Failed to send message"}
		if !a.production {
			resp.Detail = err.Error()
		}
		return respond(http.StatusInternalServerError, resp), nil
	}

	return respond(http.StatusOK, map[string]bool{"ok": true}), nil
}

func respond(status int, body any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}
