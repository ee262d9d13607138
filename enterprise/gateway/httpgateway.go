package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// HTTPGateway is the client side adapter of the Gateway port.
// It speaks the provider's REST dialect: POST /charges to collect,
// POST /charges/:ref/refund to reverse a settled charge.
type HTTPGateway struct {
	// BaseURL points to the provider API root, without a trailing slash.
	BaseURL string
	// Client is the http client used for the provider calls.
	//
	// default: http.DefaultClient
	Client *http.Client
}

type chargeRequest struct {
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
	Card        string `json:"card"`
	Reference   string `json:"reference"`
}

type chargeResponse struct {
	ProviderRef string    `json:"provider_ref"`
	Status      string    `json:"status"`
	ChargedAt   time.Time `json:"charged_at"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// error codes of the provider's REST dialect
const (
	codeCardDeclined      = "card_declined"
	codeInsufficientFunds = "insufficient_funds"
	codeProviderDown      = "provider_unavailable"
	codeUnknownCharge     = "unknown_charge"
	codeMalformedRequest  = "malformed_request"
)

func (gw HTTPGateway) Charge(ctx context.Context, charge Charge) (_ Receipt, rErr error) {
	body, err := json.Marshal(chargeRequest{
		AmountCents: charge.Amount.Cents,
		Currency:    charge.Amount.Currency,
		Card:        charge.Card,
		Reference:   charge.Reference,
	})
	if err != nil {
		return Receipt{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gw.BaseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := gw.client().Do(req)
	if err != nil {
		return Receipt{}, err
	}
	defer errorkit.Finish(&rErr, resp.Body.Close)
	if resp.StatusCode != http.StatusCreated {
		return Receipt{}, decodeProviderError(resp)
	}
	var dto chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return Receipt{}, fmt.Errorf("unexpected charge response: %w", err)
	}
	return Receipt{
		ProviderRef: dto.ProviderRef,
		Status:      dto.Status,
		ChargedAt:   dto.ChargedAt,
	}, nil
}

func (gw HTTPGateway) Refund(ctx context.Context, providerRef string) (rErr error) {
	target := gw.BaseURL + "/charges/" + url.PathEscape(providerRef) + "/refund"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return err
	}
	resp, err := gw.client().Do(req)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, resp.Body.Close)
	if resp.StatusCode != http.StatusNoContent {
		return decodeProviderError(resp)
	}
	return nil
}

func (gw HTTPGateway) client() *http.Client {
	if gw.Client != nil {
		return gw.Client
	}
	return http.DefaultClient
}

// decodeProviderError maps the provider's error payload to a domain error.
// An answer that doesn't follow the error dialect counts as an outage.
func decodeProviderError(resp *http.Response) error {
	var dto errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil || dto.Error.Code == "" {
		return ErrProviderDown.F("unexpected provider answer: %s", resp.Status)
	}
	switch dto.Error.Code {
	case codeCardDeclined:
		return ErrCardDeclined.F("%s", dto.Error.Message)
	case codeInsufficientFunds:
		return ErrInsufficientFunds.F("%s", dto.Error.Message)
	case codeUnknownCharge:
		return ErrUnknownCharge.F("%s", dto.Error.Message)
	case codeProviderDown:
		return ErrProviderDown.F("%s", dto.Error.Message)
	default:
		return fmt.Errorf("provider error %s: %s", dto.Error.Code, dto.Error.Message)
	}
}
