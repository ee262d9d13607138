package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
)

// Test card suffixes the sandbox reacts to, in the manner of the test card
// lists that real providers publish. Any other card charges successfully.
const (
	SuffixDeclined          = "0002"
	SuffixInsufficientFunds = "9995"
	SuffixProviderOutage    = "0503"
)

// Sandbox is a simulated payment provider speaking the same REST dialect
// HTTPGateway expects. Outcomes are deterministic: the last four digits of
// the card number steer the answer, and provider references are sequential.
// Serve it with httptest.NewServer to get a provider to integrate against.
type Sandbox struct {
	router *httprouter.Router

	// Now is the provider's clock, it can be fixed for reproducible receipts.
	//
	// default: time.Now
	Now func() time.Time

	mutex    sync.Mutex
	serial   int
	charges  map[string]Charge
	refunded map[string]struct{}
}

// NewSandbox sets up the simulated provider with its routes.
func NewSandbox() *Sandbox {
	sb := &Sandbox{
		charges:  make(map[string]Charge),
		refunded: make(map[string]struct{}),
	}
	router := httprouter.New()
	router.POST("/charges", sb.charge)
	router.POST("/charges/:ref/refund", sb.refund)
	sb.router = router
	return sb
}

func (sb *Sandbox) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sb.router.ServeHTTP(w, r)
}

// Refunded tells whether the charge behind the provider reference
// has been reversed already.
func (sb *Sandbox) Refunded(providerRef string) bool {
	sb.mutex.Lock()
	defer sb.mutex.Unlock()
	_, ok := sb.refunded[providerRef]
	return ok
}

func (sb *Sandbox) charge(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var dto chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeProviderError(w, http.StatusBadRequest, codeMalformedRequest, err.Error())
		return
	}
	switch suffix := cardSuffix(dto.Card); suffix {
	case SuffixDeclined:
		writeProviderError(w, http.StatusPaymentRequired, codeCardDeclined,
			fmt.Sprintf("card ending in %s was declined", suffix))
		return
	case SuffixInsufficientFunds:
		writeProviderError(w, http.StatusPaymentRequired, codeInsufficientFunds,
			fmt.Sprintf("card ending in %s has insufficient funds", suffix))
		return
	case SuffixProviderOutage:
		writeProviderError(w, http.StatusServiceUnavailable, codeProviderDown,
			"provider is down for maintenance")
		return
	}
	sb.mutex.Lock()
	sb.serial++
	ref := fmt.Sprintf("pay-%04d", sb.serial)
	sb.charges[ref] = Charge{
		Amount:    Money{Cents: dto.AmountCents, Currency: dto.Currency},
		Card:      dto.Card,
		Reference: dto.Reference,
	}
	sb.mutex.Unlock()
	writeJSON(w, http.StatusCreated, chargeResponse{
		ProviderRef: ref,
		Status:      StatusSucceeded,
		ChargedAt:   sb.now(),
	})
}

func (sb *Sandbox) refund(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	ref := params.ByName("ref")
	sb.mutex.Lock()
	_, known := sb.charges[ref]
	if known {
		sb.refunded[ref] = struct{}{}
	}
	sb.mutex.Unlock()
	if !known {
		writeProviderError(w, http.StatusNotFound, codeUnknownCharge,
			fmt.Sprintf("no charge with reference %q", ref))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (sb *Sandbox) now() time.Time {
	if sb.Now != nil {
		return sb.Now()
	}
	return time.Now().UTC()
}

func cardSuffix(card string) string {
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProviderError(w http.ResponseWriter, status int, code, message string) {
	var dto errorResponse
	dto.Error.Code = code
	dto.Error.Message = message
	writeJSON(w, status, dto)
}
