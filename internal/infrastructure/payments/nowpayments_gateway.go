package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"konkred_vault/internal/domain/entities"
)

var ErrMissingNOWPaymentsAPIKey = errors.New("missing NOWPAYMENTS_API_KEY")
var ErrMissingNOWPaymentsIPNSecret = errors.New("missing NOWPAYMENTS_IPN_SECRET")

const defaultBaseURL = "https://api.nowpayments.io"

// A slow processor call should fail the checkout attempt, not hang it.
const defaultRequestTimeout = 10 * time.Second

// NOWPaymentsGateway talks to the NOWPayments REST API. NOWPayments ships no
// Go SDK, so this is a plain HTTP client with a bounded timeout.

type NOWPaymentsGateway struct {
	apiKey    string
	ipnSecret string
	baseURL   string
	client    *http.Client
	mockMode  bool
}

func NewNOWPaymentsGateway(apiKey, ipnSecret string) (*NOWPaymentsGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &NOWPaymentsGateway{ipnSecret: ipnSecret, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[payment][gateway] missing NOWPAYMENTS_API_KEY")
		return nil, ErrMissingNOWPaymentsAPIKey
	}
	if ipnSecret == "" {
		log.Printf("[payment][gateway] missing NOWPAYMENTS_IPN_SECRET")
		return nil, ErrMissingNOWPaymentsIPNSecret
	}

	baseURL := strings.TrimRight(os.Getenv("NOWPAYMENTS_API_URL"), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[payment][gateway] NOWPayments client initialized base_url=%s", baseURL)

	return &NOWPaymentsGateway{
		apiKey:    apiKey,
		ipnSecret: ipnSecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (g *NOWPaymentsGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	if g != nil && g.mockMode {
		id := "np_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success payment_id=%s order_id=%s", id, req.OrderID)
		return entities.PaymentResponse{
			PaymentID:     id,
			PaymentStatus: string(entities.PaymentStatusWaiting),
			PriceAmount:   entities.Amount(req.PriceAmount),
			PriceCurrency: req.PriceCurrency,
			PayCurrency:   req.PayCurrency,
			OrderID:       req.OrderID,
			PurchaseURL:   "https://nowpayments.io/payment/?iid=" + id,
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.PaymentResponse{}, errors.New("nowpayments gateway not configured")
	}

	log.Printf("[payment][gateway] create start order_id=%s price_amount=%.2f %s", req.OrderID, req.PriceAmount, req.PriceCurrency)
	var resp entities.PaymentResponse
	if err := g.do(ctx, http.MethodPost, "/v1/payment", req, &resp); err != nil {
		log.Printf("[payment][gateway] create failed order_id=%s err=%v", req.OrderID, err)
		return entities.PaymentResponse{}, err
	}
	log.Printf("[payment][gateway] create success payment_id=%s status=%s", resp.PaymentID, resp.PaymentStatus)
	return resp, nil
}

// GetPaymentStatus queries the processor's payment-status API. This is the
// out-of-band recovery path when a notification is lost.
func (g *NOWPaymentsGateway) GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentResponse, error) {
	if g != nil && g.mockMode {
		return entities.PaymentResponse{PaymentID: paymentID, PaymentStatus: string(entities.PaymentStatusFinished)}, nil
	}
	if g == nil || g.client == nil {
		return entities.PaymentResponse{}, errors.New("nowpayments gateway not configured")
	}

	var resp entities.PaymentResponse
	if err := g.do(ctx, http.MethodGet, "/v1/payment/"+paymentID, nil, &resp); err != nil {
		log.Printf("[payment][gateway] status query failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentResponse{}, err
	}
	return resp, nil
}

// VerifyIPNSignature checks the HMAC-SHA512 hex digest of the exact raw body
// against the value of the signature header.
func (g *NOWPaymentsGateway) VerifyIPNSignature(rawBody []byte, signature string) bool {
	if g == nil || g.ipnSecret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(g.ipnSecret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil)) == signature
}

func (g *NOWPaymentsGateway) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("nowpayments api error: %d %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "NOWPAYMENTS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
