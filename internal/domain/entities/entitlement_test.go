package entities

import (
	"encoding/json"
	"testing"
)

func TestPaymentStatusIsTerminal(t *testing.T) {
	terminal := []PaymentStatus{PaymentStatusFinished, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusExpired}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	inFlight := []PaymentStatus{PaymentStatusWaiting, PaymentStatusConfirming, PaymentStatusConfirmed, PaymentStatusSending, PaymentStatusPartiallyPaid}
	for _, s := range inFlight {
		if s.IsTerminal() {
			t.Fatalf("expected %s not to be terminal", s)
		}
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"pay_amount": 249.75}`, 249.75},
		{"quoted decimal", `{"pay_amount": "249.75"}`, 249.75},
		{"integer", `{"pay_amount": 250}`, 250},
		{"null", `{"pay_amount": null}`, 0},
		{"empty string", `{"pay_amount": ""}`, 0},
		{"absent", `{}`, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n PaymentNotification
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.PayAmount.Float64() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, n.PayAmount.Float64())
			}
		})
	}

	var n PaymentNotification
	if err := json.Unmarshal([]byte(`{"pay_amount": "not-a-number"}`), &n); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

func TestPaymentNotificationDecoding(t *testing.T) {
	raw := `{
		"payment_id": "pp_1",
		"payment_status": "finished",
		"price_amount": "250.0",
		"price_currency": "usd",
		"pay_amount": 249.91,
		"actually_paid": 249.91,
		"pay_currency": "usdt",
		"order_id": "u1_p1_1700000000000"
	}`
	var n PaymentNotification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.PaymentID != "pp_1" || n.PaymentStatus != "finished" || n.OrderID != "u1_p1_1700000000000" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.PriceAmount.Float64() != 250.0 || n.ActuallyPaid.Float64() != 249.91 {
		t.Fatalf("unexpected amounts: %+v", n)
	}
}
