package entities

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw      string
		category StatusCategory
		label    string
		severity Severity
	}{
		{"Paid", StatusPaid, "PAGO", SeveritySuccess},
		{"approved", StatusPaid, "PAGO", SeveritySuccess},
		{"CONFIRMED", StatusPaid, "PAGO", SeveritySuccess},
		{"WAITING", StatusPending, "PENDENTE", SeverityWarning},
		{"pending", StatusPending, "PENDENTE", SeverityWarning},
		{"expired", StatusExpired, "EXPIRADO", SeverityDanger},
		{"Cancelled", StatusExpired, "EXPIRADO", SeverityDanger},
		{"canceled", StatusExpired, "EXPIRADO", SeverityDanger},
		{"weird", StatusUnknown, "WEIRD", SeverityDefault},
		{"", StatusUnknown, "-", SeverityDefault},
	}
	for _, tc := range cases {
		got := NormalizeStatus(tc.raw)
		if got.Category != tc.category || got.Label != tc.label || got.Severity != tc.severity {
			t.Fatalf("NormalizeStatus(%q) = %+v", tc.raw, got)
		}
	}
}

func TestPaidTransaction_Received(t *testing.T) {
	if got := (PaidTransaction{GrossAmount: 10, NetAmount: 9.5}).Received(); got != 9.5 {
		t.Fatalf("expected net amount, got %v", got)
	}
	if got := (PaidTransaction{GrossAmount: 10}).Received(); got != 10 {
		t.Fatalf("expected gross fallback, got %v", got)
	}
}

func TestPixLog_IsPaid(t *testing.T) {
	if !(PixLog{Status: "paid"}).IsPaid() {
		t.Fatalf("expected paid")
	}
	if (PixLog{Status: PixLogStatusPending}).IsPaid() {
		t.Fatalf("expected not paid")
	}
}
