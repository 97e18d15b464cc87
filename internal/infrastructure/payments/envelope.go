package payments

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"painel_master/internal/domain/entities"
)

// The PIX webhooks sit behind an automation tool that wraps its output in
// arrays and "data" envelopes depending on the flow. The helpers below accept
// every shape observed in practice.

func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// firstElement returns doc[0] when doc is a non-empty array.
func firstElement(doc any) (any, bool) {
	arr, ok := doc.([]any)
	if !ok || len(arr) == 0 || arr[0] == nil {
		return nil, false
	}
	return arr[0], true
}

// peelData replaces m with m["data"] when that is a non-empty object.
func peelData(m map[string]any) map[string]any {
	inner, ok := m["data"].(map[string]any)
	if !ok || len(inner) == 0 {
		return m
	}
	return inner
}

// unwrapEnvelope normalizes a charge response: an outer one-element array is
// dropped, then up to two "data" levels.
func unwrapEnvelope(doc any) map[string]any {
	if el, ok := firstElement(doc); ok {
		doc = el
	}
	m, _ := doc.(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return peelData(peelData(m))
}

// unwrapCheck normalizes a verification response. Only array responses are
// unwrapped, and only a single "data" level.
func unwrapCheck(doc any) map[string]any {
	if el, ok := firstElement(doc); ok {
		m, _ := el.(map[string]any)
		if m == nil {
			return map[string]any{}
		}
		return peelData(m)
	}
	m, _ := doc.(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

// paidTransactionItems reads doc[0].data.transactions. Any other shape means
// no transactions.
func paidTransactionItems(doc any) []map[string]any {
	el, ok := firstElement(doc)
	if !ok {
		return nil
	}
	m, _ := el.(map[string]any)
	data, _ := m["data"].(map[string]any)
	list, _ := data["transactions"].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, it := range list {
		if t, ok := it.(map[string]any); ok {
			out = append(out, t)
		}
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// firstString returns the first key with a non-empty value.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := stringify(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func number(m map[string]any, key string) float64 {
	switch t := m[key].(type) {
	case json.Number:
		f, _ := t.Float64()
		return f
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	}
	return 0
}

func userName(m map[string]any) string {
	u, _ := m["user"].(map[string]any)
	if name := stringify(u["name"]); name != "" {
		return name
	}
	return "-"
}

func chargeFromDocument(m map[string]any) entities.PixCharge {
	return entities.PixCharge{
		QRImage:       firstString(m, "qr_code", "qr_code_imagem", "qrCode"),
		ChargeID:      stringify(m["id"]),
		ExternalTxID:  firstString(m, "depix_transaction_id", "transaction_id"),
		CopyPasteCode: firstString(m, "pix", "pix_copia_cola", "copiaCola"),
		ExpiresAt:     stringify(m["qr_code_expires_at"]),
	}
}

func transactionFromDocument(m map[string]any) entities.PaidTransaction {
	return entities.PaidTransaction{
		ID:           stringify(m["id"]),
		ClientName:   userName(m),
		GrossAmount:  number(m, "amount"),
		NetAmount:    number(m, "net_amount"),
		Commission:   number(m, "commission_amount"),
		Status:       stringify(m["status"]),
		CreatedAt:    stringify(m["created_at"]),
		PaidAt:       stringify(m["updated_at"]),
		ExternalTxID: stringify(m["depix_transaction_id"]),
	}
}

func checkFromDocument(m map[string]any) entities.TransactionCheck {
	return entities.TransactionCheck{
		ID:         stringify(m["id"]),
		Status:     stringify(m["status"]),
		Amount:     number(m, "amount"),
		ClientName: userName(m),
	}
}
