package domain

import (
	"encoding/json"
	"testing"
)

func TestNumericCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "plain number", in: `10`, want: 10},
		{name: "decimal number", in: `5.25`, want: 5.25},
		{name: "numeric string", in: `"20.00"`, want: 20},
		{name: "padded numeric string", in: `" 7 "`, want: 7},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, want: 0},
		{name: "null", in: `null`, want: 0},
		{name: "negative", in: `-3.5`, want: -3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(n) != tt.want {
				t.Errorf("got %v, want %v", float64(n), tt.want)
			}
		})
	}
}

func TestNumericCoercionInsideLineItem(t *testing.T) {
	payload := `{"productName":"Paracetamol","quantity":"12","price":"not a number"}`

	var it LineItem
	if err := json.Unmarshal([]byte(payload), &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if float64(it.Quantity) != 12 {
		t.Errorf("quantity: got %v, want 12", float64(it.Quantity))
	}
	if float64(it.Price) != 0 {
		t.Errorf("price: got %v, want 0", float64(it.Price))
	}
	if it.Amount() != 0 {
		t.Errorf("amount: got %v, want 0", it.Amount())
	}
}

func TestDerivedTotals(t *testing.T) {
	rec := InvoiceRecord{
		FreightValue:   50,
		InsuranceValue: 10,
		Items: []LineItem{
			{ProductName: "Item A", Quantity: 10, Price: 5},
			{ProductName: "Item B", Quantity: 3, Price: 20},
		},
	}

	if got := rec.TotalQuantity(); got != 13 {
		t.Errorf("TotalQuantity: got %v, want 13", got)
	}
	if got := rec.TotalAmount(); got != 110 {
		t.Errorf("TotalAmount: got %v, want 110", got)
	}
	if got := rec.FOBValue(); got != 50 {
		t.Errorf("FOBValue: got %v, want 50", got)
	}
}

func TestFOBValueWithoutFreightOrInsurance(t *testing.T) {
	rec := InvoiceRecord{
		Items: []LineItem{{Quantity: 2, Price: 30}},
	}
	if got := rec.FOBValue(); got != 60 {
		t.Errorf("FOBValue: got %v, want 60", got)
	}
}

func TestIGSTPaid(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "IGST PAID", want: true},
		{status: "paid", want: true},
		{status: "With Payment of Tax - Paid", want: true},
		{status: "NOT APPLICABLE", want: false},
		{status: "LUT", want: false},
		{status: "", want: false},
	}

	for _, tt := range tests {
		rec := InvoiceRecord{GSTStatus: tt.status}
		if got := rec.IGSTPaid(); got != tt.want {
			t.Errorf("IGSTPaid(%q): got %v, want %v", tt.status, got, tt.want)
		}
	}
}
