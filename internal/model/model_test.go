package model

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"number", `499.99`, 499.99, false},
		{"integer", `15`, 15, false},
		{"string number", `"499.99"`, 499.99, false},
		{"string integer", `"59"`, 59, false},
		{"negative", `-3.5`, -3.5, false},
		{"not a number", `"abc"`, 0, true},
		{"empty string", `""`, 0, true},
		{"null", `null`, 0, true},
		{"object", `{}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if float64(a) != tt.want {
				t.Fatalf("amount = %v, want %v", float64(a), tt.want)
			}
		})
	}
}

func TestQuantityUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"number", `15`, 15, false},
		{"string number", `"15"`, 15, false},
		{"zero", `0`, 0, false},
		{"float", `1.5`, 0, true},
		{"string float", `"1.5"`, 0, true},
		{"not a number", `"beaucoup"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			err := json.Unmarshal([]byte(tt.input), &q)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if int(q) != tt.want {
				t.Fatalf("quantity = %d, want %d", int(q), tt.want)
			}
		})
	}
}

func TestDocumentJSONKeys(t *testing.T) {
	doc := Document{
		Users:      []User{},
		Products:   []Product{},
		Orders:     []Order{},
		Categories: []Category{},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"users", "products", "orders", "categories", "settings", "analytics"} {
		if _, ok := keys[key]; !ok {
			t.Fatalf("document missing key %q", key)
		}
	}
}

func TestUserLastLoginNullable(t *testing.T) {
	u := User{ID: 1, Username: "jdupont"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["lastLogin"]) != "null" {
		t.Fatalf("lastLogin = %s, want null", raw["lastLogin"])
	}
}

func TestOrderGuestUserID(t *testing.T) {
	o := Order{ID: 1, OrderNumber: "ORD-001"}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["userId"]) != "null" {
		t.Fatalf("userId = %s, want null for guest order", raw["userId"])
	}
}
