package store

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ayms/backoffice-system/internal/model"
	"github.com/ayms/backoffice-system/internal/storage"
)

func exportDocument(t *testing.T, s *Store) *model.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc model.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	return &doc
}

func importDocument(t *testing.T, s *Store, doc *model.Document) {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}
	if err := s.Import(bytes.NewReader(data)); err != nil {
		t.Fatalf("import: %v", err)
	}
}

func TestExportUsesTwoSpaceIndent(t *testing.T) {
	s := newTestStore(t)

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"users\"") {
		t.Fatalf("export is not indented with two spaces:\n%s", buf.String())
	}
}

func TestExportFilenameIsDated(t *testing.T) {
	s := newTestStore(t)

	name := s.ExportFilename()
	if !strings.HasPrefix(name, "backoffice-data-") || !strings.HasSuffix(name, ".json") {
		t.Fatalf("filename = %q", name)
	}
	if name == "backoffice-data-.json" {
		t.Fatalf("filename missing date stamp")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)

	s.CreateProduct(model.NewProduct{Name: "Veste", Category: "Vêtements", Price: 89.9, Stock: 12})
	userID := int64(1)
	s.CreateOrder(model.NewOrder{
		UserID: &userID, UserName: "Admin System", UserEmail: "admin@backoffice.com",
		Products: []model.OrderItem{
			{ProductID: 1, Name: "Veste", Price: 89.9, Quantity: 2, Subtotal: 179.8},
		},
		TotalAmount: 179.8, Status: model.OrderShipped, PaymentStatus: model.PaymentPaid,
		ShippingAddress: "1 Rue de Test, 75001 Paris", Notes: "livraison rapide",
	})

	var buf bytes.Buffer
	if err := s.Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := exportDocument(t, s)

	other, err := New(storage.NewMemoryBackend())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := other.Import(&buf); err != nil {
		t.Fatalf("import: %v", err)
	}
	got := exportDocument(t, other)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	s := newTestStore(t)
	before := exportDocument(t, s)

	if err := s.Import(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}

	after := exportDocument(t, s)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("malformed import mutated state")
	}
}

func TestImportRejectsMissingCollections(t *testing.T) {
	s := newTestStore(t)
	before := exportDocument(t, s)

	tests := []struct {
		name string
		body string
	}{
		{"missing users", `{"products":[]}`},
		{"missing products", `{"users":[]}`},
		{"array instead of object", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Import(strings.NewReader(tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			after := exportDocument(t, s)
			if !reflect.DeepEqual(before, after) {
				t.Fatalf("rejected import mutated state")
			}
		})
	}
}

func TestImportReplacesWholeDocument(t *testing.T) {
	s := newTestStore(t)
	s.CreateProduct(model.NewProduct{Name: "Stylo", Category: "Livres", Price: 2, Stock: 500})

	body := `{
  "users": [],
  "products": [],
  "orders": [],
  "categories": [],
  "settings": {"siteName": "Importé", "currency": "USD", "dateFormat": "MM/DD/YYYY", "timezone": "UTC", "maintenance": true},
  "analytics": {"totalUsers": 0, "totalProducts": 0, "totalOrders": 0, "totalRevenue": 0, "monthlyGrowth": 0}
}`
	if err := s.Import(strings.NewReader(body)); err != nil {
		t.Fatalf("import: %v", err)
	}

	if got := len(s.GetProducts()); got != 0 {
		t.Fatalf("products = %d, want 0", got)
	}
	if got := s.GetSettings().SiteName; got != "Importé" {
		t.Fatalf("siteName = %q", got)
	}
}
