package docs_test

import (
	"encoding/json"
	"testing"

	"frontdesk/docs"

	"github.com/swaggo/swag"
)

func TestSwaggerDocCoversRoutes(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("failed to read swagger doc: %v", err)
	}

	var spec struct {
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}

	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}

	if len(spec.Paths) == 0 {
		t.Fatal("swagger doc has no paths")
	}

	routes := []string{
		"/v1/rooms",
		"/v1/rooms/{id}",
		"/v1/rooms/{id}/status",
		"/v1/bookings",
		"/v1/bookings/upcoming",
		"/v1/bookings/{id}",
		"/v1/cancel/{id}",
		"/v1/guests",
		"/v1/customers/checked-in",
		"/v1/checkin",
		"/v1/checkout",
		"/v1/expenses",
		"/v1/expenses/{id}",
		"/v1/incomes",
		"/v1/incomes/{id}",
		"/v1/financial-summary",
		"/v1/reports/daily",
		"/v1/reports/monthly",
		"/v1/reports/comparison",
	}

	for _, route := range routes {
		if _, ok := spec.Paths[route]; !ok {
			t.Errorf("swagger doc is missing path %s", route)
		}
	}

	for _, definition := range []string{"response.Message", "response.Error", "dto.CheckoutResponse"} {
		if _, ok := spec.Definitions[definition]; !ok {
			t.Errorf("swagger doc is missing definition %s", definition)
		}
	}
}
