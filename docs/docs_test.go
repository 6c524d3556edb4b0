package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("failed to read doc: %v", err)
	}

	var parsed struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("rendered doc is not valid json: %v", err)
	}

	for _, path := range []string{"/events", "/events/{id}", "/health"} {
		if _, ok := parsed.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
	if len(parsed.Paths["/events/{id}"]) != 3 {
		t.Errorf("expected get/put/delete on /events/{id}, got %v", parsed.Paths["/events/{id}"])
	}
}
