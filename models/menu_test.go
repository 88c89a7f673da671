package models

import "testing"

func TestMenuItemResolveImageURL(t *testing.T) {
	path := "menu/margherita.png"

	tests := []struct {
		name  string
		image *string
		want  string
	}{
		{"with image", &path, "http://localhost:8082/uploads/menu/margherita.png"},
		{"no image", nil, ""},
	}

	for _, tt := range tests {
		m := MenuItem{Image: tt.image}
		m.ResolveImageURL("http://localhost:8082")
		if tt.want == "" {
			if m.ImageURL != nil {
				t.Errorf("%s: expected nil image url, got %q", tt.name, *m.ImageURL)
			}
			continue
		}
		if m.ImageURL == nil || *m.ImageURL != tt.want {
			t.Errorf("%s: got %v, want %q", tt.name, m.ImageURL, tt.want)
		}
	}
}
