package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUserJSONNeverContainsPassword(t *testing.T) {
	u := User{
		ID:        1,
		Username:  "alice",
		Email:     "a@x.com",
		Password:  "$argon2id$v=19$m=65536,t=1,p=4$secret123",
		Role:      "customer",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}

	s := string(out)
	if strings.Contains(s, "password") || strings.Contains(s, "secret123") {
		t.Errorf("serialized user leaks password: %s", s)
	}
	for _, want := range []string{`"id":1`, `"username":"alice"`, `"email":"a@x.com"`} {
		if !strings.Contains(s, want) {
			t.Errorf("serialized user missing %s: %s", want, s)
		}
	}
}
