package utils

import (
	"testing"

	"teamboard/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestNormalizeRef(t *testing.T) {
	if got := NormalizeRef("project", ""); got != nil {
		t.Fatalf("empty ref = %v, want nil", got)
	}
	if got := NormalizeRef("project", "mock-id-from-ui"); got != nil {
		t.Fatalf("malformed ref = %v, want nil", got)
	}

	valid := uuid.NewString()
	got := NormalizeRef("project", valid)
	if got == nil || *got != valid {
		t.Fatalf("valid ref = %v, want %q", got, valid)
	}
}

func TestFilterRefs(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	got := FilterRefs("assignee", []string{a, "nope", b, ""})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("filtered = %v", got)
	}

	if got := FilterRefs("assignee", nil); len(got) != 0 {
		t.Fatalf("nil input = %v, want empty", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Em Teste":           "em-teste",
		"  Backlog  ":        "backlog",
		"Q&A / Review!":      "q-a-review",
		"em-desenvolvimento": "em-desenvolvimento",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pass1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("pass1234", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestGenerateJWTCarriesIdentity(t *testing.T) {
	user := models.User{ID: uuid.NewString(), Email: "a@x.com", Role: "manager"}
	signed, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID || claims["email"] != user.Email || claims["role"] != user.Role {
		t.Fatalf("claims = %v", claims)
	}
	if claims["exp"] == nil {
		t.Fatalf("missing expiry")
	}
}
