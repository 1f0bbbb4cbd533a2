package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims(uid int64) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"uid":   uid,
		"email": "root@example.com",
	}
}

// invoke runs the Require middleware against a request carrying the given
// Authorization header and reports the response code, whether the wrapped
// handler ran, and the admin id it observed.
func invoke(t *testing.T, authHeader string) (code int, handlerRan bool, adminID interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Require(NewTokenAuthenticator(testSecret))(func(c echo.Context) error {
		handlerRan = true
		adminID = c.Get(AdminIDKey)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, handlerRan, adminID
}

func TestTokenAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims(42))

	code, ran, adminID := invoke(t, "Bearer "+token)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !ran {
		t.Fatal("handler did not run")
	}
	id, ok := adminID.(int64)
	if !ok || id != 42 {
		t.Fatalf("expected admin id int64(42), got %#v", adminID)
	}
}

func TestTokenAuth_SchemeIsCaseInsensitive(t *testing.T) {
	token := signToken(t, testSecret, validClaims(7))

	code, ran, _ := invoke(t, "bearer "+token)
	if code != http.StatusOK || !ran {
		t.Fatalf("lowercase scheme should pass, got %d", code)
	}
}

func TestTokenAuth_Rejections(t *testing.T) {
	expired := validClaims(42)
	expired["iat"] = time.Now().Add(-2 * time.Hour).Unix()
	expired["nbf"] = expired["iat"]
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noUID := validClaims(42)
	delete(noUID, "uid")

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + signToken(t, testSecret, validClaims(42))},
		{"no scheme", signToken(t, testSecret, validClaims(42))},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", validClaims(42))},
		{"expired token", "Bearer " + signToken(t, testSecret, expired)},
		{"missing uid claim", "Bearer " + signToken(t, testSecret, noUID)},
	}

	for _, tc := range cases {
		code, ran, _ := invoke(t, tc.header)
		if code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, code)
		}
		if ran {
			t.Fatalf("%s: handler must not run", tc.name)
		}
	}
}

func TestTokenAuth_RejectsUnsignedAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims(42)).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	code, ran, _ := invoke(t, "Bearer "+token)
	if code != http.StatusUnauthorized || ran {
		t.Fatalf("alg=none token must be rejected, got %d", code)
	}
}
