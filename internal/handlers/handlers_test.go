package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation runs before any persistence call, so rejection paths are
// exercised against handlers with no live collection.

func postJSON(t *testing.T, h http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestContactCreate_Validation(t *testing.T) {
	h := &ContactHandler{}

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "empty payload", payload: map[string]string{}},
		{name: "missing email", payload: map[string]string{"name": "Alice", "phone": "555-0100"}},
		{name: "bad email", payload: map[string]string{"name": "Alice", "email": "nope", "phone": "555-0100"}},
		{name: "missing phone", payload: map[string]string{"name": "Alice", "email": "a@test.test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Create, "/api/contact", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMembershipCreate_Validation(t *testing.T) {
	h := &MembershipHandler{}

	valid := map[string]string{
		"billingPeriodMonth": "1",
		"cost":               "120",
		"name":               "Standard",
		"numberOfDaysInWeek": "2",
		"stripePriceId":      "price_123",
		"type":               "monthly",
		"unit":               "month",
	}

	t.Run("non-numeric cost", func(t *testing.T) {
		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["cost"] = "a lot"
		rec := postJSON(t, h.Create, "/api/membership", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	for field := range valid {
		t.Run("missing "+field, func(t *testing.T) {
			payload := map[string]string{}
			for k, v := range valid {
				if k != field {
					payload[k] = v
				}
			}
			rec := postJSON(t, h.Create, "/api/membership", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTestimonialCreate_Validation(t *testing.T) {
	h := &TestimonialHandler{}

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{name: "missing name", payload: map[string]interface{}{"rating": 4, "testimonial": "great"}},
		{name: "rating too low", payload: map[string]interface{}{"name": "Sam", "rating": 0, "testimonial": "great"}},
		{name: "rating too high", payload: map[string]interface{}{"name": "Sam", "rating": 6, "testimonial": "great"}},
		{name: "missing text", payload: map[string]interface{}{"name": "Sam", "rating": 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Create, "/api/testimonials", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLocationCreate_Validation(t *testing.T) {
	h := &LocationHandler{}

	rec := postJSON(t, h.Create, "/api/locations", map[string]string{"fullName": "Main Campus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollmentCreate_Validation(t *testing.T) {
	h := &EnrollmentHandler{}

	t.Run("missing course name", func(t *testing.T) {
		rec := postJSON(t, h.Create, "/api/enrollment", map[string]interface{}{
			"membership": map[string]string{"membershipId": "64f000000000000000000001"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing membership reference", func(t *testing.T) {
		rec := postJSON(t, h.Create, "/api/enrollment", map[string]interface{}{
			"courseName": "Chess Basics",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegister_DisabledByDefault(t *testing.T) {
	h := &AuthHandler{allowRegister: false}

	rec := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email":    "new@test.test",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogin_MissingCredentials(t *testing.T) {
	h := &AuthHandler{}

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "no email", payload: map[string]string{"password": "pwd"}},
		{name: "no password", payload: map[string]string{"email": "a@test.test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Login, "/api/auth/login", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := &AuthHandler{}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		c := cookies[0]
		assert.Equal(t, "token", c.Name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, "/", c.Path)
	}

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Logged out", body["message"])
}

func TestProgramCreate_RejectsBadEmbeddedJSON(t *testing.T) {
	h := &ProgramHandler{}

	req := multipartRequest(t, "/api/program", map[string]string{
		"pk":         "PROG_CODING",
		"courseName": "Intro to Go",
		"ageRange":   "8-12",
		"location":   "{not json",
	})

	rec := httptest.NewRecorder()
	h.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgramCreate_RejectsBadPK(t *testing.T) {
	h := &ProgramHandler{}

	req := multipartRequest(t, "/api/program", map[string]string{
		"pk":         "PROG_MUSIC",
		"courseName": "Piano",
		"ageRange":   "8-12",
	})

	rec := httptest.NewRecorder()
	h.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeacherCreate_Validation(t *testing.T) {
	h := &TeacherHandler{}

	req := multipartRequest(t, "/api/teacher", map[string]string{"name": "Ms. Reed"})

	rec := httptest.NewRecorder()
	h.Create(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
