package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Errors(zap.NewNop()))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrors_RendersKind(t *testing.T) {
	r := newEngine()
	r.GET("/x", func(c *gin.Context) { Fail(c, apperr.Conflict("email", "email already exists")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, 409, body.Error.Status)
	assert.Equal(t, "email", body.Error.Field)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestErrors_HidesInternalCause(t *testing.T) {
	r := newEngine()
	r.GET("/x", func(c *gin.Context) { Fail(c, errors.New("SELECT * FROM customer exploded")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "SELECT")
	assert.Equal(t, "internal server error", decode(t, w).Error.Message)
}

func TestBind_IsValidation(t *testing.T) {
	r := newEngine()
	r.POST("/x", func(c *gin.Context) {
		var in struct {
			Name string `json:"name" binding:"required"`
		}
		if err := Bind(c, &in); err != nil {
			Fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParams(t *testing.T) {
	r := newEngine()
	r.GET("/items/:id", func(c *gin.Context) {
		id, err := IDParam(c, "id")
		if err != nil {
			Fail(c, err)
			return
		}
		p := PageQuery(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "page": p.Number, "limit": p.Limit, "all": BoolQuery(c, "all_words")})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/12?page=0&all_words=on", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":12,"page":1,"limit":20,"all":true}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/3?page=-5&limit=abc", nil))
	assert.JSONEq(t, `{"id":3,"page":1,"limit":20,"all":false}`, w.Body.String())

	// leading zeros are decimal, not octal
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/010?page=010&limit=08", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":10,"page":10,"limit":8,"all":false}`, w.Body.String())

	for _, bad := range []string{"0x2", "2.0", "1e3", "0", "-3", "+4", "0b11"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", bad)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/5?page=0x3&limit=0x10", nil))
	assert.JSONEq(t, `{"id":5,"page":1,"limit":20,"all":false}`, w.Body.String())
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"007", 7, true},
		{"000", 0, true},
		{"-12", -12, true},
		{"-", 0, false},
		{"", 0, false},
		{"0x1F", 0, false},
		{"12abc", 0, false},
	}
	for _, tt := range tests {
		got, err := parseDecimal(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
