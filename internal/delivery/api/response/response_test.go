package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_KeepsDetailsForClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusConflict, "CONFLICT", "Conflict", "order already shipped"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errInfo["code"])
	assert.Equal(t, "order already shipped", errInfo["details"])
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusBadGateway} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "ERR", "message", "internal detail"))

		errInfo := decodeBody(t, rec)["error"].(map[string]any)
		assert.NotContains(t, errInfo, "details", "status %d", status)
	}
}

func TestPage_RendersPagingMeta(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Page(c, []string{"a"}, PageInfo{Page: 2, PageSize: 20, Total: 21}))

	meta := decodeBody(t, rec)["meta"].(map[string]any)
	page := meta["page"].(map[string]any)
	assert.InDelta(t, 2, page["page"], 0)
	assert.InDelta(t, 20, page["page_size"], 0)
	assert.InDelta(t, 21, page["total"], 0)
}
