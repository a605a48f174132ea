package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse_SuccessFollowsCode(t *testing.T) {
	cases := map[int]bool{
		http.StatusOK:                  true,
		http.StatusCreated:             true,
		299:                            true,
		http.StatusMultipleChoices:     false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
		199:                            false,
	}
	for code, want := range cases {
		resp := NewResponse(code, "", nil)
		assert.Equal(t, code, resp.Code)
		assert.Equal(t, want, resp.Success, "code %d", code)
	}
}

func TestRespond_NullResult(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, http.StatusNotFound, "No show with this id exists", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"success":false,"message":"No show with this id exists","result":null}`, w.Body.String())
}

func TestEpisodeCount_UnmarshalJSON(t *testing.T) {
	valid := map[string]int{
		`3`:     3,
		`"3"`:   3,
		` 42 `:  42,
		`"-1"`:  -1,
		`0`:     0,
		`"220"`: 220,
		`3.0`:   3,
		`1e2`:   100,
	}
	for raw, want := range valid {
		var e episodeCount
		require.NoError(t, json.Unmarshal([]byte(raw), &e), raw)
		assert.Equal(t, episodeCount(want), e, raw)
	}

	for _, raw := range []string{`"three"`, `3.5`, `-0.25`, `1e300`, `true`, `{}`} {
		var e episodeCount
		assert.Error(t, json.Unmarshal([]byte(raw), &e), raw)
	}
}
