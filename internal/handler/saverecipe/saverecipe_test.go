package saverecipe

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
)

func TestSaveRecipe_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "not json",
			body: "recipe",
			want: "Invalid JSON body",
		},
		{
			name: "missing name",
			body: `{"initial_recipe": "Ingredients Required\n..."}`,
			want: "recipe_name and initial_recipe are required",
		},
		{
			name: "missing recipe",
			body: `{"recipe_name": "Garlic Fried Rice"}`,
			want: "recipe_name and initial_recipe are required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			res := httptest.NewRecorder()

			// The store is never reached for malformed requests.
			NewHandler(nil, chefdb.Chef{}).SaveRecipe(res, req)

			require.Equal(t, http.StatusBadRequest, res.Code)
			var errRes httpjson.ErrorResponse
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
			assert.Equal(t, tc.want, errRes.Error)
		})
	}
}
