package listrecipes

import (
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/ShashwatM3/justchefit-pwa/internal/auth"
	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
)

func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *firestore.Client
}

type recipeSnippet struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Stage       chefdb.RecipeStage `json:"step"`
	Gradient    string             `json:"gradient"`
	DateCreated time.Time          `json:"date_created"`
}

type listResponse struct {
	Recipes []recipeSnippet `json:"recipes"`
}

// ListRecipes handles GET /api/recipes, returning the caller's recipes
// newest first. Document IDs encode the creation time, so ordering by ID is
// ordering by creation.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserProfile(ctx)

	docs, err := h.store.Collection("users").Doc(user.UID).Collection("recipes").
		OrderBy(firestore.DocumentID, firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		slog.ErrorContext(ctx, "listrecipes: getting recipes from firestore", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to list recipes")
		return
	}

	snippets := make([]recipeSnippet, len(docs))
	for i, doc := range docs {
		var recipe chefdb.Recipe
		if err := doc.DataTo(&recipe); err != nil {
			slog.ErrorContext(ctx, "listrecipes: unmarshalling recipe", "error", err)
			httpjson.Error(w, http.StatusInternalServerError, "Failed to list recipes")
			return
		}
		snippets[i] = recipeSnippet{
			ID:          doc.Ref.ID,
			Name:        recipe.Name,
			Stage:       recipe.Stage,
			Gradient:    recipe.Gradient,
			DateCreated: recipe.DateCreated,
		}
	}

	httpjson.Write(w, http.StatusOK, listResponse{Recipes: snippets})
}
