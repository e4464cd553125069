package getrecipe

import (
	"log/slog"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

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

type getResponse struct {
	RecipeID string        `json:"recipe_id"`
	Recipe   chefdb.Recipe `json:"recipe"`
}

// GetRecipe handles GET /api/recipes/{recipeID}.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserProfile(ctx)
	recipeID := chi.URLParam(r, "recipeID")

	snap, err := h.store.Collection("users").Doc(user.UID).Collection("recipes").Doc(recipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			httpjson.Error(w, http.StatusNotFound, "Recipe not found")
			return
		}
		slog.ErrorContext(ctx, "getrecipe: getting recipe from firestore", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load recipe")
		return
	}

	var recipe chefdb.Recipe
	if err := snap.DataTo(&recipe); err != nil {
		slog.ErrorContext(ctx, "getrecipe: unmarshalling recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load recipe")
		return
	}

	httpjson.Write(w, http.StatusOK, getResponse{
		RecipeID: snap.Ref.ID,
		Recipe:   recipe,
	})
}
