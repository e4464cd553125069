package saverecipe

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ShashwatM3/justchefit-pwa/internal/auth"
	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/gradient"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
)

const maxCreateAttempts = 5

// NewHandler returns a Handler that stamps new recipes with the given
// assistant persona.
func NewHandler(store *firestore.Client, chef chefdb.Chef) *Handler {
	return &Handler{
		store: store,
		chef:  chef,
	}
}

// Handler persists extracted recipes under the authenticated user.
type Handler struct {
	store *firestore.Client
	chef  chefdb.Chef
}

type saveRequest struct {
	RecipeName     string `json:"recipe_name"`
	InitialRecipe  string `json:"initial_recipe"`
	AdditionalInfo string `json:"additional_info"`
}

type saveResponse struct {
	RecipeID string        `json:"recipe_id"`
	Recipe   chefdb.Recipe `json:"recipe"`
}

// SaveRecipe handles POST /api/recipes.
func (h *Handler) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserProfile(ctx)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.RecipeName == "" || req.InitialRecipe == "" {
		httpjson.Error(w, http.StatusBadRequest, "recipe_name and initial_recipe are required")
		return
	}

	createdAt := time.Now()
	recipe := chefdb.Recipe{
		Name:           req.RecipeName,
		DateCreated:    createdAt,
		Chef:           h.chef,
		Stage:          chefdb.RecipeStageOnboard,
		Gradient:       gradient.New(),
		InitialRecipe:  req.InitialRecipe,
		AdditionalInfo: req.AdditionalInfo,
	}

	recipes := h.store.Collection("users").Doc(user.UID).Collection("recipes")
	var recipeID string
	for attempt := 0; ; attempt++ {
		// The document ID encodes the creation millisecond, so two
		// submissions in the same millisecond collide. Create never
		// overwrites; bump the timestamp and retry instead.
		recipeID = chefdb.RecipeID(createdAt.Add(time.Duration(attempt) * time.Millisecond))
		_, err := recipes.Doc(recipeID).Create(ctx, recipe)
		if err == nil {
			break
		}
		if status.Code(err) == codes.AlreadyExists && attempt < maxCreateAttempts {
			continue
		}
		slog.ErrorContext(ctx, "saverecipe: creating recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to save recipe")
		return
	}

	httpjson.Write(w, http.StatusCreated, saveResponse{
		RecipeID: recipeID,
		Recipe:   recipe,
	})
}
