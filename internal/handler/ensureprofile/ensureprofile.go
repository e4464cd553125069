package ensureprofile

import (
	"log/slog"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ShashwatM3/justchefit-pwa/internal/auth"
	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
)

// NewHandler returns a Handler.
func NewHandler(store *firestore.Client) *Handler {
	return &Handler{
		store: store,
	}
}

// Handler creates the user profile document on first sign-in.
type Handler struct {
	store *firestore.Client
}

// EnsureProfile handles POST /api/profile. The profile is created at most
// once per uid; existing fields are never overwritten on later sign-ins.
func (h *Handler) EnsureProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := auth.UserProfile(ctx)

	doc := h.store.Collection("users").Doc(user.UID)
	snap, err := doc.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		slog.ErrorContext(ctx, "ensureprofile: getting profile", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	if snap != nil && snap.Exists() {
		var profile chefdb.UserProfile
		if err := snap.DataTo(&profile); err != nil {
			slog.ErrorContext(ctx, "ensureprofile: unmarshalling profile", "error", err)
			httpjson.Error(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}
		httpjson.Write(w, http.StatusOK, profile)
		return
	}

	profile := chefdb.UserProfile{
		UID:        user.UID,
		Name:       user.Name,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
	}
	if _, err := doc.Set(ctx, profile, firestore.MergeAll); err != nil {
		slog.ErrorContext(ctx, "ensureprofile: creating profile", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	httpjson.Write(w, http.StatusCreated, profile)
}
