package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/config"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/ensureprofile"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/fetchtranscript"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/getrecipe"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/listrecipes"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/saverecipe"
	"github.com/ShashwatM3/justchefit-pwa/internal/handler/share"
	"github.com/ShashwatM3/justchefit-pwa/internal/llm"
	"github.com/ShashwatM3/justchefit-pwa/internal/transcript"
)

//go:embed conf/*.yaml
var confFiles embed.FS

//go:embed web
var webFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		return fmt.Errorf("main: create genai client: %w", err)
	}

	oai := openai.NewClient()

	transcripts := transcript.NewClient(conf.Transcript.URL, time.Duration(conf.Transcript.TimeoutSeconds)*time.Second)
	extractor := llm.NewExtractor(genAI, &oai, llm.Provider(conf.LLM.Provider), conf.LLM.GoogleModel, conf.LLM.OpenAIModel)

	// Only the API requires a signed-in user. The share target and app shell
	// must stay reachable so a share can arrive before sign-in.
	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/")
	}))

	shareHandler := share.NewHandler()
	mux.Post("/share", shareHandler.Receive)
	mux.Get("/share", shareHandler.Echo)

	mux.Post("/api/fetch-transcript-insta", fetchtranscript.NewHandler(transcripts, extractor).FetchTranscript)
	mux.Post("/api/profile", ensureprofile.NewHandler(firestore).EnsureProfile)

	chef := chefdb.Chef{
		Name:           conf.Chef.Name,
		VoiceAssistant: conf.Chef.VoiceAssistant,
		VoiceChef:      conf.Chef.VoiceChef,
	}
	mux.Post("/api/recipes", saverecipe.NewHandler(firestore, chef).SaveRecipe)
	mux.Get("/api/recipes", listrecipes.NewHandler(firestore).ListRecipes)
	mux.Get("/api/recipes/{recipeID}", getrecipe.NewHandler(firestore).GetRecipe)

	web, _ := fs.Sub(webFiles, "web")
	mux.Handle("/*", http.FileServerFS(web))

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
