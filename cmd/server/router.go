package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/places-api/internal/api"
	apiMiddleware "github.com/phrazzld/places-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	userHandler := api.NewUserHandler(app.userStore)
	placeHandler := api.NewPlaceHandler(app.placeService)
	uploadHandler := api.NewUploadHandler(app.storage)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users/signup", authHandler.Signup)
		r.Post("/users/login", authHandler.Login)
		r.Get("/users", userHandler.ListUsers)

		r.Get("/places/{placeID}", placeHandler.GetPlace)
		r.Get("/places/owner/{userID}", placeHandler.GetPlacesByOwner)
		r.Get("/places/user/{userID}", placeHandler.GetPlacesByCreator)

		// Uploads stay public: signup references an uploaded image key
		// before the user holds a token.
		r.Post("/uploads/images", uploadHandler.UploadImage)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/places", placeHandler.CreatePlace)
			r.Patch("/places/{placeID}", placeHandler.UpdatePlace)
			r.Delete("/places/{placeID}", placeHandler.DeletePlace)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
