package main

import (
	"log"
	"net/http"

	_ "github.com/Chispasgg/sakila-api/docs" // swagger docs

	"github.com/Chispasgg/sakila-api/internal/cache"
	"github.com/Chispasgg/sakila-api/internal/config"
	"github.com/Chispasgg/sakila-api/internal/db"
	"github.com/Chispasgg/sakila-api/internal/handler"
	"github.com/Chispasgg/sakila-api/internal/repository"
	"github.com/Chispasgg/sakila-api/internal/service"
	"github.com/Chispasgg/sakila-api/internal/simclient"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Sakila Recommendations API
// @version 1.0
// @description API de recomendaciones de películas sobre el catálogo Sakila (Mongo, Redis)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	filmRepo := repository.NewFilmRepository()
	rentalRepo := repository.NewRentalRepository()
	customerRepo := repository.NewCustomerRepository()
	feedbackRepo := repository.NewFeedbackRepository()

	// services
	v1Svc := service.NewRecommendV1Service(customerRepo, filmRepo, rentalRepo)
	v2Svc := service.NewRecommendV2Service(customerRepo, filmRepo, rentalRepo)
	kwSvc := service.NewKeywordRecommendService(customerRepo, filmRepo, rentalRepo)
	filmSvc := service.NewFilmService(filmRepo, rentalRepo)
	customerSvc := service.NewCustomerService(customerRepo, filmRepo, rentalRepo)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, customerRepo)
	// cliente del servicio externo de similitud semántica
	simCli := simclient.New(cfg.SimServiceURL)

	// handlers
	recH := handler.NewRecommendHandler(v1Svc, v2Svc, kwSvc, simCli)
	filmH := handler.NewFilmHandler(filmSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	feedbackH := handler.NewFeedbackHandler(feedbackSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// Películas
	r.Get("/films/search", filmH.Search)
	r.Get("/films/top", filmH.Top)
	r.Get("/films/{id}", filmH.GetFilm)

	// Clientes
	r.Get("/customers/{id}/rentals", customerH.GetRentals)
	r.Get("/customers/{id}/feedback", feedbackH.ListByCustomer)

	// Feedback sobre recomendaciones
	r.Post("/feedback", feedbackH.Create)

	// ==========================
	// Recomendaciones (con cache)
	// ==========================
	r.Route("/recommendations", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(cache.ResponseCache)

			r.Get("/focus-options", recH.FocusOptions)
			r.Get("/v1/{id}", recH.GetV1)
			r.Get("/v2/{id}", recH.GetV2)
			r.Get("/keywords/{id}", recH.GetKeywords)
			r.Get("/external/{id}", recH.GetExternal)
		})

		// WebSocket fuera del middleware de cache (necesita Hijacker)
		r.Get("/ws/{id}", recH.GetRecommendationsWS)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
