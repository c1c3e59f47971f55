package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pipetrack/pipetrack/internal/infra/database"
	"github.com/pipetrack/pipetrack/internal/infra/http/handlers"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/infra/integration/leadsapi"
	"github.com/pipetrack/pipetrack/internal/infra/mail"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
	"github.com/pipetrack/pipetrack/internal/infra/worker"
	"github.com/pipetrack/pipetrack/internal/store"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Collaborators
	api := leadsapi.NewClient(os.Getenv("LEADS_API_URL"), os.Getenv("LEADS_API_TOKEN"))
	sessions := database.NewSessionRepository(db)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 2. Canonical store + use cases
	leadStore := store.New()
	refreshUC := usecase.NewRefreshLeads(api, leadStore)
	reconcileUC := usecase.NewReconcileLead(api, leadStore, refreshUC)
	assignUC := usecase.NewBulkAssign(api, leadStore)
	importUC := usecase.NewImportLeads(api, leadStore)

	ctx := context.Background()

	// Session loads once at process start; absence is fine.
	if user, err := sessions.Load(ctx); err != nil {
		log.Printf("session load failed: %v", err)
	} else if user != nil {
		log.Printf("session restored for %s (%s)", user.Name, user.Role)
	}

	// 3. Follow-up pipeline: worker publishes alerts, consumer mails them.
	followUpWorker := worker.NewFollowUpWorker(leadStore, producer)
	if users, err := api.FetchUsers(ctx); err != nil {
		log.Printf("bda-users fetch failed, alerts go out without emails: %v", err)
	} else {
		followUpWorker.SetUsers(users)
	}
	go followUpWorker.Start(ctx)

	consumer := queue.NewConsumer(rabbitMQ.Ch, mailSender)
	go consumer.Start(queue.QueueName)

	// Initial fill; the store stays at last-known-good on failure.
	if result, err := refreshUC.Execute(ctx); err != nil {
		log.Printf("initial refresh failed: %v", err)
	} else {
		log.Printf("initial refresh: %d lead(s), %d skipped", result.Ingested, result.Skipped)
	}

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(leadStore, refreshUC, reconcileUC, assignUC, importUC)
	eventHandler := handlers.NewEventHandler(leadStore)
	userHandler := handlers.NewUserHandler(api, sessions)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, leadStore)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/leads", leadHandler.HandleList)
	r.Get("/leads/{id}", leadHandler.HandleGet)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Post("/leads/assign", leadHandler.HandleAssign)
	r.Post("/leads/refresh", leadHandler.HandleRefresh)
	r.Post("/leads/import", leadHandler.HandleImport)

	r.Get("/notifications", eventHandler.HandleNotifications)
	r.Get("/calendar", eventHandler.HandleCalendar)

	r.Get("/bda-users", userHandler.HandleListBDAs)
	r.Get("/session", userHandler.HandleGetSession)
	r.Post("/session", userHandler.HandleLogin)
	r.Delete("/session", userHandler.HandleLogout)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("PipeTrack API listening on :%s", port)
	http.ListenAndServe(":"+port, r)
}
