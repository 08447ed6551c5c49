package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/taskvault/app/internal/auth"
	"github.com/taskvault/app/internal/database"
	"github.com/taskvault/app/internal/handlers"
	"github.com/taskvault/app/internal/storage"
	"github.com/taskvault/app/internal/todo"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Initialize database
	db, err := database.InitDB(envOr("DATABASE_PATH", "todos.db"))
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	users := database.NewUserStore(db)
	todos := database.NewTodoStore(db)
	sessions := database.NewSessionStore(db)

	authSvc := auth.NewService(users, sessions)
	todoSvc := todo.NewService(todos)

	// Image host. Without credentials the rest of the app keeps
	// working; only uploads fail.
	var uploader storage.Uploader = storage.Disabled{}
	if os.Getenv("CLOUDINARY_URL") != "" {
		cld, err := storage.NewCloudinary()
		if err != nil {
			log.Fatalf("Error initializing image host: %v", err)
		}
		uploader = cld
	} else {
		log.Println("CLOUDINARY_URL not set; image uploads are disabled")
	}

	// Sweep expired sessions periodically; lookups also delete them
	// lazily, so this only bounds table growth.
	go func() {
		for range time.Tick(time.Hour) {
			n, err := sessions.DeleteExpired()
			if err != nil {
				log.Printf("Error sweeping expired sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Swept %d expired sessions", n)
			}
		}
	}()

	router := handlers.NewRouter(
		handlers.NewAuthHandlers(authSvc),
		handlers.NewTodoHandlers(todoSvc),
		handlers.NewUploadHandlers(uploader, ""),
		authSvc,
	)

	// Static file server for the built SPA.
	staticDir := envOr("STATIC_DIR", "web/static")
	fs := http.FileServer(http.Dir(staticDir))
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))

	// CORS wraps the whole router so preflight is answered before
	// route matching.
	handler := handlers.CORS(envOr("CORS_ORIGIN", "http://localhost:5173"))(router)

	port := envOr("PORT", "5000")
	log.Printf("Server starting on port %s\n", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
