package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/dreampcbuild/dreampc-gobackend/internal/auth"
	"github.com/dreampcbuild/dreampc-gobackend/internal/db"
	"github.com/dreampcbuild/dreampc-gobackend/internal/handlers"
	"github.com/dreampcbuild/dreampc-gobackend/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI environment variable not set")
	}
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET environment variable not set")
	}

	// Connect to MongoDB
	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	database := client.Database("dream_pc_build")

	// Initialize services and handlers
	codec := auth.NewCodec(secret)

	productHandler := handlers.NewProductHandler(services.NewProductService(database))
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(database))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(database), services.NewPaymentService(database))
	userHandler := handlers.NewUserHandler(services.NewUserService(database), codec)
	paymentHandler := handlers.NewPaymentHandler(services.NewStripeService())

	requireAuth := auth.RequireAuth(codec)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Dream PC Build backend is running"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/products", productHandler.GetProducts).Methods("GET")
	router.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")

	router.HandleFunc("/new-order", orderHandler.CreateOrder).Methods("POST")
	router.HandleFunc("/new-order", orderHandler.GetOrdersByEmail).Methods("GET")
	router.HandleFunc("/new-order/{id}", orderHandler.GetOrder).Methods("GET")
	router.HandleFunc("/new-order/{id}", orderHandler.ConfirmPayment).Methods("PATCH")
	router.HandleFunc("/new-order/{id}", orderHandler.DeleteOrder).Methods("DELETE")
	router.HandleFunc("/orders", orderHandler.GetOrders).Methods("GET")
	router.HandleFunc("/orders/{id}", orderHandler.SetOrderStatus).Methods("PUT")

	router.HandleFunc("/create-payment-intent", paymentHandler.CreatePaymentIntent).Methods("POST")

	router.HandleFunc("/reviews", reviewHandler.GetReviews).Methods("GET")
	router.HandleFunc("/reviews", reviewHandler.CreateReview).Methods("POST")

	router.HandleFunc("/user", userHandler.GetUsers).Methods("GET")
	router.Handle("/user/admin/{email}", requireAuth(http.HandlerFunc(userHandler.MakeAdmin))).Methods("PUT")
	router.HandleFunc("/user/{email}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/user/{email}", userHandler.UpsertUser).Methods("PUT")
	router.HandleFunc("/admin/{email}", userHandler.CheckAdmin).Methods("GET")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("Dream PC Build listening on port %s", port)
	log.Fatal(server.ListenAndServe())
}
