package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dukaan/config"
	"dukaan/internal/database"
	"dukaan/internal/identity"
	"dukaan/internal/router"
	"dukaan/internal/store"
	"dukaan/pkg/payment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	orderStore, err := store.NewFirestoreStore(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile, cfg.Firestore.Collection)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer orderStore.Close()

	gateway := payment.NewRazorpayGateway(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	verifier := identity.NewFirebaseVerifier(cfg.Firebase.ServiceAccountPath)
	if verifier != nil {
		log.Printf("[Identity] Bearer-token verification enabled")
	} else {
		log.Printf("[Identity] Bearer-token verification disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}

	var v identity.Verifier
	if verifier != nil {
		v = verifier
	}
	engine := router.Setup(cfg, gateway, orderStore, v, db)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
