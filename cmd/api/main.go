package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"centeradmin/internal/adapter/api"
	"centeradmin/internal/adapter/api/handler"
	apimiddleware "centeradmin/internal/adapter/api/middleware"
	"centeradmin/internal/adapter/api/router"
	"centeradmin/internal/adapter/repository"
	"centeradmin/internal/infrastructure/firebase"
	"centeradmin/internal/infrastructure/storage"
	"centeradmin/internal/usecase"
	"centeradmin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable in production, file path for
	// local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if cfg.ServiceAccountPath != "" {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.ServiceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.ServiceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	contentRepo := repository.NewFirestoreContentRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)

	assetManager := usecase.NewAssetManager(storageClient)
	contentUseCase := usecase.NewContentUseCase(contentRepo, assetManager)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo)

	contentHandler := handler.NewContentHandler(contentUseCase)
	inquiryHandler := handler.NewInquiryHandler(inquiryUseCase)
	healthHandler := handler.NewHealthHandler()

	firebaseAuthClient := firebase.NewAuthClient(authClient)
	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, contentHandler, inquiryHandler, healthHandler, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
