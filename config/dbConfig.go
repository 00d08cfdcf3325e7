package config

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewFirestoreClient connects to the Firestore project named in the configuration.
func NewFirestoreClient(ctx context.Context, cfg *Config) *firestore.Client {
	fmt.Println("Connecting to Firestore...")

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Connected to Firestore")
	return client
}
