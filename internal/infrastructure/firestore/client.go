package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient Firestoreクライアントを作成する
// Cloud Run上ではデフォルト認証、ローカルでは認証ファイルを使う
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// Cloud Run環境の検出
	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client with default auth: %w", err)
		}
		log.Printf("✅ Firestore client initialized for project: %s (Cloud Run default auth)", projectID)
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

		if credentialsFile != "" {
			if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
				log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
				client, err = firestore.NewClient(ctx, projectID)
			} else {
				client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
			}
		} else {
			client, err = firestore.NewClient(ctx, projectID)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		log.Printf("✅ Firestore client initialized for project: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
