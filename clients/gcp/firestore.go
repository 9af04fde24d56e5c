package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// CreateFirestore opens a Firestore client. An empty projectID lets the client detect
// it from the environment (credentials or FIRESTORE_EMULATOR_HOST).
func CreateFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
