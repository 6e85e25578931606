// Package firestore contains the concrete implementation of the persistence
// layer on top of Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"vitrina/config"
	"vitrina/internal/domain/lifecycle"
	"vitrina/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names used across the repositories.
const (
	storesCollection        = "stores"
	productsCollection      = "products" // Sub-collection of a store document.
	usersCollection         = "users"
	codesCollection         = "codes"
	refreshTokensCollection = "refresh_tokens"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client through the Firebase Admin SDK.
// With no credentials path configured it falls back to Application
// Default Credentials, which is how the service runs on Cloud Run.
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	fbConfig := &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing firestore client")

			return client.Close()
		},
	})

	return client, nil
}
