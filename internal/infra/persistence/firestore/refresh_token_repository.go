package firestore

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// refreshTokenRepository implements the domain RefreshTokenRepository interface on Firestore.
type refreshTokenRepository struct {
	client *firestore.Client
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(client *firestore.Client) repository.RefreshTokenRepository {
	return &refreshTokenRepository{client: client}
}

// Store persists a new session record.
func (repo *refreshTokenRepository) Store(ctx context.Context, token *entity.RefreshToken) error {
	docRef := repo.client.Collection(refreshTokensCollection).Doc(token.ID)
	if token.ID == "" {
		docRef = repo.client.Collection(refreshTokensCollection).NewDoc()
		token.ID = docRef.ID
	}

	if _, err := docRef.Create(ctx, fromRefreshTokenDomain(token)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
	}

	return nil
}

// FindByHash retrieves a session record by the token hash.
func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	iter := repo.client.Collection(refreshTokensCollection).
		Where("tokenHash", "==", tokenHash).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query refresh token")
	}

	var tokenM model.RefreshTokenModel
	if err := doc.DataTo(&tokenM); err != nil {
		return nil, errors.Wrap(err, "failed to decode refresh token document")
	}

	return toRefreshTokenDomain(doc.Ref.ID, &tokenM), nil
}

// Delete revokes a single session record.
func (repo *refreshTokenRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(refreshTokensCollection).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteByUser revokes every session of a user.
func (repo *refreshTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	iter := repo.client.Collection(refreshTokensCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	batch := repo.client.BulkWriter(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to iterate refresh tokens")
		}

		if _, err := batch.Delete(doc.Ref); err != nil {
			return errors.Wrap(err, "failed to enqueue refresh token delete")
		}
	}
	batch.End()

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a Firestore RefreshTokenModel to a domain entity.
func toRefreshTokenDomain(id string, data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        id,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain entity to a Firestore RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
