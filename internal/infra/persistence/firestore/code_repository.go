package firestore

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// codeRepository implements the domain CodeRepository interface on Firestore.
type codeRepository struct {
	client *firestore.Client
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(client *firestore.Client) repository.CodeRepository {
	return &codeRepository{client: client}
}

// FindUnactivated retrieves a code by exact value where the activation
// status is still false.
func (repo *codeRepository) FindUnactivated(ctx context.Context, code string) (*entity.IncubatorCode, error) {
	iter := repo.client.Collection(codesCollection).
		Where("code", "==", code).
		Where("activationStatus", "==", false).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrCodeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query incubator code")
	}

	var codeM model.CodeModel
	if err := doc.DataTo(&codeM); err != nil {
		return nil, errors.Wrap(err, "failed to decode code document")
	}

	return toCodeDomain(doc.Ref.ID, &codeM), nil
}

// Activate marks a code as consumed. The read-check-write runs inside a
// transaction so two concurrent store creations cannot both consume it.
func (repo *codeRepository) Activate(ctx context.Context, id, userID string) error {
	docRef := repo.client.Collection(codesCollection).Doc(id)

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var codeM model.CodeModel
		if err := doc.DataTo(&codeM); err != nil {
			return err
		}
		if codeM.ActivationStatus {
			return repository.ErrCodeNotFound
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "activationStatus", Value: true},
			{Path: "activatedBy", Value: userID},
			{Path: "activatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return repository.ErrCodeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to activate incubator code")
	}

	return nil
}

// Create persists a new code document.
func (repo *codeRepository) Create(ctx context.Context, code *entity.IncubatorCode) error {
	docRef := repo.client.Collection(codesCollection).Doc(code.ID)
	if code.ID == "" {
		docRef = repo.client.Collection(codesCollection).NewDoc()
		code.ID = docRef.ID
	}

	if _, err := docRef.Create(ctx, fromCodeDomain(code)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create incubator code")
	}

	return nil
}

// --- Mapper Functions ---

// toCodeDomain converts a Firestore CodeModel to a domain IncubatorCode entity.
func toCodeDomain(id string, data *model.CodeModel) *entity.IncubatorCode {
	if data == nil {
		return nil
	}

	return &entity.IncubatorCode{
		ID:               id,
		Code:             data.Code,
		ActivationStatus: data.ActivationStatus,
		ActivatedBy:      data.ActivatedBy,
		ActivatedAt:      data.ActivatedAt,
	}
}

// fromCodeDomain converts a domain IncubatorCode entity to a Firestore CodeModel.
func fromCodeDomain(data *entity.IncubatorCode) *model.CodeModel {
	if data == nil {
		return nil
	}

	return &model.CodeModel{
		Code:             data.Code,
		ActivationStatus: data.ActivationStatus,
		ActivatedBy:      data.ActivatedBy,
		ActivatedAt:      data.ActivatedAt,
	}
}
