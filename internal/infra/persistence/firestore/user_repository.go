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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements the domain UserRepository interface on Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindByID retrieves a single user by their auth identity identifier.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	docSnap, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var userM model.UserModel
	if err := docSnap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserDomain(docSnap.Ref.ID, &userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	var userM model.UserModel
	if err := doc.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return toUserDomain(doc.Ref.ID, &userM), nil
}

// Create persists a new user record keyed by the identity identifier.
// Create fails when the document already exists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		return errors.New("user id is required for create")
	}

	if _, err := repo.client.Collection(usersCollection).Doc(user.ID).Create(ctx, fromUserDomain(user)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update overwrites the mutable fields of an existing user record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		return errors.New("user id is required for update")
	}

	_, err := repo.client.Collection(usersCollection).Doc(user.ID).Set(ctx, fromUserDomain(user))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a Firestore UserModel to a domain User entity.
func toUserDomain(id string, data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           id,
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		Roles:        entity.RolesFromStrings(data.Roles),
		Profile: entity.UserProfile{
			Phone:     data.Profile.Phone,
			Address:   data.Profile.Address,
			BirthDate: data.Profile.BirthDate,
			Gender:    data.Profile.Gender,
			PhotoURL:  data.Profile.PhotoURL,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a Firestore UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		Email:        data.Email,
		DisplayName:  data.DisplayName,
		PasswordHash: data.PasswordHash,
		Roles:        data.Roles.ToStrings(),
		Profile: model.UserProfileModel{
			Phone:     data.Profile.Phone,
			Address:   data.Profile.Address,
			BirthDate: data.Profile.BirthDate,
			Gender:    data.Profile.Gender,
			PhotoURL:  data.Profile.PhotoURL,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
