package services

import (
	"context"
	"errors"
	"strings"

	"houdeapp/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")
)

// EmailIndexDocID keys the uniqueness document for one registered email.
// Emails are stored lowercase, so any casing of the same address collides on
// the same doc id.
func EmailIndexDocID(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new user. The email-uniqueness check and both writes
// run in one transaction: an EmailIndex document is claimed alongside the
// user document, so two concurrent registrations with the same email cannot
// both land.
func CreateUser(ctx context.Context, firestoreClient *firestore.Client, user model.User) error {
	userRef := firestoreClient.Collection("Users").Doc(user.UserID)
	emailRef := firestoreClient.Collection("EmailIndex").Doc(EmailIndexDocID(user.Email))

	return firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(emailRef)
		if err == nil {
			return ErrEmailTaken
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		if err := tx.Set(emailRef, map[string]interface{}{
			"userid":    user.UserID,
			"createdat": user.CreatedAt,
		}); err != nil {
			return err
		}
		return tx.Set(userRef, user)
	})
}

// GetUserData looks a user up by (lowercased) email and returns the document
// snapshot, so callers can decode the hash fields that never reach clients.
func GetUserData(ctx context.Context, firestoreClient *firestore.Client, email string) (*firestore.DocumentSnapshot, error) {
	usersCollection := firestoreClient.Collection("Users")

	query := usersCollection.Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}

	return docs[0], nil
}

func GetUserDataByUserid(ctx context.Context, firestoreClient *firestore.Client, userID string) (*firestore.DocumentSnapshot, error) {
	docSnap, err := firestoreClient.Collection("Users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return docSnap, nil
}
