package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"houdeapp/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PresetCategories is the allow-list guarding product writes. Category input
// is matched against it case-insensitively after trimming.
var PresetCategories = []string{
	"Back Pack",
	"Tool Bag",
	"Makeup Bag",
	"Tote Bag",
	"Insulated bag",
	"Waterproof Bag",
	"Game Case",
	"Laptop Bag",
	"Tablet cases",
	"Headphone Bag",
}

const MaxImagesPerCategory = 10

var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("image url not found in this product")
)

// CategoryCapError reports how many images a category already holds when an
// upload would push it past the cap.
type CategoryCapError struct {
	Existing int
}

func (e *CategoryCapError) Error() string {
	return fmt.Sprintf("This category already has %d images. You can upload only %d more.",
		e.Existing, MaxImagesPerCategory-e.Existing)
}

var categoryMap = func() map[string]string {
	m := make(map[string]string, len(PresetCategories))
	for _, c := range PresetCategories {
		m[normalizeCategory(c)] = c
	}
	return m
}()

func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveCategory maps raw user input to the canonical preset spelling.
func ResolveCategory(raw string) (string, bool) {
	category, ok := categoryMap[normalizeCategory(raw)]
	return category, ok
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// SlugifyFolderName turns a category name into a storage folder segment,
// e.g. "Back Pack" -> "back-pack".
func SlugifyFolderName(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "&", "and")
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ProductDocID is the deterministic document id for a (user, category) pair,
// which makes the upload an upsert on a single ref.
func ProductDocID(userID, category string) string {
	return userID + "_" + SlugifyFolderName(category)
}

// CountProductImages returns how many images the user already stored for the
// category. A missing document counts as zero.
func CountProductImages(ctx context.Context, firestoreClient *firestore.Client, userID, category string) (int, error) {
	docSnap, err := firestoreClient.Collection("Products").Doc(ProductDocID(userID, category)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, err
	}

	var product model.Product
	if err := docSnap.DataTo(&product); err != nil {
		return 0, err
	}
	return len(product.Images), nil
}

// AppendProductImages appends uploaded URLs to the user's category document,
// creating it when absent. The cap check runs inside the transaction so two
// concurrent uploads cannot push the category past the limit.
func AppendProductImages(ctx context.Context, firestoreClient *firestore.Client, userID, category string, urls []string) (*model.Product, error) {
	docRef := firestoreClient.Collection("Products").Doc(ProductDocID(userID, category))

	var product model.Product
	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now()
		docSnap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		if err == nil && docSnap.Exists() {
			if err := docSnap.DataTo(&product); err != nil {
				return err
			}
		} else {
			product = model.Product{
				ProductID: docRef.ID,
				UserID:    userID,
				Category:  category,
				Images:    []string{},
				CreatedAt: now,
			}
		}

		if len(product.Images)+len(urls) > MaxImagesPerCategory {
			return &CategoryCapError{Existing: len(product.Images)}
		}

		product.Images = append(product.Images, urls...)
		product.UpdatedAt = now
		return tx.Set(docRef, product)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// RemoveProductImage pulls one matching URL from an owned product document.
func RemoveProductImage(ctx context.Context, firestoreClient *firestore.Client, userID, productID, url string) (*model.Product, error) {
	docRef := firestoreClient.Collection("Products").Doc(productID)

	var product model.Product
	err := firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrProductNotFound
			}
			return err
		}

		if err := docSnap.DataTo(&product); err != nil {
			return err
		}
		if product.UserID != userID {
			return ErrProductNotFound
		}

		images, removed := removeFirst(product.Images, url)
		if !removed {
			return ErrImageNotFound
		}

		product.Images = images
		product.UpdatedAt = time.Now()
		return tx.Set(docRef, product)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// removeFirst drops the first matching entry, keeping order.
func removeFirst(xs []string, x string) ([]string, bool) {
	for i := range xs {
		if xs[i] == x {
			out := make([]string, 0, len(xs)-1)
			out = append(out, xs[:i]...)
			return append(out, xs[i+1:]...), true
		}
	}
	return xs, false
}

// DeleteProduct removes the whole category document if owned by the caller.
func DeleteProduct(ctx context.Context, firestoreClient *firestore.Client, userID, productID string) error {
	docRef := firestoreClient.Collection("Products").Doc(productID)

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProductNotFound
		}
		return err
	}

	var product model.Product
	if err := docSnap.DataTo(&product); err != nil {
		return err
	}
	if product.UserID != userID {
		return ErrProductNotFound
	}

	_, err = docRef.Delete(ctx)
	return err
}

// ListProducts returns products newest-first, optionally scoped to one owner.
func ListProducts(ctx context.Context, firestoreClient *firestore.Client, userID string) ([]model.Product, error) {
	query := firestoreClient.Collection("Products").Query
	if userID != "" {
		query = query.Where("userid", "==", userID)
	}

	docs, err := query.OrderBy("createdat", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		var product model.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
