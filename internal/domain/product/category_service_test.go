// internal/domain/product/category_service_test.go
package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"github.com/your-org/store-backend/internal/testutil"
)

func TestCategoryCreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	svc := product.NewCategoryService(db, testutil.NewConfig())
	ctx := context.Background()

	_, err := svc.Create(ctx, &product.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &product.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// Sorted by name
	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
}

func TestCategoryUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := product.NewCategoryService(db, testutil.NewConfig())
	ctx := context.Background()

	created, err := svc.Create(ctx, &product.CreateCategoryRequest{Name: "Eletronics"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &product.UpdateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", updated.Name)

	_, err = svc.Update(ctx, 9999, &product.UpdateCategoryRequest{Name: "Nope"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
