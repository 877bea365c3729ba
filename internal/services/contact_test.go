package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/types"
)

func TestContactCreateAndGetRoundTrip(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	created, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Alice",
		LastName:  strPtr("Lie Wulan"),
		Email:     strPtr("alice@example.com"),
		Phone:     strPtr("1234567890"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := env.contacts.Get(ctx, user, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestContactCreateMinimalKeepsOptionalFieldsNil(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	created, err := env.contacts.Create(ctx, user, types.CreateContactRequest{FirstName: "Test"})
	require.NoError(t, err)
	assert.Equal(t, "Test", created.FirstName)
	assert.Nil(t, created.LastName)
	assert.Nil(t, created.Email)
	assert.Nil(t, created.Phone)
}

func TestContactOwnershipScoping(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	owner := env.registerAndLogin(t, "owner")
	other := env.registerAndLogin(t, "other")

	created, err := env.contacts.Create(ctx, owner, types.CreateContactRequest{FirstName: "Private"})
	require.NoError(t, err)

	_, err = env.contacts.Get(ctx, other, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))

	_, err = env.contacts.Update(ctx, other, created.ID, types.UpdateContactRequest{FirstName: strPtr("Stolen")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))

	err = env.contacts.Delete(ctx, other, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))

	// Untouched for the owner.
	got, err := env.contacts.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", got.FirstName)
}

func TestContactUpdatePartialFields(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	created, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Alice",
		Phone:     strPtr("1234567890"),
	})
	require.NoError(t, err)

	updated, err := env.contacts.Update(ctx, user, created.ID, types.UpdateContactRequest{
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "1234567890", *updated.Phone)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "alice@example.com", *updated.Email)
}

func TestContactDelete(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	created, err := env.contacts.Create(ctx, user, types.CreateContactRequest{FirstName: "Gone"})
	require.NoError(t, err)

	require.NoError(t, env.contacts.Delete(ctx, user, created.ID))

	_, err = env.contacts.Get(ctx, user, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))

	err = env.contacts.Delete(ctx, user, created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, kindOf(t, err))
}

func TestContactSearchNameMatchesEitherNamePart(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	_, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Alice",
		LastName:  strPtr("Lie Wulan"),
	})
	require.NoError(t, err)
	_, err = env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Bob",
		LastName:  strPtr("Marlin"),
	})
	require.NoError(t, err)

	page, err := env.contacts.Search(ctx, user, types.SearchContactRequest{Name: strPtr("Wulan")})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Alice", page.Data[0].FirstName)

	page, err = env.contacts.Search(ctx, user, types.SearchContactRequest{Name: strPtr("Bob")})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Bob", page.Data[0].FirstName)
}

func TestContactSearchFiltersCombineWithAnd(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	_, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Alice",
		Email:     strPtr("alice@example.com"),
		Phone:     strPtr("1234567890"),
	})
	require.NoError(t, err)
	_, err = env.contacts.Create(ctx, user, types.CreateContactRequest{
		FirstName: "Alice",
		Email:     strPtr("alice@other.org"),
		Phone:     strPtr("0987654321"),
	})
	require.NoError(t, err)

	page, err := env.contacts.Search(ctx, user, types.SearchContactRequest{
		Name:  strPtr("Alice"),
		Email: strPtr("example.com"),
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].Phone)
	assert.Equal(t, "1234567890", *page.Data[0].Phone)

	page, err = env.contacts.Search(ctx, user, types.SearchContactRequest{
		Name:  strPtr("Alice"),
		Phone: strPtr("0000000000"),
	})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestContactSearchDoesNotLeakAcrossUsers(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	owner := env.registerAndLogin(t, "owner")
	other := env.registerAndLogin(t, "other")

	_, err := env.contacts.Create(ctx, owner, types.CreateContactRequest{FirstName: "Private"})
	require.NoError(t, err)

	page, err := env.contacts.Search(ctx, other, types.SearchContactRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Paging.TotalPage)
}

func TestContactSearchPagination(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	const total = 15
	for i := 0; i < total; i++ {
		_, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
			FirstName: fmt.Sprintf("Contact%02d", i),
		})
		require.NoError(t, err)
	}

	first, err := env.contacts.Search(ctx, user, types.SearchContactRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, first.Data, 10)
	assert.Equal(t, types.Paging{CurrentPage: 1, TotalPage: 2, Size: 10}, first.Paging)

	last, err := env.contacts.Search(ctx, user, types.SearchContactRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, last.Data, 5)
	assert.Equal(t, types.Paging{CurrentPage: 2, TotalPage: 2, Size: 10}, last.Paging)

	// Pages are disjoint and ordered.
	assert.NotEqual(t, first.Data[0].ID, last.Data[0].ID)
	assert.Greater(t, last.Data[0].ID, first.Data[len(first.Data)-1].ID)

	beyond, err := env.contacts.Search(ctx, user, types.SearchContactRequest{Page: 3, Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Data)
	assert.Empty(t, beyond.Data)
	assert.Equal(t, types.Paging{CurrentPage: 3, TotalPage: 2, Size: 10}, beyond.Paging)
}

func TestContactSearchDefaults(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	for i := 0; i < 12; i++ {
		_, err := env.contacts.Create(ctx, user, types.CreateContactRequest{
			FirstName: fmt.Sprintf("Contact%02d", i),
		})
		require.NoError(t, err)
	}

	// Zero values fall back to page=1, size=10.
	page, err := env.contacts.Search(ctx, user, types.SearchContactRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, types.Paging{CurrentPage: 1, TotalPage: 2, Size: 10}, page.Paging)
}
