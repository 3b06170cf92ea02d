package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) AddFavorite(ctx context.Context, f *Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockRepository) RemoveFavorite(ctx context.Context, userID, itemID string, itemType ItemType) error {
	args := m.Called(ctx, userID, itemID, itemType)
	return args.Error(0)
}

func (m *MockRepository) ListFavorites(ctx context.Context, userID string) ([]Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Favorite), args.Error(1)
}

type MockBookSource struct {
	mock.Mock
}

func (m *MockBookSource) GetByIDs(ctx context.Context, ids []string) ([]book.Book, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]book.Book), args.Error(1)
}

type MockMovieSource struct {
	mock.Mock
}

func (m *MockMovieSource) GetByIDs(ctx context.Context, ids []string) ([]movie.Movie, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

type MockConnectionSource struct {
	mock.Mock
}

func (m *MockConnectionSource) GetByIDs(ctx context.Context, ids []string) ([]connection.Connection, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]connection.Connection), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, new(MockBookSource), new(MockMovieSource), new(MockConnectionSource))
}

func TestService_Create_DefaultsAvatar(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	svc := newTestService(repo)
	u, err := svc.Create(context.Background(), &CreateRequest{
		Username: "reader42",
		Email:    "reader42@example.com",
		Name:     "Avid Reader",
	}, "")

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, DefaultAvatar, u.Avatar)
}

func TestService_Create_DuplicatePropagates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(ErrAlreadyExists)

	svc := newTestService(repo)
	_, err := svc.Create(context.Background(), &CreateRequest{
		Username: "reader42",
		Email:    "reader42@example.com",
		Name:     "Avid Reader",
	}, "")

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Create_InvalidEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &CreateRequest{
		Username: "reader42",
		Email:    "not-an-email",
		Name:     "Avid Reader",
	}, "")

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Update_PatchKeepsAbsentFields(t *testing.T) {
	existing := &User{ID: "u1", Username: "reader42", Email: "r@example.com", Name: "Old Name", Bio: "old bio", Avatar: DefaultAvatar}

	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "u1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	svc := newTestService(repo)
	name := "New Name"
	u, err := svc.Update(context.Background(), "u1", &UpdateRequest{Name: &name}, "")

	require.NoError(t, err)
	assert.Equal(t, "New Name", u.Name)
	assert.Equal(t, "old bio", u.Bio, "absent field keeps old value")
	assert.Equal(t, DefaultAvatar, u.Avatar, "avatar unchanged without a new upload")
}

func TestService_AddFavorite_RejectsUnknownType(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	err := svc.AddFavorite(context.Background(), "u1", "x1", "playlist")
	assert.ErrorIs(t, err, ErrInvalidItemType)
	repo.AssertNotCalled(t, "AddFavorite")
}

func TestService_AddFavorite_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "u1").Return(&User{ID: "u1"}, nil)
	repo.On("AddFavorite", mock.Anything, mock.MatchedBy(func(f *Favorite) bool {
		return f.UserID == "u1" && f.ItemID == "b1" && f.ItemType == ItemTypeBook
	})).Return(nil)

	svc := newTestService(repo)
	require.NoError(t, svc.AddFavorite(context.Background(), "u1", "b1", "book"))
	repo.AssertExpectations(t)
}

func TestService_RemoveFavorite_AbsentIsNoOp(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "u1").Return(&User{ID: "u1"}, nil)
	repo.On("RemoveFavorite", mock.Anything, "u1", "never-added", ItemTypeMovie).Return(nil)

	svc := newTestService(repo)
	assert.NoError(t, svc.RemoveFavorite(context.Background(), "u1", "never-added", "movie"))
}

func TestService_GetFavorites_PartitionsAndPopulates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "u1").Return(&User{ID: "u1"}, nil)
	repo.On("ListFavorites", mock.Anything, "u1").Return([]Favorite{
		{UserID: "u1", ItemID: "b1", ItemType: ItemTypeBook},
		{UserID: "u1", ItemID: "m1", ItemType: ItemTypeMovie},
		{UserID: "u1", ItemID: "c1", ItemType: ItemTypeConnection},
	}, nil)

	books := new(MockBookSource)
	books.On("GetByIDs", mock.Anything, []string{"b1"}).Return([]book.Book{{ID: "b1", Title: "Dune"}}, nil)
	movies := new(MockMovieSource)
	movies.On("GetByIDs", mock.Anything, []string{"m1"}).Return([]movie.Movie{{ID: "m1", Title: "Blade Runner"}}, nil)
	conns := new(MockConnectionSource)
	conns.On("GetByIDs", mock.Anything, []string{"c1"}).Return([]connection.Connection{{ID: "c1"}}, nil)

	svc := NewService(repo, books, movies, conns)
	favorites, err := svc.GetFavorites(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, favorites.Books, 1)
	require.Len(t, favorites.Movies, 1)
	require.Len(t, favorites.Connections, 1)
	assert.Equal(t, "Dune", favorites.Books[0].Title)
	assert.Equal(t, "c1", favorites.Connections[0].ID)
}

func TestService_GetFavorites_UnknownUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "ghost").Return(nil, ErrNotFound)

	svc := newTestService(repo)
	_, err := svc.GetFavorites(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
