package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"dailywage-backend/internal/domain"
	"dailywage-backend/internal/usecase"
	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/auth"
	"dailywage-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) IsBlocked(ctx context.Context, phone, ip string) (bool, error) {
	args := m.Called(ctx, phone, ip)
	return args.Bool(0), args.Error(1)
}
func (m *MockGuard) RecordFailedAttempt(ctx context.Context, phone, ip string) (bool, int, error) {
	args := m.Called(ctx, phone, ip)
	return args.Bool(0), args.Int(1), args.Error(2)
}
func (m *MockGuard) ClearAttempts(ctx context.Context, phone, ip string) error {
	return m.Called(ctx, phone, ip).Error(0)
}

type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) Upsert(ctx context.Context, profile *domain.ProviderProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProviderRepo) GetViewByUserID(ctx context.Context, userID int64) (*domain.ProviderProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderProfileView), args.Error(1)
}

type MockSeekerRepo struct {
	mock.Mock
}

func (m *MockSeekerRepo) Save(ctx context.Context, profile *domain.SeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockSeekerRepo) GetViewByUserID(ctx context.Context, userID int64) (*domain.SeekerProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfileView), args.Error(1)
}

type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) ListSeekers(ctx context.Context, filter domain.SeekerFilter) ([]domain.SeekerSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeekerSummary), args.Error(1)
}
func (m *MockListingRepo) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobListing), args.Error(1)
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, "test")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	valid := domain.RegisterInput{Name: "Asha", Phone: "9876543210", Password: "secret1", Role: "seeker"}

	t.Run("Should reject missing fields", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

		_, err := uc.Register(ctx, domain.RegisterInput{Phone: "9876543210", Password: "secret1", Role: "seeker"})
		assertAppError(t, err, http.StatusBadRequest, "Name is required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

		in := valid
		in.Role = "admin"
		_, err := uc.Register(ctx, in)
		assertAppError(t, err, http.StatusBadRequest, "")
	})

	t.Run("Should reject a registered phone without creating a row", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByPhone", ctx, "9876543210").Return(&domain.User{ID: 1, Phone: "9876543210"}, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

		_, err := uc.Register(ctx, valid)
		assertAppError(t, err, http.StatusBadRequest, "Phone already registered")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should map a unique violation race to the same error", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByPhone", ctx, "9876543210").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicatePhone)
		uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

		_, err := uc.Register(ctx, valid)
		assertAppError(t, err, http.StatusBadRequest, "Phone already registered")
	})

	t.Run("Should hash the password and issue a token", func(t *testing.T) {
		repo := new(MockUserRepo)
		tokens := newTokens()
		repo.On("GetByPhone", ctx, "9876543210").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "secret1", u.PasswordHash)
			assert.True(t, auth.CheckPassword(u.PasswordHash, "secret1"))
			u.ID = 42
		})
		uc := usecase.NewAuthUsecase(repo, tokens, nil, nil, validation.New())

		in := valid
		in.Name = "  Asha  "
		res, err := uc.Register(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.User.ID)
		assert.Equal(t, "Asha", res.User.Name)

		id, err := tokens.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id.ID)
		assert.Equal(t, "seeker", id.Role)
	})

	t.Run("Should hide store failures", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByPhone", ctx, "9876543210").Return(nil, errors.New("connection reset"))
		uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

		_, err := uc.Register(ctx, valid)
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	stored := &domain.User{ID: 7, Name: "Ravi", Phone: "9876543210", PasswordHash: hash, Role: "provider"}

	t.Run("Should give the same answer for unknown phone and wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		guard := new(MockGuard)
		repo.On("GetByPhone", ctx, "9000000000").Return(nil, domain.ErrNotFound)
		repo.On("GetByPhone", ctx, "9876543210").Return(stored, nil)
		guard.On("IsBlocked", ctx, mock.Anything, "1.2.3.4").Return(false, nil)
		guard.On("RecordFailedAttempt", ctx, mock.Anything, "1.2.3.4").Return(false, 1, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), guard, nil, validation.New())

		_, err := uc.Login(ctx, domain.LoginInput{Phone: "9000000000", Password: "secret1"}, "1.2.3.4")
		assertAppError(t, err, http.StatusUnauthorized, "Invalid credentials")

		_, err = uc.Login(ctx, domain.LoginInput{Phone: "9876543210", Password: "wrong-pass"}, "1.2.3.4")
		assertAppError(t, err, http.StatusUnauthorized, "Invalid credentials")

		guard.AssertNumberOfCalls(t, "RecordFailedAttempt", 2)
	})

	t.Run("Should refuse blocked phones before touching the store", func(t *testing.T) {
		repo := new(MockUserRepo)
		guard := new(MockGuard)
		guard.On("IsBlocked", ctx, "9876543210", "1.2.3.4").Return(true, nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), guard, nil, validation.New())

		_, err := uc.Login(ctx, domain.LoginInput{Phone: "9876543210", Password: "secret1"}, "1.2.3.4")
		assertAppError(t, err, http.StatusTooManyRequests, "")
		repo.AssertNotCalled(t, "GetByPhone", mock.Anything, mock.Anything)
	})

	t.Run("Should issue a token and clear attempts on success", func(t *testing.T) {
		repo := new(MockUserRepo)
		guard := new(MockGuard)
		repo.On("GetByPhone", ctx, "9876543210").Return(stored, nil)
		guard.On("IsBlocked", ctx, "9876543210", "1.2.3.4").Return(false, nil)
		guard.On("ClearAttempts", ctx, "9876543210", "1.2.3.4").Return(nil)
		uc := usecase.NewAuthUsecase(repo, newTokens(), guard, nil, validation.New())

		res, err := uc.Login(ctx, domain.LoginInput{Phone: " 9876543210 ", Password: "secret1"}, "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, "provider", res.User.Role)
		assert.NotEmpty(t, res.Token)
		guard.AssertCalled(t, "ClearAttempts", ctx, "9876543210", "1.2.3.4")
	})

	t.Run("Should require both fields", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), newTokens(), nil, nil, validation.New())
		_, err := uc.Login(ctx, domain.LoginInput{Phone: "9876543210"}, "")
		assertAppError(t, err, http.StatusBadRequest, "Password is required")
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewAuthUsecase(repo, newTokens(), nil, nil, validation.New())

	_, err := uc.GetCurrentUser(ctx, 9)
	assertAppError(t, err, http.StatusNotFound, "")
}

func validProviderInput() domain.ProviderProfileInput {
	return domain.ProviderProfileInput{
		WorkType:      "Plumbing",
		BudgetPerDay:  800,
		WorkersNeeded: 2,
		WorkingHours:  "Full Day",
		CustomHours:   "ignored",
		Location:      "Pune",
	}
}

func TestProviderSaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should name the missing field", func(t *testing.T) {
		repo := new(MockProviderRepo)
		uc := usecase.NewProviderUsecase(repo, validation.New())

		in := validProviderInput()
		in.WorkType = ""
		_, err := uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Work type is required")

		in = validProviderInput()
		in.WorkersNeeded = 0
		_, err = uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Workers needed must be at least 1")

		in.WorkersNeeded = -3
		_, err = uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Workers needed must be at least 1")

		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a budget the money column cannot hold", func(t *testing.T) {
		repo := new(MockProviderRepo)
		uc := usecase.NewProviderUsecase(repo, validation.New())

		in := validProviderInput()
		in.BudgetPerDay = 1e9
		_, err := uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Budget per day must be at most 99999999.99")
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should require custom hours when hours are Custom", func(t *testing.T) {
		uc := usecase.NewProviderUsecase(new(MockProviderRepo), validation.New())
		in := validProviderInput()
		in.WorkingHours = domain.HoursCustom
		in.CustomHours = ""
		_, err := uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "")
	})

	t.Run("Should upsert for the caller and return the stored view", func(t *testing.T) {
		repo := new(MockProviderRepo)
		view := &domain.ProviderProfileView{ID: 3, WorkType: "Plumbing"}
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.ProviderProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.ProviderProfile)
			assert.Equal(t, int64(11), p.UserID)
			assert.Nil(t, p.CustomHours)
		})
		repo.On("GetViewByUserID", ctx, int64(11)).Return(view, nil)
		uc := usecase.NewProviderUsecase(repo, validation.New())

		got, err := uc.SaveProfile(ctx, 11, validProviderInput())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("Should report persistence failures as server errors", func(t *testing.T) {
		repo := new(MockProviderRepo)
		repo.On("Upsert", ctx, mock.Anything).Return(errors.New("deadlock"))
		uc := usecase.NewProviderUsecase(repo, validation.New())

		_, err := uc.SaveProfile(ctx, 11, validProviderInput())
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
	})
}

func TestGetProfileNotFound(t *testing.T) {
	ctx := context.Background()

	providers := new(MockProviderRepo)
	providers.On("GetViewByUserID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
	_, err := usecase.NewProviderUsecase(providers, validation.New()).GetProfile(ctx, 5)
	assertAppError(t, err, http.StatusNotFound, "Profile not found")

	seekers := new(MockSeekerRepo)
	seekers.On("GetViewByUserID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
	_, err = usecase.NewSeekerUsecase(seekers, validation.New()).GetProfile(ctx, 5)
	assertAppError(t, err, http.StatusNotFound, "Profile not found")
}

func TestSeekerSaveProfile(t *testing.T) {
	ctx := context.Background()
	valid := domain.SeekerProfileInput{
		WorkTypes:         []string{"Painting", " Painting ", "Masonry"},
		ExpectedWage:      600,
		HoursAvailability: "Full Day",
		AvailableDays:     []string{"Mon", "Tue"},
		Location:          "Nashik",
	}

	t.Run("Should require at least one work type", func(t *testing.T) {
		repo := new(MockSeekerRepo)
		uc := usecase.NewSeekerUsecase(repo, validation.New())

		in := valid
		in.WorkTypes = []string{}
		_, err := uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Select at least one work type")

		in.WorkTypes = nil
		_, err = uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Select at least one work type")

		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a wage the money column cannot hold", func(t *testing.T) {
		repo := new(MockSeekerRepo)
		uc := usecase.NewSeekerUsecase(repo, validation.New())

		in := valid
		in.ExpectedWage = 100000000
		_, err := uc.SaveProfile(ctx, 1, in)
		assertAppError(t, err, http.StatusBadRequest, "Expected wage must be at most 99999999.99")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Should apply count limits to distinct values", func(t *testing.T) {
		repo := new(MockSeekerRepo)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.SeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.SeekerProfile)
			assert.Equal(t, []string{"Painting"}, p.WorkTypes)
			assert.Equal(t, []string{"Mon"}, p.AvailableDays)
		})
		repo.On("GetViewByUserID", ctx, int64(6)).Return(&domain.SeekerProfileView{}, nil)
		uc := usecase.NewSeekerUsecase(repo, validation.New())

		in := valid
		in.WorkTypes = make([]string, 25)
		for i := range in.WorkTypes {
			in.WorkTypes[i] = "Painting"
		}
		in.AvailableDays = []string{"Mon", "Mon", "Mon", "Mon", "Mon", "Mon", "Mon", "Mon"}
		_, err := uc.SaveProfile(ctx, 6, in)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should still cap distinct available days", func(t *testing.T) {
		uc := usecase.NewSeekerUsecase(new(MockSeekerRepo), validation.New())

		in := valid
		in.AvailableDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun", "Holiday"}
		_, err := uc.SaveProfile(ctx, 6, in)
		assertAppError(t, err, http.StatusBadRequest, "Available days must contain at most 7 item(s)")
	})

	t.Run("Should save normalised tag sets", func(t *testing.T) {
		repo := new(MockSeekerRepo)
		view := &domain.SeekerProfileView{}
		repo.On("Save", ctx, mock.AnythingOfType("*domain.SeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.SeekerProfile)
			assert.Equal(t, int64(4), p.UserID)
			assert.Equal(t, []string{"Painting", "Masonry"}, p.WorkTypes)
			assert.Equal(t, []string{"Mon", "Tue"}, p.AvailableDays)
		})
		repo.On("GetViewByUserID", ctx, int64(4)).Return(view, nil)
		uc := usecase.NewSeekerUsecase(repo, validation.New())

		got, err := uc.SaveProfile(ctx, 4, valid)
		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("Should report a rolled back save as a server error", func(t *testing.T) {
		repo := new(MockSeekerRepo)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("insert work types: value too long"))
		uc := usecase.NewSeekerUsecase(repo, validation.New())

		_, err := uc.SaveProfile(ctx, 4, valid)
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
		repo.AssertNotCalled(t, "GetViewByUserID", mock.Anything, mock.Anything)
	})
}

func TestListings(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject negative budget bounds", func(t *testing.T) {
		repo := new(MockListingRepo)
		uc := usecase.NewListingUsecase(repo, validation.New())
		neg := -1.0

		_, err := uc.ListSeekers(ctx, domain.SeekerFilter{MaxBudget: &neg})
		assertAppError(t, err, http.StatusBadRequest, "")
		_, err = uc.ListJobs(ctx, domain.JobFilter{MinBudget: &neg})
		assertAppError(t, err, http.StatusBadRequest, "")
		repo.AssertNotCalled(t, "ListSeekers", mock.Anything, mock.Anything)
	})

	t.Run("Should never return nil slices", func(t *testing.T) {
		repo := new(MockListingRepo)
		repo.On("ListSeekers", ctx, domain.SeekerFilter{}).Return(nil, nil)
		repo.On("ListJobs", ctx, domain.JobFilter{}).Return(nil, nil)
		uc := usecase.NewListingUsecase(repo, validation.New())

		seekers, err := uc.ListSeekers(ctx, domain.SeekerFilter{})
		require.NoError(t, err)
		assert.NotNil(t, seekers)

		jobs, err := uc.ListJobs(ctx, domain.JobFilter{})
		require.NoError(t, err)
		assert.NotNil(t, jobs)
	})

	t.Run("Should pass filters through", func(t *testing.T) {
		repo := new(MockListingRepo)
		budget := 500.0
		filter := domain.JobFilter{WorkType: "Plumbing", MinBudget: &budget, Location: "Pune"}
		repo.On("ListJobs", ctx, filter).Return([]domain.JobListing{{ID: 1}}, nil)
		uc := usecase.NewListingUsecase(repo, validation.New())

		jobs, err := uc.ListJobs(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("Should hide store failures", func(t *testing.T) {
		repo := new(MockListingRepo)
		repo.On("ListSeekers", ctx, domain.SeekerFilter{}).Return(nil, errors.New("timeout"))
		uc := usecase.NewListingUsecase(repo, validation.New())

		_, err := uc.ListSeekers(ctx, domain.SeekerFilter{})
		assertAppError(t, err, http.StatusInternalServerError, "Server error")
	})
}

func TestHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("Should be ok with optional dependencies disabled", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": func(context.Context) error { return nil },
			"redis":    nil,
		})
		status, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "up", status["database"])
		assert.Equal(t, "disabled", status["redis"])
	})

	t.Run("Should degrade when a dependency is down", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": func(context.Context) error { return errors.New("refused") },
		})
		status, healthy := uc.Check(ctx)
		assert.False(t, healthy)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "down", status["database"])
	})
}
