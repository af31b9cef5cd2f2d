package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/pkg/utils"
)

type sponsorServiceStub struct {
	items map[uuid.UUID]*entities.Sponsor
	err   error
}

func newSponsorServiceStub() *sponsorServiceStub {
	return &sponsorServiceStub{items: map[uuid.UUID]*entities.Sponsor{}}
}

func (s *sponsorServiceStub) add(name string, active bool) *entities.Sponsor {
	sp := &entities.Sponsor{ID: utils.GenerateUUIDv7(), Name: name, Active: active, CreatedAt: testNow, UpdatedAt: testNow}
	s.items[sp.ID] = sp
	return sp
}

func (s *sponsorServiceStub) GetActive(context.Context) (*entities.Sponsor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, sp := range s.items {
		if sp.Active {
			return sp, nil
		}
	}
	return nil, nil
}

func (s *sponsorServiceStub) List(_ context.Context, p utils.PaginationParams) (utils.Page[*entities.Sponsor], error) {
	out := make([]*entities.Sponsor, 0, len(s.items))
	for _, sp := range s.items {
		out = append(out, sp)
	}
	return utils.NewPage(out, int64(len(out)), p), nil
}

func (s *sponsorServiceStub) Get(_ context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	sp, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFound(msgSponsorNotFound)
	}
	return sp, nil
}

func (s *sponsorServiceStub) Create(_ context.Context, input entities.CreateSponsorInput) (*entities.Sponsor, error) {
	sp := input.ToEntity()
	sp.ID = utils.GenerateUUIDv7()
	s.items[sp.ID] = sp
	return sp, nil
}

func (s *sponsorServiceStub) Update(ctx context.Context, id uuid.UUID, input entities.UpdateSponsorInput) (*entities.Sponsor, error) {
	sp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	input.Apply(sp)
	return sp, nil
}

func (s *sponsorServiceStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.NotFound(msgSponsorNotFound)
	}
	delete(s.items, id)
	return nil
}

func (s *sponsorServiceStub) Activate(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sp := range s.items {
		sp.Active = sp.ID == id
	}
	return target, nil
}

func sponsorRouter(svc sponsorService) http.Handler {
	h := &SponsorHandler{service: svc}
	r := newRouter()
	r.GET("/api/sponsors/active", h.GetActive)
	r.GET("/api/sponsors/admin", h.List)
	r.POST("/api/sponsors/admin", h.Create)
	r.GET("/api/sponsors/admin/:id", h.Get)
	r.PUT("/api/sponsors/admin/:id", h.Update)
	r.DELETE("/api/sponsors/admin/:id", h.Delete)
	r.POST("/api/sponsors/admin/:id/activate", h.Activate)
	return r
}

func TestSponsorHandler_GetActiveNullWhenNone(t *testing.T) {
	svc := newSponsorServiceStub()
	r := sponsorRouter(svc)

	w, env := do(t, r, http.MethodGet, "/api/sponsors/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"success":true,"data":null}`, w.Body.String())

	svc.add("Acme", true)
	_, env = do(t, r, http.MethodGet, "/api/sponsors/active", nil)
	var got entities.Sponsor
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Acme", got.Name)
}

func TestSponsorHandler_CreateAndValidate(t *testing.T) {
	r := sponsorRouter(newSponsorServiceStub())

	w, env := do(t, r, http.MethodPost, "/api/sponsors/admin", map[string]any{
		"name":       "Acme",
		"logoUrl":    "https://acme.test/logo.png",
		"websiteUrl": "https://acme.test",
		"blurb":      "Rockets and more.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got entities.Sponsor
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.False(t, got.Active)

	w, env = do(t, r, http.MethodPost, "/api/sponsors/admin", map[string]any{"name": "Acme", "websiteUrl": "ftp://acme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "Website URL must be a valid URL")
	assert.Contains(t, env.Error, "Blurb is required")
}

func TestSponsorHandler_ActivateUpdateDelete(t *testing.T) {
	svc := newSponsorServiceStub()
	old := svc.add("Old", true)
	next := svc.add("Next", false)
	r := sponsorRouter(svc)

	w, env := do(t, r, http.MethodPost, "/api/sponsors/admin/"+next.ID.String()+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sponsor activated successfully", env.Message)
	assert.False(t, old.Active)
	assert.True(t, next.Active)

	w, env = do(t, r, http.MethodPost, "/api/sponsors/admin/"+uuid.NewString()+"/activate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Sponsor not found", env.Error)

	w, _ = do(t, r, http.MethodPut, "/api/sponsors/admin/"+old.ID.String(), map[string]any{"blurb": "Updated"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated", old.Blurb)

	w, env = do(t, r, http.MethodDelete, "/api/sponsors/admin/"+old.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sponsor deleted successfully", env.Message)

	w, env = do(t, r, http.MethodGet, "/api/sponsors/admin/bogus", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Sponsor not found", env.Error)
}

func TestSponsorHandler_ActivateConflict(t *testing.T) {
	svc := &conflictingSponsorService{sponsorServiceStub: newSponsorServiceStub()}
	sp := svc.add("Acme", false)

	w, env := do(t, sponsorRouter(svc), http.MethodPost, "/api/sponsors/admin/"+sp.ID.String()+"/activate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Another sponsor was activated concurrently, please retry", env.Error)
}

type conflictingSponsorService struct {
	*sponsorServiceStub
}

func (s *conflictingSponsorService) Activate(context.Context, uuid.UUID) (*entities.Sponsor, error) {
	return nil, domainerrors.Conflict("Another sponsor was activated concurrently, please retry")
}

func TestSponsorHandler_List(t *testing.T) {
	svc := newSponsorServiceStub()
	svc.add("A", true)
	svc.add("B", false)

	w, env := do(t, sponsorRouter(svc), http.MethodGet, "/api/sponsors/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page utils.Page[entities.Sponsor]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, utils.DefaultLimit, page.Pagination.Limit)
}
