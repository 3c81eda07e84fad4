package handlers_test

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	minisiteRepo "ongkit/database/repository/minisite"
	organizationRepo "ongkit/database/repository/organization"
	userRepo "ongkit/database/repository/user"
	"ongkit/handlers"
	"ongkit/models"
	"ongkit/routes"
	"ongkit/services/account"
	"ongkit/services/donation"
	"ongkit/services/minisite"
	"ongkit/services/render"
	"ongkit/services/subscription"
	"ongkit/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Point the session cache at a dead address; lookups fail soft and the
	// middleware falls through to the user repository.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

// fakeMiniSiteRepo mirrors Mongo's $set behavior per supplied key.
type fakeMiniSiteRepo struct {
	byOrg map[string]*models.MiniSiteConfig
}

func (f *fakeMiniSiteRepo) GetByOrgID(orgID string) (*models.MiniSiteConfig, error) {
	cfg, ok := f.byOrg[orgID]
	if !ok {
		return nil, minisiteRepo.ErrNotFound
	}
	out := *cfg
	return &out, nil
}

func (f *fakeMiniSiteRepo) GetBySlug(slug string) (*models.MiniSiteConfig, error) {
	for _, cfg := range f.byOrg {
		if cfg.Slug == slug {
			out := *cfg
			return &out, nil
		}
	}
	return nil, minisiteRepo.ErrNotFound
}

func (f *fakeMiniSiteRepo) Create(cfg *models.MiniSiteConfig) error {
	stored := *cfg
	f.byOrg[cfg.OrgID] = &stored
	return nil
}

func (f *fakeMiniSiteRepo) ApplyPatch(orgID string, patch bson.M) (*models.MiniSiteConfig, error) {
	cfg, ok := f.byOrg[orgID]
	if !ok {
		return nil, minisiteRepo.ErrNotFound
	}
	raw, err := bson.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range patch {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now()
	merged, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.MiniSiteConfig
	if err := bson.Unmarshal(merged, &updated); err != nil {
		return nil, err
	}
	f.byOrg[orgID] = &updated
	out := updated
	return &out, nil
}

func (f *fakeMiniSiteRepo) SlugTaken(slug, excludeOrgID string) (bool, error) {
	for _, cfg := range f.byOrg {
		if cfg.Slug == slug && cfg.OrgID != excludeOrgID {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrgRepo struct {
	byID map[string]*models.Organization
}

func (f *fakeOrgRepo) GetByID(id string) (*models.Organization, error) {
	org, ok := f.byID[id]
	if !ok {
		return nil, organizationRepo.ErrNotFound
	}
	out := *org
	return &out, nil
}

func (f *fakeOrgRepo) GetBySlug(slug string) (*models.Organization, error) {
	for _, org := range f.byID {
		if org.Slug == slug {
			out := *org
			return &out, nil
		}
	}
	return nil, organizationRepo.ErrNotFound
}

func (f *fakeOrgRepo) Create(org *models.Organization) error {
	stored := *org
	f.byID[org.ID] = &stored
	return nil
}

func (f *fakeOrgRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	org, ok := f.byID[id]
	if !ok {
		return organizationRepo.ErrNotFound
	}
	for k, v := range updateDoc {
		switch k {
		case "subscription.plan":
			org.Subscription.Plan, _ = v.(string)
		case "subscription.status":
			org.Subscription.Status, _ = v.(string)
		case "subscription.expiresAt":
			if t, ok := v.(*time.Time); ok {
				org.Subscription.ExpiresAt = t
			} else {
				org.Subscription.ExpiresAt = nil
			}
		case "subscription.reminderSentAt":
			org.Subscription.ReminderSentAt = nil
		}
	}
	return nil
}

func (f *fakeOrgRepo) ListExpiring(cutoff time.Time) ([]models.Organization, error) {
	return nil, nil
}

type fakeUserRepo struct {
	byID map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	usr, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	out := *usr
	return &out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, usr := range f.byID {
		if usr.Email == email {
			out := *usr
			return &out, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, usr := range f.byID {
		if usr.TokenHash != "" && usr.TokenHash == tokenHash {
			out := *usr
			return &out, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (f *fakeUserRepo) Create(usr *models.User) error {
	stored := *usr
	f.byID[usr.ID] = &stored
	return nil
}

func (f *fakeUserRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	usr, ok := f.byID[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for k, v := range updateDoc {
		switch k {
		case "tokenHash":
			usr.TokenHash, _ = v.(string)
		case "orgId":
			usr.OrgID, _ = v.(string)
		case "role":
			usr.Role, _ = v.(string)
		}
	}
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDateRO": render.FormatDateRO,
		"formatRON":    render.FormatRON,
		"formatAmount": render.FormatAmount,
	}
}

// newTestServer wires the full router against in-memory repositories and
// returns a valid Bearer token for the seeded user.
func newTestServer(t *testing.T) (*gin.Engine, string, *fakeOrgRepo) {
	t.Helper()

	orgs := &fakeOrgRepo{byID: map[string]*models.Organization{
		"org-1": {
			ID: "org-1", Name: "ONG Test", Slug: "ong-test", OwnerID: "user-1", Active: true,
			Subscription: models.Subscription{Plan: models.PlanBasic, Status: models.SubscriptionActive},
			CreatedAt:    time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	users := &fakeUserRepo{byID: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "ana@ong-test.ro", Name: "Ana Pop", OrgID: "org-1", Role: "owner"},
	}}
	sites := &fakeMiniSiteRepo{byOrg: map[string]*models.MiniSiteConfig{}}

	token, err := utils.GenerateToken("user-1", "ana@ong-test.ro", time.Hour)
	require.NoError(t, err)
	users.byID["user-1"].TokenHash = utils.HashToken(token)

	miniSite := &minisite.DefaultMiniSiteService{Repo: sites, Orgs: orgs}
	hb := &handlers.HandlerBundle{
		UserRepo:      users,
		MiniSite:      miniSite,
		Accounts:      &account.DefaultAccountService{Users: users, Orgs: orgs},
		Subscriptions: &subscription.DefaultSubscriptionService{Orgs: orgs},
		Donations:     &donation.DefaultDonationService{Sites: miniSite, Logger: zap.NewNop()},
	}

	router := gin.New()
	router.SetFuncMap(templateFuncs())
	router.LoadHTMLGlob("../templates/*.html")
	routes.RegisterRoutes(router, hb)
	return router, token, orgs
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicPagePlanGatingEndToEnd(t *testing.T) {
	router, token, _ := newTestServer(t)

	w := doJSON(router, http.MethodPut, "/api/minisite/components", token, map[string]any{
		"showTeam": true,
		"teamMembers": []any{
			map[string]any{"name": "Maria Ionescu", "role": "Director executiv"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPut, "/api/minisite/identity", token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// On the free plan the team section stays hidden even though the flag is
	// on and the payload exists.
	w = doJSON(router, http.MethodGet, "/s/ong-test", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ONG Test")
	assert.NotContains(t, w.Body.String(), "Maria Ionescu")

	w = doJSON(router, http.MethodPut, "/api/subscription", token, map[string]any{
		"plan": models.PlanElite,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/s/ong-test", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maria Ionescu")
	assert.Contains(t, w.Body.String(), "Director executiv")
}

func TestFAQSaveAndRenderRoundTrip(t *testing.T) {
	router, token, orgs := newTestServer(t)
	orgs.byID["org-1"].Subscription.Plan = models.PlanPro

	w := doJSON(router, http.MethodPut, "/api/minisite/components", token, map[string]any{
		"showFaq": true,
		"faqItems": []any{
			map[string]any{"question": "Cum pot dona?", "answer": "Online sau prin transfer bancar."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/minisite/config", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cfg models.MiniSiteConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	require.Len(t, cfg.FAQItems, 1)
	assert.Equal(t, "Cum pot dona?", cfg.FAQItems[0].Question)
	assert.NotEmpty(t, cfg.FAQItems[0].ItemID, "list items get a server-side handle")

	w = doJSON(router, http.MethodPut, "/api/minisite/identity", token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/s/ong-test", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cum pot dona?")
	assert.Contains(t, w.Body.String(), "Online sau prin transfer bancar.")
}

func TestEmbedSectionsRenderVerbatim(t *testing.T) {
	router, token, _ := newTestServer(t)

	iframe := `<iframe src="https://formular230.ro/ong-test"></iframe>`
	w := doJSON(router, http.MethodPut, "/api/minisite/config", token, map[string]any{
		"showTaxForm":  true,
		"taxFormEmbed": iframe,
		"customCss":    ".hero{background:#123456}",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPut, "/api/minisite/identity", token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Embed snippets are org-authored markup and must reach the page as
	// markup, not as escaped text.
	w = doJSON(router, http.MethodGet, "/s/ong-test", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, iframe)
	assert.NotContains(t, body, "&lt;iframe")
	assert.Contains(t, body, ".hero{background:#123456}")
}

func TestDonateFollowsSiteSlugRename(t *testing.T) {
	router, token, _ := newTestServer(t)

	w := doJSON(router, http.MethodPut, "/api/minisite/identity", token, map[string]any{
		"slug": "ong-test-nou",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(router, http.MethodPut, "/api/minisite/identity", token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Payments are not configured for the seeded org, so a 503 proves the
	// renamed slug resolved; the stale organization slug no longer serves.
	w = doJSON(router, http.MethodPost, "/p/ong-test-nou/donate", "", map[string]any{"amount": 500})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/p/ong-test/donate", "", map[string]any{"amount": 500})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestEditorScopeEnforced(t *testing.T) {
	router, token, _ := newTestServer(t)

	// The content editor does not own teamMembers.
	w := doJSON(router, http.MethodPut, "/api/minisite/content", token, map[string]any{
		"teamMembers": []any{map[string]any{"name": "Ana"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownSlugRenders404(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/s/nu-exista", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthRequiredOnDashboardRoutes(t *testing.T) {
	router, _, _ := newTestServer(t)

	w := doJSON(router, http.MethodGet, "/api/minisite/config", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/minisite/config", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
