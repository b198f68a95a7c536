package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sunglassai/outreach/internal/analytics"
	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/crm"
	"github.com/sunglassai/outreach/internal/outreach"
	"github.com/sunglassai/outreach/internal/store"
	"github.com/sunglassai/outreach/internal/template"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*outreach.Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, email *outreach.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type testEnv struct {
	server *Server
	sender *fakeSender
	ts     *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()

	kv, err := store.NewBoltStore(filepath.Join(dir, "outreach.db"))
	if err != nil {
		t.Fatalf("open kv store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	db, err := auth.OpenDB(filepath.Join(dir, "accounts.db"))
	if err != nil {
		t.Fatalf("open accounts db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate accounts db: %v", err)
	}

	sender := &fakeSender{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)

	srv := NewServer(":0", Deps{
		Brands:   crm.NewBrandStore(kv),
		Attempts: crm.NewAttemptStore(kv),
		Users:    auth.NewUserStore(db),
		Tokens:   tokens,
		Verifier: tokens,
		Engine:   template.NewEngine(template.Identity{}),
		Sender:   sender,
		Bulk:     outreach.NewBulkSender(sender, 10, time.Millisecond, logger),
		Logger:   logger,
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{server: srv, sender: sender, ts: ts}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func decodeBody(t *testing.T, res *http.Response, v any) {
	t.Helper()
	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// signup registers a user and returns a valid access token.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	res := e.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": "secret123",
		"name":     "Test User",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d, want %d", res.StatusCode, http.StatusCreated)
	}
	res.Body.Close()

	res = e.do(t, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, res, &body)
	if body.AccessToken == "" {
		t.Fatal("login returned empty access token")
	}
	return body.AccessToken
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/health", "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var body map[string]string
	decodeBody(t, res, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.signup(t, "dup@example.com")

	res := env.do(t, http.MethodPost, "/signup", "", map[string]string{
		"email":    "dup@example.com",
		"password": "another",
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusConflict)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "user@example.com")

	res := env.do(t, http.MethodPost, "/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/brands"},
		{http.MethodGet, "/discover"},
		{http.MethodGet, "/analytics"},
		{http.MethodPost, "/send-email"},
	}
	for _, p := range paths {
		res := env.do(t, p.method, p.path, "", nil)
		res.Body.Close()
		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want %d", p.method, p.path, res.StatusCode, http.StatusUnauthorized)
		}
	}

	res := env.do(t, http.MethodGet, "/brands", "not-a-token", nil)
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want %d", res.StatusCode, http.StatusUnauthorized)
	}
}

func TestBrandLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "brands@example.com")

	res := env.do(t, http.MethodPost, "/brands", token, map[string]any{
		"name":  "Ray-Ban",
		"email": "partnerships@rayban.com",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	var saved struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &saved)
	if saved.ID == "" {
		t.Fatal("save returned empty id")
	}

	// The list endpoint returns the bare array, no envelope.
	res = env.do(t, http.MethodGet, "/brands", token, nil)
	var list []crm.MyBrand
	decodeBody(t, res, &list)
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Fatalf("list = %+v, want single brand with id %s", list, saved.ID)
	}
	if list[0].ContactStatus != crm.StatusNotContacted {
		t.Errorf("contact status = %q, want %q", list[0].ContactStatus, crm.StatusNotContacted)
	}

	res = env.do(t, http.MethodDelete, "/brands/"+saved.ID, token, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	res = env.do(t, http.MethodGet, "/brands", token, nil)
	decodeBody(t, res, &list)
	if len(list) != 0 {
		t.Errorf("list after delete = %+v, want empty", list)
	}
}

func TestBrandsScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup(t, "alice@example.com")
	bob := env.signup(t, "bob@example.com")

	res := env.do(t, http.MethodPost, "/brands", alice, map[string]any{"name": "Persol"})
	var saved struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &saved)

	res = env.do(t, http.MethodGet, "/brands", bob, nil)
	var list []crm.MyBrand
	decodeBody(t, res, &list)
	if len(list) != 0 {
		t.Errorf("bob sees alice's brands: %+v", list)
	}

	res = env.do(t, http.MethodDelete, "/brands/"+saved.ID, bob, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("cross-user delete status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}

func TestDiscover(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "discover@example.com")

	res := env.do(t, http.MethodPost, "/brands", token, map[string]any{"name": "ray-ban"})
	res.Body.Close()

	res = env.do(t, http.MethodGet, "/discover?query=ray-ban", token, nil)
	var body struct {
		Brands []struct {
			Name              string `json:"name"`
			IsAddedToMyBrands bool   `json:"isAddedToMyBrands"`
		} `json:"brands"`
		Categories []string `json:"categories"`
		Total      int      `json:"total"`
	}
	decodeBody(t, res, &body)

	if body.Total != len(body.Brands) || len(body.Brands) == 0 {
		t.Fatalf("total = %d, brands = %d", body.Total, len(body.Brands))
	}
	found := false
	for _, b := range body.Brands {
		if b.Name == "Ray-Ban" {
			found = true
			if !b.IsAddedToMyBrands {
				t.Error("Ray-Ban not marked as added despite case-insensitive match")
			}
		}
	}
	if !found {
		t.Error("query=ray-ban did not return Ray-Ban")
	}
	if len(body.Categories) == 0 || body.Categories[0] != "all" {
		t.Errorf("categories = %v, want \"all\" first", body.Categories)
	}
}

func TestDiscoverExportCSV(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "csv@example.com")

	res := env.do(t, http.MethodGet, "/discover/export?category=luxury", token, nil)
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if ct := res.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("Name,Category,Email")) {
		t.Errorf("csv header missing, got %q", data[:min(len(data), 40)])
	}
}

func TestGenerateEmail(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "gen@example.com")

	res := env.do(t, http.MethodPost, "/generate-email", token, map[string]string{
		"brandName": "Oakley",
		"ceoName":   "Jamie",
		"tone":      "casual",
	})
	var body struct {
		Subject      string `json:"subject"`
		Body         string `json:"body"`
		EmailContent string `json:"emailContent"`
	}
	decodeBody(t, res, &body)

	if !bytes.Contains([]byte(body.Body), []byte("Oakley")) {
		t.Error("body does not mention the brand")
	}
	if !bytes.Contains([]byte(body.Body), []byte("Jamie")) {
		t.Error("body does not use the CEO name greeting")
	}
	if !bytes.HasPrefix([]byte(body.EmailContent), []byte("Subject: "+body.Subject)) {
		t.Errorf("emailContent does not start with the subject line: %q", body.EmailContent)
	}

	// An empty brand name is not rejected; it is interpolated as-is.
	res = env.do(t, http.MethodPost, "/generate-email", token, map[string]string{})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("empty brandName status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	decodeBody(t, res, &body)
	if body.EmailContent == "" {
		t.Error("empty brandName produced no template output")
	}
}

func TestSendEmailSuccess(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "send@example.com")

	res := env.do(t, http.MethodPost, "/send-email", token, map[string]string{
		"to":      "ceo@brand.com",
		"subject": "Hello",
		"content": "Partnership proposal",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	var body struct {
		CampaignID string `json:"campaignId"`
	}
	decodeBody(t, res, &body)
	if body.CampaignID == "" {
		t.Fatal("empty campaignId")
	}
	if len(env.sender.sent) != 1 || env.sender.sent[0].To != "ceo@brand.com" {
		t.Fatalf("sender saw %+v, want one email to ceo@brand.com", env.sender.sent)
	}

	// Campaign lookup returns the bare record.
	res = env.do(t, http.MethodGet, "/campaigns/"+body.CampaignID, token, nil)
	var campaign crm.SendAttempt
	decodeBody(t, res, &campaign)
	if campaign.Status != crm.SendStatusSent {
		t.Errorf("campaign status = %q, want %q", campaign.Status, crm.SendStatusSent)
	}

	// Analytics returns the bare snapshot.
	res = env.do(t, http.MethodGet, "/analytics", token, nil)
	var stats analytics.Snapshot
	decodeBody(t, res, &stats)
	if stats.TotalEmails != 1 || stats.SentEmails != 1 {
		t.Errorf("analytics = %+v, want 1 total, 1 sent", stats)
	}
}

func TestSendEmailFailureRecorded(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "fail@example.com")
	env.sender.err = errors.New("provider down")

	res := env.do(t, http.MethodPost, "/send-email", token, map[string]string{
		"to":      "ceo@brand.com",
		"subject": "Hello",
		"content": "Proposal",
	})
	res.Body.Close()
	if res.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadGateway)
	}

	res = env.do(t, http.MethodGet, "/analytics", token, nil)
	var stats analytics.Snapshot
	decodeBody(t, res, &stats)
	if stats.TotalEmails != 1 || stats.FailedEmails != 1 {
		t.Errorf("analytics = %+v, want the failed attempt recorded", stats)
	}
}

func TestSendEmailEmptyFieldsStillRecorded(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "empty@example.com")
	env.sender.err = errors.New("provider rejected empty recipient")

	// No field validation happens before the provider call: the send
	// fails downstream and the attempt is recorded like any other.
	res := env.do(t, http.MethodPost, "/send-email", token, map[string]string{})
	res.Body.Close()
	if res.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadGateway)
	}

	res = env.do(t, http.MethodGet, "/analytics", token, nil)
	var stats analytics.Snapshot
	decodeBody(t, res, &stats)
	if stats.TotalEmails != 1 || stats.FailedEmails != 1 {
		t.Errorf("analytics = %+v, want the empty-field attempt recorded as failed", stats)
	}
}

func TestOIDCEndpointDisabled(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/auth/oidc", "", nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}

func TestSendEmailMarksContacted(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "contact@example.com")

	res := env.do(t, http.MethodPost, "/brands", token, map[string]any{
		"name":  "Persol",
		"email": "info@persol.com",
	})
	var saved struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &saved)

	res = env.do(t, http.MethodPost, "/send-email", token, map[string]string{
		"to":      "info@persol.com",
		"subject": "Hello",
		"content": "Proposal",
		"brandId": saved.ID,
	})
	res.Body.Close()

	res = env.do(t, http.MethodGet, "/brands", token, nil)
	var list []crm.MyBrand
	decodeBody(t, res, &list)
	if len(list) != 1 {
		t.Fatalf("got %d brands, want 1", len(list))
	}
	if list[0].ContactStatus != crm.StatusContacted {
		t.Errorf("contact status = %q, want %q", list[0].ContactStatus, crm.StatusContacted)
	}
	if list[0].LastContact == nil {
		t.Error("lastContact not set after send")
	}
}

func TestSendBulk(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "bulk@example.com")

	var ids []string
	for _, name := range []string{"Oakley", "Persol", "Warby Parker"} {
		res := env.do(t, http.MethodPost, "/brands", token, map[string]any{
			"name":  name,
			"email": "hello@" + name + ".com",
		})
		var saved struct {
			ID string `json:"id"`
		}
		decodeBody(t, res, &saved)
		ids = append(ids, saved.ID)
	}

	res := env.do(t, http.MethodPost, "/send-bulk", token, map[string]any{"brandIds": ids})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	var body struct {
		Summary outreach.BulkSummary `json:"summary"`
	}
	decodeBody(t, res, &body)
	if body.Summary.Successful != 3 || body.Summary.Failed != 0 {
		t.Fatalf("summary = %+v, want 3 successful", body.Summary)
	}

	res = env.do(t, http.MethodGet, "/analytics", token, nil)
	var stats analytics.Snapshot
	decodeBody(t, res, &stats)
	if stats.TotalEmails != 3 {
		t.Errorf("analytics total = %d, want 3", stats.TotalEmails)
	}
}

func TestBulkPreview(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "preview@example.com")

	res := env.do(t, http.MethodPost, "/brands", token, map[string]any{
		"name":  "Oakley",
		"email": "hello@oakley.com",
	})
	var saved struct {
		ID string `json:"id"`
	}
	decodeBody(t, res, &saved)

	res = env.do(t, http.MethodPost, "/send-bulk/preview", token, map[string]any{
		"brandIds": []string{saved.ID},
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !bytes.Contains(data, []byte("EMAIL 1/1")) || !bytes.Contains(data, []byte("Oakley")) {
		t.Errorf("preview missing expected content:\n%s", data)
	}
	if len(env.sender.sent) != 0 {
		t.Errorf("preview sent %d emails, want none", len(env.sender.sent))
	}
}

func TestSendBulkUnknownBrand(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "bulk404@example.com")

	res := env.do(t, http.MethodPost, "/send-bulk", token, map[string]any{
		"brandIds": []string{"no-such-brand"},
	})
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "c404@example.com")

	res := env.do(t, http.MethodGet, "/campaigns/does-not-exist", token, nil)
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}
