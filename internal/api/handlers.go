package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sunglassai/outreach/internal/analytics"
	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/catalog"
	"github.com/sunglassai/outreach/internal/crm"
	"github.com/sunglassai/outreach/internal/outreach"
	"github.com/sunglassai/outreach/internal/template"
)

func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		sendError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.users.Create(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			sendError(w, http.StatusConflict, "email already registered")
			return
		}
		s.logger.Error("signup failed", "email", req.Email, "error", err)
		sendError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		sendError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if s.tokens == nil {
		sendError(w, http.StatusBadRequest, "local login is disabled, use the OIDC provider")
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("token issue failed", "user_id", user.ID, "error", err)
		sendError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"accessToken": token,
		"user":        user,
	})
}

// handleOIDCEndpoint publishes the provider's OAuth2 endpoints so
// clients driving the authorization-code flow themselves can discover
// them without hard-coding the issuer.
func (s *Server) handleOIDCEndpoint(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		sendError(w, http.StatusNotFound, "OIDC is not enabled")
		return
	}

	endpoint, err := auth.Endpoint(r.Context(), s.oidc.IssuerURL)
	if err != nil {
		s.logger.Error("OIDC endpoint discovery failed", "issuer", s.oidc.IssuerURL, "error", err)
		sendError(w, http.StatusBadGateway, "failed to discover provider endpoints")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{
		"issuer":                s.oidc.IssuerURL,
		"clientId":              s.oidc.ClientID,
		"authorizationEndpoint": endpoint.AuthURL,
		"tokenEndpoint":         endpoint.TokenURL,
	})
}

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.brands.ListByUser(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error("list brands failed", "error", err)
		sendError(w, http.StatusInternalServerError, "failed to list brands")
		return
	}

	sendJSON(w, http.StatusOK, brands)
}

func (s *Server) handleSaveBrand(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	var brand crm.MyBrand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An edit must target a record the caller owns.
	if brand.ID != "" {
		existing, err := s.brands.Get(r.Context(), brand.ID)
		if err != nil {
			s.logger.Error("load brand failed", "id", brand.ID, "error", err)
			sendError(w, http.StatusInternalServerError, "failed to save brand")
			return
		}
		if existing != nil && existing.UserID != userID {
			sendError(w, http.StatusNotFound, "brand not found")
			return
		}
		if existing != nil {
			brand.CreatedAt = existing.CreatedAt
		}
	}
	brand.UserID = userID

	if err := s.brands.Save(r.Context(), &brand); err != nil {
		s.logger.Error("save brand failed", "error", err)
		sendError(w, http.StatusInternalServerError, "failed to save brand")
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      brand.ID,
	})
}

func (s *Server) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := userIDFrom(r.Context())

	brand, err := s.brands.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("load brand failed", "id", id, "error", err)
		sendError(w, http.StatusInternalServerError, "failed to delete brand")
		return
	}
	if brand != nil && brand.UserID != userID {
		sendError(w, http.StatusNotFound, "brand not found")
		return
	}

	// Deleting an absent brand succeeds: the desired state holds.
	if err := s.brands.Delete(r.Context(), id); err != nil {
		s.logger.Error("delete brand failed", "id", id, "error", err)
		sendError(w, http.StatusInternalServerError, "failed to delete brand")
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")

	results := catalog.FilterByCategory(catalog.Search(catalog.All(), query), category)

	owned, err := s.brands.ListByUser(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error("list brands failed", "error", err)
		sendError(w, http.StatusInternalServerError, "failed to load brands")
		return
	}
	ownedNames := make([]string, 0, len(owned))
	for _, b := range owned {
		ownedNames = append(ownedNames, b.Name)
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"brands":     catalog.MarkAdded(results, ownedNames),
		"categories": catalog.Categories(),
		"total":      len(results),
	})
}

func (s *Server) handleDiscoverExport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")

	results := catalog.FilterByCategory(catalog.Search(catalog.All(), query), category)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sunglasses-brands.csv"`)
	if err := catalog.WriteCSV(w, results); err != nil {
		s.logger.Error("csv export failed", "error", err)
	}
}

func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BrandName string `json:"brandName"`
		CEOName   string `json:"ceoName"`
		Tone      string `json:"tone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// No field validation: an empty brand name is interpolated as-is.
	email := s.engine.Generate(req.BrandName, req.CEOName, template.ParseTone(req.Tone))

	sendJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"subject":      email.Subject,
		"body":         email.Body,
		"emailContent": email.Content(),
	})
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	var req struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		Content string `json:"content"`
		BrandID string `json:"brandId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Fields are passed through unvalidated; a bad recipient fails at
	// the provider and is recorded as a failed attempt like any other.
	sendErr := s.sender.Send(r.Context(), &outreach.Email{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Content,
	})

	// The attempt is recorded whether or not delivery succeeded, so
	// the analytics view reflects failures too.
	attempt := &crm.SendAttempt{
		To:      req.To,
		Subject: req.Subject,
		Content: req.Content,
		BrandID: req.BrandID,
		Status:  crm.SendStatusSent,
		UserID:  userID,
	}
	if sendErr != nil {
		attempt.Status = crm.SendStatusFailed
	}
	if err := s.attempts.Record(r.Context(), attempt); err != nil {
		s.logger.Error("record attempt failed", "error", err)
	}
	if err := s.attempts.BumpDayCounter(r.Context(), attempt.SentAt); err != nil {
		s.logger.Error("bump day counter failed", "error", err)
	}
	if s.metrics != nil {
		s.metrics.RecordEmail(attempt.Status)
	}

	if sendErr != nil {
		s.logger.Warn("send failed", "to", req.To, "error", sendErr)
		sendError(w, http.StatusBadGateway, "failed to send email")
		return
	}

	s.markContacted(r, req.BrandID, attempt.SentAt)

	sendJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"campaignId": attempt.ID,
	})
}

// markContacted updates the contact status of the caller's brand after
// a successful send. Best effort: a miss here never fails the send.
func (s *Server) markContacted(r *http.Request, brandID string, at time.Time) {
	if brandID == "" {
		return
	}

	brand, err := s.brands.Get(r.Context(), brandID)
	if err != nil || brand == nil || brand.UserID != userIDFrom(r.Context()) {
		return
	}

	brand.ContactStatus = crm.StatusContacted
	brand.LastContact = &at
	if err := s.brands.Save(r.Context(), brand); err != nil {
		s.logger.Error("update contact status failed", "brand_id", brandID, "error", err)
	}
}

func (s *Server) handleSendBulk(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	var req struct {
		BrandIDs []string `json:"brandIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.BrandIDs) == 0 {
		sendError(w, http.StatusBadRequest, "brandIds is required")
		return
	}

	var targets []outreach.Target
	for _, id := range req.BrandIDs {
		brand, err := s.brands.Get(r.Context(), id)
		if err != nil {
			s.logger.Error("load brand failed", "id", id, "error", err)
			sendError(w, http.StatusInternalServerError, "failed to load brands")
			return
		}
		if brand == nil || brand.UserID != userID {
			sendError(w, http.StatusNotFound, "brand not found: "+id)
			return
		}
		if brand.Email == "" {
			sendError(w, http.StatusBadRequest, "brand has no email: "+brand.Name)
			return
		}
		targets = append(targets, outreach.Target{
			BrandID:   brand.ID,
			BrandName: brand.Name,
			Email:     brand.Email,
		})
	}

	subject := s.engine.PartnershipSubject()
	summary := s.bulk.SendAll(r.Context(), targets, func(t outreach.Target) *outreach.Email {
		body := s.engine.Partnership(t.BrandName)
		email := &outreach.Email{To: t.Email, Subject: subject, Text: body}
		if html, err := s.engine.PartnershipHTML(t.BrandName); err == nil {
			email.HTML = html
		}
		return email
	})

	now := time.Now().UTC()
	for i, result := range summary.Results {
		status := crm.SendStatusSent
		if !result.Success {
			status = crm.SendStatusFailed
		}
		attempt := &crm.SendAttempt{
			To:      targets[i].Email,
			Subject: subject,
			Content: s.engine.Partnership(targets[i].BrandName),
			BrandID: targets[i].BrandID,
			Status:  status,
			UserID:  userID,
		}
		if err := s.attempts.Record(r.Context(), attempt); err != nil {
			s.logger.Error("record attempt failed", "error", err)
		}
		if err := s.attempts.BumpDayCounter(r.Context(), attempt.SentAt); err != nil {
			s.logger.Error("bump day counter failed", "error", err)
		}
		if s.metrics != nil {
			s.metrics.RecordEmail(status)
		}
		if result.Success {
			s.markContacted(r, targets[i].BrandID, now)
		}
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"summary": summary,
	})
}

// handleBulkPreview renders the campaign as a flat text file so the
// emails can be reviewed before anything is sent.
func (s *Server) handleBulkPreview(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	var req struct {
		BrandIDs []string `json:"brandIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.BrandIDs) == 0 {
		sendError(w, http.StatusBadRequest, "brandIds is required")
		return
	}

	var targets []template.BulkTarget
	for _, id := range req.BrandIDs {
		brand, err := s.brands.Get(r.Context(), id)
		if err != nil {
			s.logger.Error("load brand failed", "id", id, "error", err)
			sendError(w, http.StatusInternalServerError, "failed to load brands")
			return
		}
		if brand == nil || brand.UserID != userID {
			sendError(w, http.StatusNotFound, "brand not found: "+id)
			return
		}
		targets = append(targets, template.BulkTarget{Name: brand.Name, Email: brand.Email})
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="outreach-campaign.txt"`)
	io.WriteString(w, s.engine.BulkText(targets, time.Now()))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	attempts, err := s.attempts.ListByUser(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.logger.Error("list attempts failed", "error", err)
		sendError(w, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	sendJSON(w, http.StatusOK, analytics.Aggregate(attempts))
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	attempt, err := s.attempts.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("load attempt failed", "id", id, "error", err)
		sendError(w, http.StatusInternalServerError, "failed to load campaign")
		return
	}
	if attempt == nil || attempt.UserID != userIDFrom(r.Context()) {
		sendError(w, http.StatusNotFound, "campaign not found")
		return
	}

	sendJSON(w, http.StatusOK, attempt)
}
