package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aos-tools/intake-server/internal/adapters/pdf"
	"github.com/aos-tools/intake-server/internal/domain"
	"github.com/aos-tools/intake-server/internal/forms"
	"github.com/aos-tools/intake-server/internal/ports"
)

type Handler struct {
	repo   ports.IntakeRepository
	filler ports.FormFiller
}

func New(repo ports.IntakeRepository, filler ports.FormFiller) *Handler {
	return &Handler{repo: repo, filler: filler}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)

	mux.HandleFunc("GET /api/intake", h.getIntake)
	mux.HandleFunc("PUT /api/intake", h.putIntake)
	mux.HandleFunc("DELETE /api/intake", h.resetIntake)
	mux.HandleFunc("GET /api/intake/validation", h.validation)
	mux.HandleFunc("GET /api/intake/summary.pdf", h.summaryPDF)

	mux.HandleFunc("POST /api/intake/addresses", h.addAddress)
	mux.HandleFunc("PUT /api/intake/addresses/{id}", h.updateAddress)
	mux.HandleFunc("DELETE /api/intake/addresses/{id}", h.removeAddress)

	mux.HandleFunc("GET /api/forms", h.listForms)
	mux.HandleFunc("GET /api/forms/{slug}/fields", h.formFields)
	mux.HandleFunc("GET /api/forms/{slug}/payload", h.formPayload)
	mux.HandleFunc("POST /api/forms/{slug}/generate", h.generate)

	mux.HandleFunc("GET /api/options/months", h.monthOptions)
	mux.HandleFunc("GET /api/options/years", h.yearOptions)
	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"ok": true})
}

// ── Intake record ─────────────────────────────────────────────────────────────

func (h *Handler) getIntake(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, data)
}

func (h *Handler) putIntake(w http.ResponseWriter, r *http.Request) {
	var data domain.IntakeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid intake record: "+err.Error(), 400)
		return
	}
	data = data.Normalize()
	if err := h.repo.Save(r.Context(), data); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, data)
}

func (h *Handler) resetIntake(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validation reports per-entry messages plus any significant gaps so the
// wizard can prompt for explanations.
func (h *Handler) validation(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, struct {
		Errors map[string]string `json:"errors"`
		Gaps   []domain.Gap      `json:"gaps"`
	}{
		Errors: domain.ValidateAllAddresses(data.Addresses),
		Gaps:   domain.FindGaps(data.Addresses),
	})
}

func (h *Handler) summaryPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	var buf bytes.Buffer
	if err := pdf.GenerateSummary(&data, domain.FindGaps(data.Addresses), &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("intake_summary_%s.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

// ── Address history ───────────────────────────────────────────────────────────

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var entry domain.AddressEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid address: "+err.Error(), 400)
		return
	}
	if entry.ID == "" {
		entry.ID = domain.NewAddressEntry().ID
	}
	if err := h.repo.AddAddress(r.Context(), entry); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	h.respondAddresses(w, r)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var entry domain.AddressEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "invalid address: "+err.Error(), 400)
		return
	}
	entry.ID = r.PathValue("id")
	if err := h.repo.UpdateAddress(r.Context(), entry); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	h.respondAddresses(w, r)
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.RemoveAddress(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	h.respondAddresses(w, r)
}

func (h *Handler) respondAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.repo.Addresses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, addresses)
}

// ── Forms ─────────────────────────────────────────────────────────────────────

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, forms.Available())
}

func (h *Handler) formFields(w http.ResponseWriter, r *http.Request) {
	infos := forms.AddressFieldsForForm(r.PathValue("slug"))
	if infos == nil {
		http.Error(w, "unknown form", 404)
		return
	}
	writeJSON(w, infos)
}

// formPayload previews the exact fill-service request for a form.
func (h *Handler) formPayload(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, ok := forms.Catalog[slug]; !ok {
		http.Error(w, "unknown form", 404)
		return
	}
	data, err := h.repo.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, forms.BuildPayload(slug, &data))
}

// generate builds the payload and has the fill service render the form.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, ok := forms.Catalog[slug]; !ok {
		http.Error(w, "unknown form", 404)
		return
	}
	data, err := h.repo.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	payload := forms.BuildPayload(slug, &data)
	doc, err := h.filler.Fill(r.Context(), slug, payload)
	if err != nil {
		http.Error(w, err.Error(), 502)
		return
	}
	filename := fmt.Sprintf("%s_%s.pdf", slug, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(doc)
}

// ── Options ───────────────────────────────────────────────────────────────────

func (h *Handler) monthOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, domain.MonthOptions())
}

func (h *Handler) yearOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, domain.YearOptions())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
