package handler // handler package contains Vault profile handlers

import (
	"errors"   // errors for sentinel comparisons against repository failures
	"net/http" // http defines status codes
	"strings"  // strings helps with trimming input fields

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/grooveops/server/internal/model"
	"github.com/grooveops/server/internal/repository"
)

// VaultHandler serves the DJ profile CRUD ("the Vault"). It owns only the
// DJ repository; lineup drafting and events read from the same table
// through their own handlers.
type VaultHandler struct {
	DJRepo *repository.DJRepo // DJRepo provides Vault persistence
}

// NewVaultHandler constructs a VaultHandler and panics if the repository
// is nil.
func NewVaultHandler(djRepo *repository.DJRepo) *VaultHandler {
	if djRepo == nil {
		panic("nil repository passed to NewVaultHandler")
	}
	return &VaultHandler{DJRepo: djRepo}
}

// djBody is the JSON shape accepted on create and update. Genres and
// vibes may arrive as arrays or comma-separated strings; both are cleaned
// into lowercase tag lists.
type djBody struct {
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	ContactNumber  string  `json:"contact_number"`
	PreferredComms string  `json:"preferred_comms"`
	Alias          string  `json:"alias"`
	Bio            string  `json:"bio"`
	IGLink         string  `json:"ig_link"`
	FeeCents       uint32  `json:"fee_cents"`
	Genres         tagList `json:"genres"`
	Vibes          tagList `json:"vibes"`
	Experience     string  `json:"experience"`
	BankName       string  `json:"bank_name"`
	AccountHolder  string  `json:"account_holder"`
	AccountNumber  string  `json:"account_number"`
	ProfilePic     string  `json:"profile_pic"`
	MixURL         string  `json:"mix_url"`
}

// toModel converts the request body into a model.DJ, applying defaults
// the profile form applies: email is lowercased, comms defaults to email
// and experience to regular.
func (b djBody) toModel() model.DJ {
	comms := strings.TrimSpace(b.PreferredComms)
	switch comms {
	case model.CommsWhatsapp, model.CommsIG, model.CommsEmail:
	default:
		comms = model.CommsEmail
	}
	exp := strings.TrimSpace(b.Experience)
	switch exp {
	case "bedroom", "regular", "pro":
	default:
		exp = "regular"
	}
	return model.DJ{
		Email:          strings.ToLower(strings.TrimSpace(b.Email)),
		Name:           strings.TrimSpace(b.Name),
		Surname:        strings.TrimSpace(b.Surname),
		ContactNumber:  strings.TrimSpace(b.ContactNumber),
		PreferredComms: comms,
		Alias:          strings.TrimSpace(b.Alias),
		Bio:            b.Bio,
		IGLink:         strings.TrimSpace(b.IGLink),
		FeeCents:       b.FeeCents,
		Genres:         b.Genres,
		Vibes:          b.Vibes,
		Experience:     exp,
		BankName:       strings.TrimSpace(b.BankName),
		AccountHolder:  strings.TrimSpace(b.AccountHolder),
		AccountNumber:  strings.TrimSpace(b.AccountNumber),
		ProfilePic:     strings.TrimSpace(b.ProfilePic),
		MixURL:         strings.TrimSpace(b.MixURL),
	}
}

// CreateDJ handles POST /v1/djs and registers a new profile in the Vault.
func (h *VaultHandler) CreateDJ(c echo.Context) error {
	var body djBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	dj := body.toModel()
	if dj.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email is required"})
	}
	if dj.Name == "" || dj.Surname == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and surname are required"})
	}
	if dj.Alias == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "alias is required"})
	}
	if err := h.DJRepo.Create(c.Request().Context(), &dj); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "this email is already registered in the Vault"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create dj profile"})
	}
	return c.JSON(http.StatusCreated, dj)
}

// GetDJs handles GET /v1/djs and returns every profile, newest first.
func (h *VaultHandler) GetDJs(c echo.Context) error {
	djs, err := h.DJRepo.GetAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch djs"})
	}
	return c.JSON(http.StatusOK, djs)
}

// GetDJ handles GET /v1/djs/:id and returns one profile.
func (h *VaultHandler) GetDJ(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid dj id"})
	}
	dj, err := h.DJRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrDJNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "dj not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch dj"})
	}
	return c.JSON(http.StatusOK, dj)
}

// UpdateDJ handles PUT /v1/djs/:id and rewrites a profile in full.
func (h *VaultHandler) UpdateDJ(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid dj id"})
	}
	var body djBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	dj := body.toModel()
	dj.ID = id
	err := h.DJRepo.Update(c.Request().Context(), &dj)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNoChange):
		// An identical update is fine; return the stored profile.
		dj, err = h.DJRepo.GetByID(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not fetch dj"})
		}
	case errors.Is(err, repository.ErrDJNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dj not found"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "this email is already registered in the Vault"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update dj"})
	}
	return c.JSON(http.StatusOK, dj)
}

// DeleteDJ handles DELETE /v1/djs/:id. Confirmed lineups keep their
// snapshots, so deleting a profile never rewrites event history.
func (h *VaultHandler) DeleteDJ(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid dj id"})
	}
	if err := h.DJRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrDJNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "dj not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete dj"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "dj deleted successfully"})
}
