package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/models"
)

// AccountDirectory is what the account endpoints need from the account
// service.
type AccountDirectory interface {
	CreateAccount(ctx context.Context, account models.Account) (*models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccountByIdentity(ctx context.Context, identityRef string) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, updates map[string]interface{}) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// AccountController handles account CRUD and identity lookup.
type AccountController struct {
	Accounts AccountDirectory
}

// NewAccountController initializes the controller
func NewAccountController(accounts AccountDirectory) *AccountController {
	return &AccountController{Accounts: accounts}
}

type createAccountRequest struct {
	IdentityRef    string   `json:"identityRef"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FullName       string   `json:"fullName"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	SearchLocation string   `json:"searchLocation"`
	Mode           string   `json:"mode"`
	ProfilePicture string   `json:"profilePicture"`
	Bio            string   `json:"bio"`
	LifestyleTags  []string `json:"lifestyleTags"`
}

func (r createAccountRequest) missingFields() []string {
	var missing []string
	if r.Username == "" {
		missing = append(missing, "username")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.FullName == "" {
		missing = append(missing, "fullName")
	}
	if r.Age == 0 {
		missing = append(missing, "age")
	}
	if r.SearchLocation == "" {
		missing = append(missing, "searchLocation")
	}
	if r.Mode == "" {
		missing = append(missing, "mode")
	}
	return missing
}

// HandleCreateAccount creates a new account.
func (c *AccountController) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var request createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}

	account, err := c.Accounts.CreateAccount(r.Context(), models.Account{
		IdentityRef:    request.IdentityRef,
		Username:       request.Username,
		Email:          request.Email,
		FullName:       request.FullName,
		Age:            request.Age,
		Gender:         request.Gender,
		SearchLocation: request.SearchLocation,
		Mode:           request.Mode,
		ProfilePicture: request.ProfilePicture,
		Bio:            request.Bio,
		LifestyleTags:  request.LifestyleTags,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, account)
}

// HandleGetAccount fetches an account by id.
func (c *AccountController) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	account, err := c.Accounts.GetAccount(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// HandleGetAccountByIdentity resolves the external auth subject to an
// account during the login handshake.
func (c *AccountController) HandleGetAccountByIdentity(w http.ResponseWriter, r *http.Request) {
	identityRef := mux.Vars(r)["identityRef"]

	account, err := c.Accounts.GetAccountByIdentity(r.Context(), identityRef)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// HandleUpdateAccount applies a partial profile update.
func (c *AccountController) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if len(updates) == 0 {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "no fields to update")
		return
	}

	account, err := c.Accounts.UpdateAccount(r.Context(), userID, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// HandleDeleteAccount removes an account.
func (c *AccountController) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.Accounts.DeleteAccount(r.Context(), userID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}
