package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/HafidLAADIMI/admin-restau-app/helper"
	"github.com/HafidLAADIMI/admin-restau-app/models"
	"github.com/HafidLAADIMI/admin-restau-app/services"
	"github.com/HafidLAADIMI/admin-restau-app/store"
)

// AdminController manages back-office accounts: signup, login, and the
// token pair persisted on the admin document.
type AdminController struct {
	store  services.CatalogStore
	secret string
}

func NewAdminController(st services.CatalogStore, secret string) *AdminController {
	return &AdminController{store: st, secret: secret}
}

func (c *AdminController) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var admin models.Admin
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(admin); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	existing, err := c.store.QueryDocs(ctx, store.CollAdmins, "email", *admin.Email)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if len(existing) > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*admin.Password)
	now := time.Now()

	phone := ""
	if admin.Phone != nil {
		phone = *admin.Phone
	}

	adminId, err := c.store.AddDoc(ctx, store.CollAdmins, map[string]interface{}{
		"firstName": *admin.FirstName,
		"lastName":  *admin.LastName,
		"email":     *admin.Email,
		"password":  password,
		"phone":     phone,
		"createdAt": now,
		"updatedAt": now,
	})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Admin creation failed"}`, http.StatusInternalServerError)
		return
	}

	token, refreshToken, err := helper.GenerateAllTokens(c.secret, *admin.Email, *admin.FirstName, *admin.LastName, adminId)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Token generation failed"}`, http.StatusInternalServerError)
		return
	}
	c.saveTokens(ctx, adminId, token, refreshToken)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Admin created successfully",
		"data": map[string]interface{}{
			"admin_id":      adminId,
			"email":         *admin.Email,
			"first_name":    *admin.FirstName,
			"last_name":     *admin.LastName,
			"token":         token,
			"refresh_token": refreshToken,
		},
	})
}

func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var credentials struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(credentials); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	docs, err := c.store.QueryDocs(ctx, store.CollAdmins, "email", credentials.Email)
	if err != nil || len(docs) == 0 {
		http.Error(w, `{"success": false, "message": "Admin not found"}`, http.StatusUnauthorized)
		return
	}

	doc := docs[0]
	hashed, _ := doc.Data["password"].(string)
	passwordIsValid, msg := VerifyPassword(credentials.Password, hashed)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusUnauthorized)
		return
	}

	firstName, _ := doc.Data["firstName"].(string)
	lastName, _ := doc.Data["lastName"].(string)

	token, refreshToken, err := helper.GenerateAllTokens(c.secret, credentials.Email, firstName, lastName, doc.ID)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Token generation failed"}`, http.StatusInternalServerError)
		return
	}
	c.saveTokens(ctx, doc.ID, token, refreshToken)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"data": map[string]interface{}{
			"admin_id":      doc.ID,
			"email":         credentials.Email,
			"first_name":    firstName,
			"last_name":     lastName,
			"token":         token,
			"refresh_token": refreshToken,
		},
	})
}

// saveTokens persists the freshly issued token pair on the admin document.
// A failure here is logged but does not fail the login: the tokens are
// already on their way to the client.
func (c *AdminController) saveTokens(ctx context.Context, adminId, token, refreshToken string) {
	err := c.store.UpdateDoc(ctx, store.CollAdmins, adminId, map[string]interface{}{
		"token":        token,
		"refreshToken": refreshToken,
		"updatedAt":    time.Now(),
	})
	if err != nil {
		log.Printf("[saveTokens] persisting tokens for admin %s failed: %v", adminId, err)
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}
