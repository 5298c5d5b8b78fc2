package handlers

import (
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/models"
)

const (
	homePath  = "/"
	cartPath  = "/cart/"
	loginPath = "/login/"
)

// cartOwner identifies whose cart a request works on.
func cartOwner(r *http.Request) models.CartOwner {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return models.CartOwner{UserID: &claims.UserID}
	}

	return models.CartOwner{SessionKey: middleware.CartSessionFromContext(r.Context())}
}

// wantsJSON reports whether the caller asked for the JSON envelope instead of a redirect.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func seeOther(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
