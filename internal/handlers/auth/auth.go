package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pajorstaer/rankshop/internal/dto"
	pkgauth "github.com/pajorstaer/rankshop/pkg/auth"
	"github.com/pajorstaer/rankshop/pkg/utils"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	passwordHash string
	hashService  pkgauth.HashServiceInterface
	jwtService   pkgauth.JWTServiceInterface
}

func New(passwordHash string, hashService pkgauth.HashServiceInterface, jwtService pkgauth.JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		passwordHash: passwordHash,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

// Login godoc
//
//	@Summary		Operator login
//	@Description	Check the operator passphrase against the configured bcrypt hash and issue a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO		true	"Login payload"
//	@Success		200		{object}	dto.LoginResponseDTO	"Bearer token"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Wrong passphrase"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Operator == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "operator and password are required")
		return
	}

	if h.passwordHash == "" || !h.hashService.ComparePassword(h.passwordHash, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.jwtService.GenerateJWT(req.Operator, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{Token: token})
}
