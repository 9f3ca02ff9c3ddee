package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/internal/keys"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/errors"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type KeyHandlers struct {
	usecase keys.KeyUsecase
	logger  logger.Logger
}

func NewKeyHandlers(usecase keys.KeyUsecase, logger logger.Logger) *KeyHandlers {
	return &KeyHandlers{usecase: usecase, logger: logger}
}

type uploadKeysRequest struct {
	UserID              uuid.UUID `json:"userId"`
	PublicKey           []byte    `json:"publicKey"`
	EncryptedPrivateKey []byte    `json:"encryptedPrivateKey"`
}

type uploadPassphraseRequest struct {
	UserID     uuid.UUID `json:"userId"`
	CipherText []byte    `json:"cipherText"`
	IV         []byte    `json:"iv"`
}

func (h *KeyHandlers) UploadKeys(w http.ResponseWriter, r *http.Request) {
	var req uploadKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	err := h.usecase.UploadKeys(r.Context(), keys.UploadKeysCommand{
		UserID:              req.UserID,
		PublicKey:           req.PublicKey,
		EncryptedPrivateKey: req.EncryptedPrivateKey,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *KeyHandlers) UploadPassphrase(w http.ResponseWriter, r *http.Request) {
	var req uploadPassphraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	err := h.usecase.UploadPassphrase(r.Context(), keys.UploadPassphraseCommand{
		UserID:     req.UserID,
		CipherText: req.CipherText,
		IV:         req.IV,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *KeyHandlers) GetKeyBundle(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, errors.ErrMissingUserID)
		return
	}

	bundle, err := h.usecase.GetKeyBundle(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (h *KeyHandlers) GetPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, errors.ErrMissingUserID)
		return
	}

	pub, err := h.usecase.GetPublicKey(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"publicKey": pub})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), map[string]string{"error": errors.ClientMessage(err)})
}
