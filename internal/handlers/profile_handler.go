package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/dto"
	"VCARD_BACK-END/internal/imageenc"
	"VCARD_BACK-END/internal/models"
	"VCARD_BACK-END/internal/store"
	"VCARD_BACK-END/internal/utils"
)

// ImageEncoder turns uploaded bytes into a data URI
type ImageEncoder interface {
	FromUpload(data []byte, filename string) (string, error)
}

type ProfileHandler struct {
	store          *store.Store
	encoder        ImageEncoder
	logger         *zap.Logger
	maxUploadBytes int64
}

func NewProfileHandler(s *store.Store, enc ImageEncoder, logger *zap.Logger, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{store: s, encoder: enc, logger: logger, maxUploadBytes: maxUploadBytes}
}

// Handle dispatches /api/profile by method
func (h *ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.Get(w, r)
	case http.MethodPut, http.MethodPatch:
		h.Update(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET, PUT, PATCH are allowed")
	}
}

// Get godoc
// @Summary      Get the card profile
// @Description  Current profile record. Responds 503 while images are still being encoded.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      503  {object}  dto.LoadingResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if writeLoading(w, h.store) {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{Profile: h.store.Current()})
}

// Update godoc
// @Summary      Update the card profile
// @Description  Partial update. Omitted fields keep their value; socialLinks and galleryImages are replaced whole.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      dto.ProfileUpdateRequest  true  "Profile update payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profile [put]
// @Router       /api/profile [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileUpdateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rec, err := h.store.Update(r.Context(), patch)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "failed to save profile")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		Profile: rec,
		Message: "Profile updated successfully",
	})
}

// UploadImage godoc
// @Summary      Upload the profile photo
// @Description  Multipart form with a "file" field. The image is stored as a data URI.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/profile/image [post]
func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	uri, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	rec, err := h.store.Update(r.Context(), models.ProfilePatch{ProfileImage: &uri})
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "failed to save profile")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{Profile: rec, Message: "Profile image updated"})
}

// UploadGalleryImage godoc
// @Summary      Add a gallery image
// @Description  Multipart form with a "file" field. The image is appended to galleryImages.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/profile/gallery [post]
func (h *ProfileHandler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	uri, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	rec, err := h.store.UpdateWith(r.Context(), func(cur models.ProfileRecord) (models.ProfilePatch, bool) {
		gallery := append(cur.GalleryImages, uri)
		return models.ProfilePatch{GalleryImages: &gallery}, true
	})
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "failed to save profile")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{Profile: rec, Message: "Gallery image added"})
}

func (h *ProfileHandler) readUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only POST is allowed")
		return "", false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", "image is too large")
			return "", false
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "multipart field \"file\" is required")
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return "", false
	}

	uri, err := h.encoder.FromUpload(data, header.Filename)
	switch {
	case errors.Is(err, imageenc.ErrTooLarge):
		utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large", "image is too large")
		return "", false
	case errors.Is(err, imageenc.ErrNotImage):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "file is not an image")
		return "", false
	case err != nil:
		h.logger.Error("encode upload failed", zap.String("filename", header.Filename), zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "failed to encode image")
		return "", false
	}
	return uri, true
}

// ---------- helpers ----------

// writeLoading answers 503 while the image migration runs
func writeLoading(w http.ResponseWriter, s *store.Store) bool {
	if !s.Loading() {
		return false
	}
	w.Header().Set("Retry-After", "1")
	utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.LoadingResponse{Status: "loading"})
	return true
}
