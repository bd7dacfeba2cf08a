package handlers

import (
	"fmt"
	"net/http"

	"VCARD_BACK-END/internal/dto"
	"VCARD_BACK-END/internal/models"
	"VCARD_BACK-END/internal/store"
	"VCARD_BACK-END/internal/utils"
	"VCARD_BACK-END/internal/vcard"
)

// CardHandler serves the read-only card views and the vCard download
type CardHandler struct {
	store *store.Store
}

func NewCardHandler(s *store.Store) *CardHandler {
	return &CardHandler{store: s}
}

// Card godoc
// @Summary      Card render model
// @Description  Profile with layout and theme resolved and social links in display order.
// @Tags         card
// @Produce      json
// @Success      200  {object}  dto.CardResponse
// @Failure      503  {object}  dto.LoadingResponse
// @Router       /api/card [get]
func (h *CardHandler) Card(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if writeLoading(w, h.store) {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, cardView(h.store.Current()))
}

func cardView(rec models.ProfileRecord) dto.CardResponse {
	links := make([]dto.SocialLinkView, 0, len(models.SocialPlatforms))
	for _, p := range models.SocialPlatforms {
		url := rec.SocialLinks.Get(p)
		if url == "" {
			continue
		}
		links = append(links, dto.SocialLinkView{
			Platform: p.Key(),
			Label:    p.Label(),
			Icon:     p.Icon(),
			URL:      url,
		})
	}

	gallery := rec.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}

	return dto.CardResponse{
		Name:          rec.Name,
		Profession:    rec.Profession,
		Bio:           rec.Bio,
		Email:         rec.Email,
		Phone:         rec.Phone,
		PaymentKey:    rec.PaymentKey,
		ProfileImage:  rec.ProfileImage,
		GalleryImages: gallery,
		SocialLinks:   links,
		Layout:        string(rec.Layout.Resolve()),
		Theme:         string(rec.Theme.Resolve()),
		PrimaryColor:  rec.PrimaryColor,
		VCardURL:      "/api/vcard",
	}
}

// Layouts godoc
// @Summary      Available layouts
// @Tags         card
// @Produce      json
// @Success      200  {array}  dto.LayoutOption
// @Router       /api/layouts [get]
func (h *CardHandler) Layouts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	current := h.store.Current().Layout.Resolve()
	out := make([]dto.LayoutOption, 0, len(models.Layouts))
	for _, l := range models.Layouts {
		out = append(out, dto.LayoutOption{
			ID:       string(l),
			Name:     l.DisplayName(),
			Selected: l == current,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// VCard godoc
// @Summary      Download the contact card
// @Description  vCard 3.0 file named after the owner with spaces replaced by underscores.
// @Tags         card
// @Produce      text/vcard
// @Success      200  {string}  string
// @Failure      503  {object}  dto.LoadingResponse
// @Router       /api/vcard [get]
func (h *CardHandler) VCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if writeLoading(w, h.store) {
		return
	}

	rec := h.store.Current()
	w.Header().Set("Content-Type", vcard.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", vcard.Filename(rec.Name)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(vcard.Serialize(rec)))
}
