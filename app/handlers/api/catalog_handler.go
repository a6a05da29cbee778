package api

import (
	"log"
	"net/http"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/arashsoltani/zarshop/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// CatalogHandler serves the category/attribute JSON endpoints consumed by
// the mobile client.
type CatalogHandler struct {
	categoryRepo       repositories.CategoryRepositoryImpl
	attributeRepo      repositories.AttributeRepositoryImpl
	attributeValueRepo repositories.AttributeValueRepositoryImpl
	bindingRepo        repositories.BindingRepositoryImpl
	organizerSvc       *services.OrganizerService
	render             *render.Render
}

func NewCatalogHandler(
	categoryRepo repositories.CategoryRepositoryImpl,
	attributeRepo repositories.AttributeRepositoryImpl,
	attributeValueRepo repositories.AttributeValueRepositoryImpl,
	bindingRepo repositories.BindingRepositoryImpl,
	organizerSvc *services.OrganizerService,
	render *render.Render,
) *CatalogHandler {
	return &CatalogHandler{
		categoryRepo:       categoryRepo,
		attributeRepo:      attributeRepo,
		attributeValueRepo: attributeValueRepo,
		bindingRepo:        bindingRepo,
		organizerSvc:       organizerSvc,
		render:             render,
	}
}

type categoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type boundAttributeJSON struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Required     bool     `json:"required"`
	IsFilterable bool     `json:"is_filterable"`
	DisplayOrder int      `json:"display_order"`
	Values       []string `json:"values"`
}

type attributeValueJSON struct {
	ID           string  `json:"id"`
	Value        string  `json:"value"`
	DisplayOrder int     `json:"display_order"`
	ColorCode    *string `json:"color_code,omitempty"`
}

// GetCategoryAttributes handles GET /api/categories/{id}/attributes/.
func (h *CatalogHandler) GetCategoryAttributes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bound, err := h.bindingRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	attributes := make([]boundAttributeJSON, 0, len(bound))
	for _, b := range bound {
		entry := boundAttributeJSON{
			Key:          b.Attribute.Key,
			Name:         b.Attribute.Name,
			Type:         b.Attribute.Type,
			Required:     b.Required,
			IsFilterable: b.Attribute.IsFilterable,
			DisplayOrder: b.DisplayOrder,
			Values:       []string{},
		}
		if b.Attribute.HasEnumeratedValues() {
			values, err := h.attributeValueRepo.ListByAttribute(ctx, b.Attribute.ID)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			for _, v := range values {
				entry.Values = append(entry.Values, v.Value)
			}
		}
		attributes = append(attributes, entry)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"category":   categoryRef{ID: category.ID, Name: category.Name},
		"attributes": attributes,
	})
}

// GetCategoryAttributeValues handles
// GET /api/categories/{id}/attributes/{key}/values/.
func (h *CatalogHandler) GetCategoryAttributeValues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	categoryID := vars["id"]
	attributeKey := vars["key"]

	category, err := h.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	attribute, err := h.attributeRepo.GetByKey(ctx, attributeKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bound, err := h.bindingRepo.IsBound(ctx, categoryID, attributeKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !bound {
		h.writeError(w, r, apperrors.BadRequest("attribute %q is not available for category %s", attributeKey, category.Name))
		return
	}

	values, err := h.attributeValueRepo.ListByAttribute(ctx, attribute.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	valuesData := make([]attributeValueJSON, 0, len(values))
	for _, v := range values {
		valuesData = append(valuesData, attributeValueJSON{
			ID:           v.ID,
			Value:        v.Value,
			DisplayOrder: v.DisplayOrder,
			ColorCode:    v.ColorCode,
		})
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"attribute": map[string]interface{}{
			"id":   attribute.ID,
			"name": attribute.Name,
			"key":  attribute.Key,
			"type": attribute.Type,
		},
		"category": categoryRef{ID: category.ID, Name: category.Name},
		"values":   valuesData,
	})
}

// GetOrganizedCategories handles GET /api/organized-categories/.
func (h *CatalogHandler) GetOrganizedCategories(w http.ResponseWriter, r *http.Request) {
	organized, err := h.organizerSvc.OrganizeCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"categories": map[string][]services.CategoryEntry{
			models.SectionMen:     organized.Sections[models.SectionMen],
			models.SectionWomen:   organized.Sections[models.SectionWomen],
			models.SectionUnisex:  organized.Sections[models.SectionUnisex],
			models.SectionGeneral: organized.Sections[models.SectionGeneral],
		},
		"summary": organized.Summary,
	})
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	_ = h.render.JSON(w, status, map[string]string{"error": apperrors.ClientMessage(err)})
}
