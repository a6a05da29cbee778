package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/helpers"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/arashsoltani/zarshop/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// AdminHandler serves the catalog management endpoints: attribute and value
// creation, category bindings and product attribute assignment.
type AdminHandler struct {
	categoryRepo       repositories.CategoryRepositoryImpl
	attributeRepo      repositories.AttributeRepositoryImpl
	attributeValueRepo repositories.AttributeValueRepositoryImpl
	bindingRepo        repositories.BindingRepositoryImpl
	attributeSvc       *services.AttributeService
	validator          *validator.Validate
	render             *render.Render
}

func NewAdminHandler(
	categoryRepo repositories.CategoryRepositoryImpl,
	attributeRepo repositories.AttributeRepositoryImpl,
	attributeValueRepo repositories.AttributeValueRepositoryImpl,
	bindingRepo repositories.BindingRepositoryImpl,
	attributeSvc *services.AttributeService,
	validator *validator.Validate,
	render *render.Render,
) *AdminHandler {
	return &AdminHandler{
		categoryRepo:       categoryRepo,
		attributeRepo:      attributeRepo,
		attributeValueRepo: attributeValueRepo,
		bindingRepo:        bindingRepo,
		attributeSvc:       attributeSvc,
		validator:          validator,
		render:             render,
	}
}

type CreateAttributeForm struct {
	Name         string `json:"name" validate:"required,max=100"`
	Key          string `json:"key" validate:"omitempty,max=100"`
	Type         string `json:"type" validate:"required,oneof=text number select multiselect boolean color size"`
	Description  string `json:"description"`
	IsFilterable *bool  `json:"is_filterable"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type CreateAttributeValueForm struct {
	Value        string  `json:"value" validate:"required,max=100"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
	ColorCode    *string `json:"color_code" validate:"omitempty,hexcolor"`
}

type BindAttributeForm struct {
	AttributeKey string `json:"attribute_key" validate:"required,max=100"`
	Required     bool   `json:"required"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type SetAttributeValueForm struct {
	Value string `json:"value" validate:"required,max=255"`
}

// CreateAttribute handles POST /api/admin/attributes/. A missing key is
// derived from the name.
func (h *AdminHandler) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	var form CreateAttributeForm
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	key := form.Key
	if key == "" {
		key = helpers.GenerateSlug(form.Name)
	}
	isFilterable := true
	if form.IsFilterable != nil {
		isFilterable = *form.IsFilterable
	}

	attribute := &models.Attribute{
		ID:           uuid.New().String(),
		Name:         form.Name,
		Key:          key,
		Type:         form.Type,
		Description:  form.Description,
		IsFilterable: isFilterable,
		DisplayOrder: form.DisplayOrder,
	}
	if err := h.attributeRepo.Create(r.Context(), attribute); err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":            attribute.ID,
		"name":          attribute.Name,
		"key":           attribute.Key,
		"type":          attribute.Type,
		"is_filterable": attribute.IsFilterable,
		"display_order": attribute.DisplayOrder,
	})
}

// CreateAttributeValue handles POST /api/admin/attributes/{key}/values/.
func (h *AdminHandler) CreateAttributeValue(w http.ResponseWriter, r *http.Request) {
	var form CreateAttributeValueForm
	if !h.decodeAndValidate(w, r, &form) {
		return
	}

	attribute, err := h.attributeRepo.GetByKey(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	value := &models.AttributeValue{
		ID:           uuid.New().String(),
		AttributeID:  attribute.ID,
		Value:        form.Value,
		DisplayOrder: form.DisplayOrder,
		ColorCode:    form.ColorCode,
	}
	if err := h.attributeValueRepo.Create(r.Context(), value); err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, attributeValueJSON{
		ID:           value.ID,
		Value:        value.Value,
		DisplayOrder: value.DisplayOrder,
		ColorCode:    value.ColorCode,
	})
}

// BindAttribute handles POST /api/admin/categories/{id}/attributes/.
// Rebinding an already bound attribute updates its flags in place.
func (h *AdminHandler) BindAttribute(w http.ResponseWriter, r *http.Request) {
	var form BindAttributeForm
	if !h.decodeAndValidate(w, r, &form) {
		return
	}
	ctx := r.Context()

	category, err := h.categoryRepo.GetByID(ctx, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	attribute, err := h.attributeRepo.GetByKey(ctx, form.AttributeKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	binding, err := h.bindingRepo.Bind(ctx, category.ID, attribute.ID, form.Required, form.DisplayOrder)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"category":      categoryRef{ID: category.ID, Name: category.Name},
		"attribute_key": attribute.Key,
		"required":      binding.Required,
		"display_order": binding.DisplayOrder,
	})
}

// UnbindAttribute handles DELETE /api/admin/categories/{id}/attributes/{key}/.
func (h *AdminHandler) UnbindAttribute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)

	category, err := h.categoryRepo.GetByID(ctx, vars["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	attribute, err := h.attributeRepo.GetByKey(ctx, vars["key"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.bindingRepo.Unbind(ctx, category.ID, attribute.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetProductAttribute handles PUT /api/admin/products/{id}/attributes/{key}/.
func (h *AdminHandler) SetProductAttribute(w http.ResponseWriter, r *http.Request) {
	var form SetAttributeValueForm
	if !h.decodeAndValidate(w, r, &form) {
		return
	}
	vars := mux.Vars(r)

	assignment, err := h.attributeSvc.SetAttributeValue(r.Context(), vars["id"], vars["key"], form.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_id":    assignment.ProductID,
		"attribute_key": vars["key"],
		"value":         assignment.DisplayValue(),
		"is_custom":     assignment.CustomValue != nil,
	})
}

// ClearProductAttribute handles DELETE /api/admin/products/{id}/attributes/{key}/.
func (h *AdminHandler) ClearProductAttribute(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.attributeSvc.ClearAttributeValue(r.Context(), vars["id"], vars["key"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeAndValidate reads the JSON body into form and checks the validator
// tags. It writes the error response itself and reports whether the handler
// should continue.
func (h *AdminHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, form interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	if err := h.validator.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": helpers.FormatValidationErrors(validationErrors),
		})
		return false
	}
	return true
}

func (h *AdminHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	_ = h.render.JSON(w, status, map[string]string{"error": apperrors.ClientMessage(err)})
}
