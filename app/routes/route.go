package routes

import (
	"github.com/arashsoltani/zarshop/app/handlers/api"
	"github.com/arashsoltani/zarshop/app/middlewares"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/arashsoltani/zarshop/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	attributeValueRepo := repositories.NewAttributeValueRepository(db)
	bindingRepo := repositories.NewBindingRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)

	attributeSvc := services.NewAttributeService(attributeRepo, assignmentRepo, bindingRepo, productRepo)
	filterSvc := services.NewFilterService(categoryRepo, productRepo, bindingRepo, assignmentRepo)
	organizerSvc := services.NewOrganizerService(categoryRepo)

	renderer := render.New()
	validate := validator.New()

	catalogHandler := api.NewCatalogHandler(categoryRepo, attributeRepo, attributeValueRepo, bindingRepo, organizerSvc, renderer)
	productsHandler := api.NewProductsHandler(productRepo, filterSvc, attributeSvc, renderer)
	adminHandler := api.NewAdminHandler(categoryRepo, attributeRepo, attributeValueRepo, bindingRepo, attributeSvc, validate, renderer)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware)
	router.Use(middlewares.RequestLoggerMiddleware)
	router.Use(middlewares.CORSMiddleware)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/categories/{id}/attributes/", catalogHandler.GetCategoryAttributes).Methods("GET")
	apiRouter.HandleFunc("/categories/{id}/attributes/{key}/values/", catalogHandler.GetCategoryAttributeValues).Methods("GET")
	apiRouter.HandleFunc("/organized-categories/", catalogHandler.GetOrganizedCategories).Methods("GET")
	apiRouter.HandleFunc("/products/", productsHandler.ListProducts).Methods("GET")
	apiRouter.HandleFunc("/products/filter/", productsHandler.FilterProducts).Methods("GET")
	apiRouter.HandleFunc("/products/search/", productsHandler.SearchProducts).Methods("GET")
	apiRouter.HandleFunc("/products/new-arrivals/", productsHandler.NewArrivals).Methods("GET")

	adminRouter := apiRouter.PathPrefix("/admin").Subrouter()
	adminRouter.HandleFunc("/attributes/", adminHandler.CreateAttribute).Methods("POST")
	adminRouter.HandleFunc("/attributes/{key}/values/", adminHandler.CreateAttributeValue).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/attributes/", adminHandler.BindAttribute).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/attributes/{key}/", adminHandler.UnbindAttribute).Methods("DELETE")
	adminRouter.HandleFunc("/products/{id}/attributes/{key}/", adminHandler.SetProductAttribute).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}/attributes/{key}/", adminHandler.ClearProductAttribute).Methods("DELETE")

	return router
}
