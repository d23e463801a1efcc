package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/middleware"
	"shopper-front/models"
	"shopper-front/session"
	"shopper-front/utils"
	"shopper-front/viewstate"
)

type StoreController struct {
	API      *backend.Client
	Sessions *session.Cache
}

// storeView is everything the store detail template needs for one render.
type storeView struct {
	Store       *models.Store
	Products    []models.Product
	Owned       bool
	State       viewstate.State
	StoreForm   models.StoreForm
	ProductForm models.ProductForm
}

// loadStore fetches the store and its products. A missing store yields
// (nil, nil); a failed products fetch degrades to an empty grid.
func (ctrl *StoreController) loadStore(c *gin.Context, slug string) (*models.Store, []models.Product, error) {
	store, err := ctrl.API.StoreBySlug(c.Request.Context(), slug)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	products, err := ctrl.API.ProductsBySlug(c.Request.Context(), slug)
	if err != nil {
		logrus.WithError(err).WithField("slug", slug).Warn("products fetch failed")
		products = nil
	}
	return store, products, nil
}

func findProduct(products []models.Product, id string) *models.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// render draws the store page in the given view state, seeding the edit
// forms from the current records unless the caller already filled them
// (the save-failure path keeps submitted values intact).
func (ctrl *StoreController) render(c *gin.Context, status int, view storeView, errMsg string) {
	if view.State.Mode == viewstate.EditingStore && view.StoreForm.Name == "" {
		view.StoreForm = models.StoreForm{
			Name:        view.Store.Name,
			Quote:       view.Store.Quote,
			Description: view.Store.Description,
			LogoAlt:     view.Store.LogoAlt,
		}
	}
	if view.State.Mode == viewstate.EditingProduct && view.ProductForm.Name == "" {
		if p := findProduct(view.Products, view.State.ProductID); p != nil {
			view.ProductForm = models.ProductForm{
				Name:         p.Name,
				Description:  p.Description,
				OldPrice:     formatPrice(p.OldPrice),
				CurrentPrice: formatPrice(p.CurrentPrice),
			}
		} else {
			view.State = viewstate.State{Mode: viewstate.Viewing}
		}
	}

	data := pageData(c)
	if errMsg != "" {
		data["Error"] = errMsg
	}
	data["Store"] = view.Store
	data["Products"] = view.Products
	data["Owned"] = view.Owned
	data["State"] = view.State
	data["EditingStore"] = view.State.Mode == viewstate.EditingStore
	data["CreatingProduct"] = view.State.Mode == viewstate.CreatingProduct
	data["EditingProduct"] = view.State.Mode == viewstate.EditingProduct
	data["StoreForm"] = view.StoreForm
	data["ProductForm"] = view.ProductForm
	c.HTML(status, "store.html", data)
}

// Show renders the public store page. Owners get the edit controls and the
// edit/create dialogs selected by query parameters.
func (ctrl *StoreController) Show(c *gin.Context) {
	slug := c.Param("slug")

	store, products, err := ctrl.loadStore(c, slug)
	if err != nil {
		data := pageData(c)
		data["Error"] = "Network error. Please try again."
		c.HTML(http.StatusBadGateway, "store_missing.html", data)
		return
	}
	if store == nil {
		c.HTML(http.StatusNotFound, "store_missing.html", pageData(c))
		return
	}

	owned := store.OwnedBy(c.GetString(middleware.CtxUserID))
	state := viewstate.Resolve(owned, c.Query("edit"), c.Query("product"), c.Query("new") == "product")

	ctrl.render(c, http.StatusOK, storeView{
		Store:    store,
		Products: products,
		Owned:    owned,
		State:    state,
	}, "")
}

// requireOwned loads the store and verifies the session user owns it.
func (ctrl *StoreController) requireOwned(c *gin.Context) (*models.Store, []models.Product, bool) {
	store, products, err := ctrl.loadStore(c, c.Param("slug"))
	if err != nil || store == nil {
		c.HTML(http.StatusNotFound, "store_missing.html", pageData(c))
		return nil, nil, false
	}
	if !store.OwnedBy(c.GetString(middleware.CtxUserID)) {
		c.String(http.StatusForbidden, "You do not own this store")
		return nil, nil, false
	}
	return store, products, true
}

// SaveStore handles the store edit dialog submit. On failure the dialog
// stays open with the submitted fields intact.
func (ctrl *StoreController) SaveStore(c *gin.Context) {
	store, products, ok := ctrl.requireOwned(c)
	if !ok {
		return
	}

	var form models.StoreForm
	if err := c.ShouldBind(&form); err != nil {
		ctrl.render(c, http.StatusBadRequest, storeView{
			Store: store, Products: products, Owned: true,
			State:     viewstate.State{Mode: viewstate.EditingStore},
			StoreForm: form,
		}, "Store name is required")
		return
	}

	logo, _ := c.FormFile("logo")
	if err := utils.ValidateUpload(logo); err != nil {
		ctrl.render(c, http.StatusBadRequest, storeView{
			Store: store, Products: products, Owned: true,
			State:     viewstate.State{Mode: viewstate.EditingStore},
			StoreForm: form,
		}, err.Error())
		return
	}

	updated, err := ctrl.API.UpdateStore(c.Request.Context(), backendToken(c), store.ID, form, logo)
	if err != nil {
		ctrl.render(c, http.StatusOK, storeView{
			Store: store, Products: products, Owned: true,
			State:     viewstate.State{Mode: viewstate.EditingStore},
			StoreForm: form,
		}, saveErrorMessage(err, "Failed to update store"))
		return
	}

	// The server owns derived fields; the slug may have changed with the name.
	c.Redirect(http.StatusFound, "/store/"+url.PathEscape(updated.Slug)+"?notice="+url.QueryEscape("Store updated"))
}

// CreateProduct handles the add-product dialog submit.
func (ctrl *StoreController) CreateProduct(c *gin.Context) {
	store, products, ok := ctrl.requireOwned(c)
	if !ok {
		return
	}

	form, image, errMsg := ctrl.bindProductForm(c)
	if errMsg != "" {
		ctrl.render(c, http.StatusBadRequest, storeView{
			Store: store, Products: products, Owned: true,
			State:       viewstate.State{Mode: viewstate.CreatingProduct},
			ProductForm: form,
		}, errMsg)
		return
	}

	if err := ctrl.API.CreateProduct(c.Request.Context(), backendToken(c), store.Slug, form, image); err != nil {
		ctrl.render(c, http.StatusOK, storeView{
			Store: store, Products: products, Owned: true,
			State:       viewstate.State{Mode: viewstate.CreatingProduct},
			ProductForm: form,
		}, saveErrorMessage(err, "Failed to save product"))
		return
	}

	// Success closes the dialog; the redirect refetches the whole grid so
	// server-computed fields are always current.
	c.Redirect(http.StatusFound, "/store/"+url.PathEscape(store.Slug)+"?notice="+url.QueryEscape("Product created"))
}

// UpdateProduct handles the edit-product dialog submit.
func (ctrl *StoreController) UpdateProduct(c *gin.Context) {
	store, products, ok := ctrl.requireOwned(c)
	if !ok {
		return
	}
	productID := c.Param("id")

	form, image, errMsg := ctrl.bindProductForm(c)
	if errMsg != "" {
		ctrl.render(c, http.StatusBadRequest, storeView{
			Store: store, Products: products, Owned: true,
			State:       viewstate.State{Mode: viewstate.EditingProduct, ProductID: productID},
			ProductForm: form,
		}, errMsg)
		return
	}

	if err := ctrl.API.UpdateProduct(c.Request.Context(), backendToken(c), productID, store.Slug, form, image); err != nil {
		ctrl.render(c, http.StatusOK, storeView{
			Store: store, Products: products, Owned: true,
			State:       viewstate.State{Mode: viewstate.EditingProduct, ProductID: productID},
			ProductForm: form,
		}, saveErrorMessage(err, "Failed to save product"))
		return
	}

	c.Redirect(http.StatusFound, "/store/"+url.PathEscape(store.Slug)+"?notice="+url.QueryEscape("Product updated"))
}

// Buy places a mock order. No optimistic update: the redirect target
// refetches the list, so the orders count reflects the server's state.
func (ctrl *StoreController) Buy(c *gin.Context) {
	slug := c.Param("slug")
	target := "/store/" + url.PathEscape(slug)

	if err := ctrl.API.BuyProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Redirect(http.StatusFound, target+"?error="+url.QueryEscape(saveErrorMessage(err, "Failed to process order")))
		return
	}
	c.Redirect(http.StatusFound, target+"?notice="+url.QueryEscape("Thank you for purchasing this item"))
}

func (ctrl *StoreController) bindProductForm(c *gin.Context) (models.ProductForm, *multipart.FileHeader, string) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		return form, nil, "Product name is required"
	}
	image, _ := c.FormFile("images")
	if err := utils.ValidateUpload(image); err != nil {
		return form, nil, err.Error()
	}
	return form, image, ""
}

// saveErrorMessage maps an error to the user-facing line: the server's own
// message when it sent one, the generic per-action fallback otherwise.
func saveErrorMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback)
	}
	return "Network error. Please try again."
}

func formatPrice(p models.Price) string {
	if p == 0 {
		return ""
	}
	return strconv.FormatFloat(p.Float(), 'f', -1, 64)
}
