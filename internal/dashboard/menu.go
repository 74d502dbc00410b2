package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/partner-dashboard/internal/menu"
	"github.com/MikeMC777/partner-dashboard/internal/notify"
)

func menuToast(c *gin.Context, toaster notify.Toaster, title string) {
	toastDetached(c.Request.Context(), toaster, notify.Toast{
		Level:    notify.LevelSuccess,
		Title:    title,
		Duration: 5 * time.Second,
	})
}

// ListCategories godoc
// @Summary     Menu categories
// @Tags        menu
// @Produce     json
// @Success     200 {array}  menu.Category
// @Failure     502 {object} errorResponse
// @Router      /menu/categories [get]
func listCategoriesHandler(svc menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

// CreateCategory godoc
// @Summary     Add a menu category
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body menu.CategoryInput true "Category"
// @Success     201 {object} menu.Category
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /menu/categories [post]
func createCategoryHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		cat, err := svc.CreateCategory(c.Request.Context(), in)
		if err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Category created")
		c.JSON(http.StatusCreated, cat)
	}
}

// UpdateCategory godoc
// @Summary     Rename a category or toggle its availability
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Category ID"
// @Param       body body menu.CategoryInput true "Fields to change"
// @Success     200 {object} menu.Category
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Router      /menu/categories/{id} [put]
func updateCategoryHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		cat, err := svc.UpdateCategory(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Category updated")
		c.JSON(http.StatusOK, cat)
	}
}

// DeleteCategory godoc
// @Summary     Remove a category
// @Tags        menu
// @Param       id path string true "Category ID"
// @Success     204
// @Failure     404 {object} errorResponse
// @Router      /menu/categories/{id} [delete]
func deleteCategoryHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Category deleted")
		c.Status(http.StatusNoContent)
	}
}

// ListProducts godoc
// @Summary     Menu products
// @Tags        menu
// @Produce     json
// @Param       categoryId query string false "Only this category"
// @Success     200 {array}  menu.Product
// @Failure     502 {object} errorResponse
// @Router      /menu/products [get]
func listProductsHandler(svc menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ps, err := svc.Products(c.Request.Context(), c.Query("categoryId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, ps)
	}
}

// CreateProduct godoc
// @Summary     Add a product
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       body body menu.ProductInput true "Product"
// @Success     201 {object} menu.Product
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /menu/products [post]
func createProductHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		p, err := svc.CreateProduct(c.Request.Context(), in)
		if err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Product created")
		c.JSON(http.StatusCreated, p)
	}
}

// UpdateProduct godoc
// @Summary     Edit a product
// @Tags        menu
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Product ID"
// @Param       body body menu.ProductInput true "Fields to change"
// @Success     200 {object} menu.Product
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Router      /menu/products/{id} [put]
func updateProductHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		p, err := svc.UpdateProduct(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Product updated")
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProduct godoc
// @Summary     Remove a product
// @Tags        menu
// @Param       id path string true "Product ID"
// @Success     204
// @Failure     404 {object} errorResponse
// @Router      /menu/products/{id} [delete]
func deleteProductHandler(svc menu.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err)
			return
		}
		menuToast(c, toaster, "Product deleted")
		c.Status(http.StatusNoContent)
	}
}
