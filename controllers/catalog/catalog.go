package catalogcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/westeastdesigns/ecom-2024/flash"
	"github.com/westeastdesigns/ecom-2024/middleware"
	"github.com/westeastdesigns/ecom-2024/models"
	"github.com/westeastdesigns/ecom-2024/store"
)

// Home renders the catalog page with every product.
// GET /
func Home(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts()
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}
		c.HTML(http.StatusOK, "home.html", gin.H{
			"products": products,
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}

// About renders the static info page.
// GET /about
func About() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}

// ByCategory renders the catalog filtered to one category. The URL segment
// uses hyphens where the stored name has spaces. An unknown category is not
// an error page: the visitor gets a message and lands back on the catalog.
// GET /category/:name
func ByCategory(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := models.CategoryNameFromSlug(c.Param("name"))

		category, found, err := s.CategoryByName(name)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}
		if !found {
			flash.Add(c, "That category doesn't exist.")
			c.Redirect(http.StatusFound, "/")
			return
		}

		products, err := s.ProductsByCategory(category.ID)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}
		c.HTML(http.StatusOK, "category.html", gin.H{
			"category": category,
			"products": products,
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}

// ProductDetail renders one product's page. A bad or unknown id gets a clean
// 404 page rather than a server fault.
// GET /product/:id
func ProductDetail(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}

		product, found, err := s.ProductByID(uint(id))
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}
		if !found {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"user": middleware.CurrentUser(c),
			})
			return
		}
		c.HTML(http.StatusOK, "product.html", gin.H{
			"product":  product,
			"messages": flash.Take(c),
			"user":     middleware.CurrentUser(c),
		})
	}
}
