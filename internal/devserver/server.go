package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/shopfront/internal/domain"
	"github.com/jafarshop/shopfront/internal/pkg/clock"
	"github.com/jafarshop/shopfront/pkg/errors"
)

// productResponse mirrors the wire format the client expects.
type productResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}

type createProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ImageURL    string  `json:"image_url" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type updateProductRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
}

type orderLinePayload struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductTitle string  `json:"product_title" binding:"required"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	Sum          float64 `json:"sum"`
}

type createOrderRequest struct {
	Items       []orderLinePayload `json:"items" binding:"required,min=1"`
	TotalAmount float64            `json:"total_amount" binding:"required,gt=0"`
}

type orderResponse struct {
	ID          string             `json:"id"`
	Items       []orderLinePayload `json:"items"`
	TotalAmount float64            `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Options configures the devserver router.
type Options struct {
	Environment string
	APIKeyHash  string
	UserID      string
}

// NewRouter creates and configures the Gin router for the local shop backend.
func NewRouter(opts Options, catalog Catalog, clk clock.Clock, logger *zap.Logger) *gin.Engine {
	if opts.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.Use(authMiddleware(opts.APIKeyHash, opts.UserID, logger))
	{
		v1.GET("/products", handleListProducts(catalog, logger))
		v1.POST("/products", handleCreateProduct(catalog, logger))
		v1.PATCH("/products/:id", handleUpdateProduct(catalog, logger))
		v1.DELETE("/products/:id", handleDeleteProduct(catalog, logger))
		v1.GET("/orders", handleListOrders(catalog, logger))
		v1.POST("/orders", handleCreateOrder(catalog, clk, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderLinePayload, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, orderLinePayload{
			ProductID:    l.ProductID,
			ProductTitle: l.ProductTitle,
			ProductPrice: l.ProductPrice,
			Quantity:     l.Quantity,
			Sum:          l.Sum,
		})
	}
	return orderResponse{
		ID:          o.ID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.Date,
	}
}

func handleListProducts(catalog Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleCreateProduct(catalog Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product := domain.Product{
			ID:          uuid.New().String(),
			OwnerID:     userFromContext(c),
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Price:       req.Price,
		}
		if err := catalog.InsertProduct(c.Request.Context(), product); err != nil {
			logger.Error("Failed to insert product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, toProductResponse(product))
	}
}

func handleUpdateProduct(catalog Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		id := c.Param("id")
		product, err := catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		// Only the seller may change their product.
		if product.OwnerID != userFromContext(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		// Price is deliberately not updatable over this endpoint.
		product.Title = req.Title
		product.Description = req.Description
		product.ImageURL = req.ImageURL

		if err := catalog.UpdateProduct(c.Request.Context(), product); err != nil {
			logger.Error("Failed to update product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
			return
		}

		c.JSON(http.StatusOK, toProductResponse(product))
	}
}

func handleDeleteProduct(catalog Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, err := catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to get product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		if product.OwnerID != userFromContext(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		if err := catalog.DeleteProduct(c.Request.Context(), id); err != nil {
			logger.Error("Failed to delete product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleListOrders(catalog Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := catalog.ListOrders(c.Request.Context(), userFromContext(c))
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, out)
	}
}

func handleCreateOrder(catalog Catalog, clk clock.Clock, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		order := domain.Order{
			ID:          uuid.New().String(),
			Items:       make([]domain.CartLine, 0, len(req.Items)),
			TotalAmount: req.TotalAmount,
			Date:        clk.Now(),
		}
		for _, l := range req.Items {
			order.Items = append(order.Items, domain.CartLine{
				ProductID:    l.ProductID,
				ProductTitle: l.ProductTitle,
				ProductPrice: l.ProductPrice,
				Quantity:     l.Quantity,
				Sum:          l.Sum,
			})
		}

		if err := catalog.InsertOrder(c.Request.Context(), userFromContext(c), order); err != nil {
			logger.Error("Failed to insert order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, toOrderResponse(order))
	}
}
