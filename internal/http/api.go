package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"biocat/internal/domain"
	"biocat/internal/notify"
	"biocat/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	products  service.ProductService
	clients   service.ClientService
	theme     service.ThemeService
	feed      *notify.Feed
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(
	auth service.AuthService,
	products service.ProductService,
	clients service.ClientService,
	theme service.ThemeService,
	feed *notify.Feed,
	jwtSecret string,
	tokenTTL time.Duration,
) *Handler {
	return &Handler{
		auth:      auth,
		products:  products,
		clients:   clients,
		theme:     theme,
		feed:      feed,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/login", h.login)
		api.GET("/session", h.session)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authed := api.Group("", h.requireAuth())
		{
			authed.POST("/logout", h.logout)

			authed.GET("/products", h.listProducts)
			authed.POST("/products", h.createProduct)
			authed.GET("/products/export", h.exportProducts)
			authed.GET("/products/template", h.productTemplate)
			authed.POST("/products/import", h.importProducts)
			authed.GET("/products/:id", h.getProduct)
			authed.PUT("/products/:id", h.updateProduct)
			authed.DELETE("/products/:id", h.deleteProduct)
			authed.DELETE("/products", h.clearProducts)

			authed.GET("/clients", h.listClients)
			authed.POST("/clients", h.createClient)
			authed.GET("/clients/export", h.exportClients)
			authed.GET("/clients/template", h.clientTemplate)
			authed.POST("/clients/import", h.importClients)
			authed.GET("/clients/:id", h.getClient)
			authed.PUT("/clients/:id", h.updateClient)
			authed.DELETE("/clients/:id", h.deleteClient)
			authed.DELETE("/clients", h.clearClients)

			authed.GET("/theme", h.getTheme)
			authed.PUT("/theme", h.setTheme)

			authed.GET("/notifications", h.listNotifications)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := issueToken(session.User.Username, h.jwtSecret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": session,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": domain.Session{}})
}

func (h *Handler) session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": h.auth.Current(c.Request.Context())})
}

func (h *Handler) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.theme.Current(c.Request.Context())})
}

type themeRequest struct {
	Theme domain.Theme `json:"theme" binding:"required"`
}

func (h *Handler) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.theme.Set(c.Request.Context(), req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Recent())
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrImportParse):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error al importar archivo"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// requireConfirm enforces the confirmation step ahead of destructive actions.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destructive action requires confirm=true"})
		return false
	}
	return true
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeWorkbook streams a workbook as a file attachment.
func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
